package commands

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"github.com/walteh/ninepaste/cmd/ninepaste/opts"
	"github.com/walteh/ninepaste/cmd/ninepaste/userlog"
	"github.com/walteh/ninepaste/pkg/clipboard"
	"github.com/walteh/ninepaste/pkg/recipe"
	"gitlab.com/tozd/go/errors"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <recipe>",
		Short: "Apply a recipe to the current clipboard contents once",
		Long: `Apply runs a recipe against whatever is on the clipboard right now and
writes the result back. The recipe is matched by name (case-insensitive),
by id, or by glob pattern ("clean*").`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			r, err := findRecipe(ro.Registry, args[0])
			if err != nil {
				return err
			}

			accessor, err := clipboard.New(ctx, "system")
			if err != nil {
				return errors.Errorf("opening system clipboard: %w", err)
			}

			result, err := clipboard.ApplyOnce(ctx, accessor, r)
			if err != nil {
				return errors.Errorf("applying recipe %q: %w", r.Name, err)
			}

			ro.UserLogger.LogRecipeChange(userlog.RecipeChange{
				Type:        userlog.RecipeApplied,
				Name:        r.Name,
				Description: fmt.Sprintf("%d chars", len(result)),
			})
			return nil
		},
	}

	return cmd
}

// findRecipe resolves a recipe by name, id, or glob pattern over names.
func findRecipe(registry *recipe.Registry, query string) (recipe.Recipe, error) {
	if r, ok := registry.FindByName(query); ok {
		return r, nil
	}

	// Fall back to glob matching over recipe names.
	var matches []recipe.Recipe
	for _, r := range registry.List() {
		ok, err := doublestar.Match(strings.ToLower(query), strings.ToLower(r.Name))
		if err != nil {
			return recipe.Recipe{}, errors.Errorf("invalid recipe pattern %q: %w", query, err)
		}
		if ok {
			matches = append(matches, r)
		}
	}

	switch len(matches) {
	case 0:
		return recipe.Recipe{}, errors.Errorf("no recipe matches %q", query)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, r := range matches {
			names[i] = r.Name
		}
		return recipe.Recipe{}, errors.Errorf("pattern %q is ambiguous: %s", query, strings.Join(names, ", "))
	}
}
