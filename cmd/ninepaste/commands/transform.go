package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/ninepaste/cmd/ninepaste/opts"
	"github.com/walteh/ninepaste/cmd/ninepaste/userlog"
	"github.com/walteh/ninepaste/pkg/clipboard"
	"github.com/walteh/ninepaste/pkg/recipe"
	"github.com/walteh/ninepaste/pkg/transform"
	"gitlab.com/tozd/go/errors"
)

// NewTransformCmd creates a new transform command
func NewTransformCmd(ro *opts.RootOpts) *cobra.Command {
	var step transform.Step

	cmd := &cobra.Command{
		Use:   "transform <name>",
		Short: "Apply a single transformation to the clipboard",
		Long: `Transform applies one transformation to the current clipboard text and
writes the result back. Names accept the full kind ("normalize_whitespace")
or a short alias ("lower", "dedup", "crlf").`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kind, ok := transform.Resolve(args[0])
			if !ok {
				return errors.Errorf("unknown transformation %q (see 'ninepaste transforms')", args[0])
			}
			step.Kind = kind

			accessor, err := clipboard.New(ctx, "system")
			if err != nil {
				return errors.Errorf("opening system clipboard: %w", err)
			}

			oneShot := recipe.New(transform.DisplayName(kind))
			oneShot.Steps = []transform.Step{step}

			result, err := clipboard.ApplyOnce(ctx, accessor, oneShot)
			if err != nil {
				return errors.Errorf("applying %s: %w", kind, err)
			}

			ro.UserLogger.LogRecipeChange(userlog.RecipeChange{
				Type:        userlog.RecipeApplied,
				Name:        transform.DisplayName(kind),
				Description: fmt.Sprintf("%d chars", len(result)),
			})
			return nil
		},
	}

	// Parameters for the parameterized kinds; ignored by the rest.
	cmd.Flags().StringVar(&step.Separator, "separator", "", "separator for join_lines")
	cmd.Flags().StringVar(&step.Delimiter, "delimiter", "", "delimiter for split_to_lines")
	cmd.Flags().IntVar(&step.Width, "width", 0, "width for wrap_lines")
	cmd.Flags().IntVar(&step.Spaces, "spaces", 0, "spaces per tab for the indentation kinds")
	cmd.Flags().StringVar(&step.Pattern, "pattern", "", "pattern for regex_replace")
	cmd.Flags().StringVar(&step.Replacement, "replacement", "", "replacement for regex_replace")
	cmd.Flags().StringVar(&step.Find, "find", "", "literal text for find_replace")
	cmd.Flags().StringVar(&step.Replace, "replace", "", "replacement for find_replace")
	cmd.Flags().StringVar(&step.Prefix, "prefix", "", "prefix for add_prefix/remove_prefix")
	cmd.Flags().StringVar(&step.Suffix, "suffix", "", "suffix for add_suffix/remove_suffix")

	return cmd
}
