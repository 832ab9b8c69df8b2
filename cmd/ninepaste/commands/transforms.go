package commands

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/walteh/ninepaste/cmd/ninepaste/opts"
	"github.com/walteh/ninepaste/pkg/transform"
	"gitlab.com/tozd/go/errors"
)

// NewTransformsCmd creates a new transforms command
func NewTransformsCmd(ro *opts.RootOpts) *cobra.Command {
	var match string

	cmd := &cobra.Command{
		Use:   "transforms",
		Short: "List the available transformations",
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := matchDefinitions(transform.Definitions(), match)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			category := ""
			for _, def := range defs {
				if def.Category != category {
					category = def.Category
					fmt.Fprintf(out, "\n%s\n", color.New(color.Bold, color.FgCyan).Sprint(category))
				}
				aliases := ""
				if len(def.Aliases) > 0 {
					aliases = color.New(color.Faint).Sprintf("(%s)", strings.Join(def.Aliases, ", "))
				}
				fmt.Fprintf(out, "  %-28s %-28s %s\n", def.Kind, def.Name, aliases)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&match, "match", "", "only show kinds matching this glob (e.g. 'remove_*')")

	return cmd
}

// matchDefinitions filters the registry by a glob over kind names.
func matchDefinitions(defs []transform.Definition, match string) ([]transform.Definition, error) {
	if match == "" {
		return defs, nil
	}

	var out []transform.Definition
	for _, def := range defs {
		ok, err := doublestar.Match(strings.ToLower(match), string(def.Kind))
		if err != nil {
			return nil, errors.Errorf("invalid match pattern %q: %w", match, err)
		}
		if ok {
			out = append(out, def)
		}
	}
	if len(out) == 0 {
		return nil, errors.Errorf("no transformation matches %q", match)
	}
	return out, nil
}
