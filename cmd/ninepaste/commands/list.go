package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/walteh/ninepaste/cmd/ninepaste/opts"
)

// NewListCmd creates a new list command
func NewListCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			for _, r := range ro.Registry.List() {
				marker := " "
				if r.Active {
					marker = color.New(color.FgGreen).Sprint("●")
				}
				icon := r.Icon
				if icon == "" {
					icon = "  "
				}
				fmt.Fprintf(out, "%s %s %-20s %s %s\n",
					marker,
					icon,
					r.Name,
					color.New(color.Faint).Sprintf("%d steps", len(r.Steps)),
					color.New(color.Faint).Sprint(r.Description))
			}
			return nil
		},
	}

	return cmd
}
