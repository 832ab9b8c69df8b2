package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/walteh/ninepaste/cmd/ninepaste/opts"
	"github.com/walteh/ninepaste/pkg/transform"
)

// NewShowCmd creates a new show command
func NewShowCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <recipe>",
		Short: "Show a recipe's transformation steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := findRecipe(ro.Registry, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			state := "inactive"
			if r.Active {
				state = color.New(color.FgGreen).Sprint("active")
			}
			fmt.Fprintf(out, "%s %s %s\n",
				r.Icon,
				color.New(color.Bold).Sprint(r.Name),
				color.New(color.Faint).Sprintf("(%s)", state))
			if r.Description != "" {
				fmt.Fprintf(out, "  %s\n", color.New(color.Faint).Sprint(r.Description))
			}
			if r.Hotkey != "" {
				fmt.Fprintf(out, "  hotkey: %s\n", r.Hotkey)
			}
			fmt.Fprintln(out)

			if len(r.Steps) == 0 {
				fmt.Fprintln(out, "  (no steps, recipe is a no-op)")
				return nil
			}
			for i, step := range r.Steps {
				fmt.Fprintf(out, "  %2d. %s %s\n",
					i+1,
					transform.DisplayName(step.Kind),
					color.New(color.Faint).Sprint(stepParams(step)))
			}
			return nil
		},
	}

	return cmd
}

// stepParams renders the parameters a step actually carries.
func stepParams(step transform.Step) string {
	parts := []string{}
	add := func(name, value string) {
		if value != "" {
			parts = append(parts, fmt.Sprintf("%s=%q", name, value))
		}
	}
	add("separator", step.Separator)
	add("delimiter", step.Delimiter)
	add("pattern", step.Pattern)
	add("replacement", step.Replacement)
	add("find", step.Find)
	add("replace", step.Replace)
	add("prefix", step.Prefix)
	add("suffix", step.Suffix)
	if step.Width > 0 {
		parts = append(parts, fmt.Sprintf("width=%d", step.Width))
	}
	if step.Spaces > 0 {
		parts = append(parts, fmt.Sprintf("spaces=%d", step.Spaces))
	}
	if len(parts) == 0 {
		return ""
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += " " + p
	}
	return out
}
