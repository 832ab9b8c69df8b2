package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/walteh/ninepaste/cmd/ninepaste/opts"
	"github.com/walteh/ninepaste/cmd/ninepaste/userlog"
	"github.com/walteh/ninepaste/pkg/ipc"
	"github.com/walteh/ninepaste/pkg/transform"
	"gitlab.com/tozd/go/errors"
)

// NewRecipeCmd creates the recipe command group
func NewRecipeCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Create, delete, activate and deactivate recipes",
	}

	cmd.AddCommand(
		newRecipeCreateCmd(ro),
		newRecipeDeleteCmd(ro),
		newRecipeActivateCmd(ro),
		newRecipeDeactivateCmd(ro),
	)

	return cmd
}

func newRecipeCreateCmd(ro *opts.RootOpts) *cobra.Command {
	var description, icon, hotkey string
	var steps []string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new recipe",
		Long: `Create adds a recipe. Steps are transformation kinds or aliases, applied
in the order given:

  ninepaste recipe create "Tidy" --step trim_lines --step dedup`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			r, err := ro.Registry.Create(ctx, args[0])
			if err != nil {
				return errors.Errorf("creating recipe: %w", err)
			}

			r.Description = description
			r.Icon = icon
			r.Hotkey = hotkey
			for _, name := range steps {
				kind, ok := transform.Resolve(name)
				if !ok {
					return errors.Errorf("unknown transformation %q (see 'ninepaste transforms')", name)
				}
				r.Steps = append(r.Steps, transform.Step{Kind: kind})
			}
			if err := ro.Registry.Update(ctx, r); err != nil {
				return errors.Errorf("saving recipe: %w", err)
			}

			ro.UserLogger.LogRecipeChange(userlog.RecipeChange{
				Type: userlog.RecipeCreated,
				Name: r.Name,
			})
			signalReload(ctx, ro)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "recipe description")
	cmd.Flags().StringVar(&icon, "icon", "", "recipe icon")
	cmd.Flags().StringVar(&hotkey, "hotkey", "", "recipe hotkey chord (e.g. 'Ctrl+Shift+1')")
	cmd.Flags().StringArrayVar(&steps, "step", nil, "transformation kind or alias, repeatable")

	return cmd
}

func newRecipeDeleteCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <recipe>",
		Short: "Delete a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			r, err := findRecipe(ro.Registry, args[0])
			if err != nil {
				return err
			}
			if err := ro.Registry.Delete(ctx, r.ID); err != nil {
				return errors.Errorf("deleting recipe: %w", err)
			}

			ro.UserLogger.LogRecipeChange(userlog.RecipeChange{
				Type: userlog.RecipeDeleted,
				Name: r.Name,
			})
			signalReload(ctx, ro)
			return nil
		},
	}

	return cmd
}

func newRecipeActivateCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activate <recipe>",
		Short: "Make a recipe the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			r, err := findRecipe(ro.Registry, args[0])
			if err != nil {
				return err
			}
			if err := ro.Registry.SetActive(ctx, r.ID); err != nil {
				return errors.Errorf("activating recipe: %w", err)
			}

			// The config mirror is informational only; failing to write
			// it must not undo the activation.
			ro.Config.ActiveRecipeID = r.ID.String()
			if err := ro.Config.Save(ctx, ro.ConfigPath); err != nil {
				ro.UserLogger.LogValidation(false, "Could not update config mirror", err)
			}

			ro.UserLogger.LogRecipeChange(userlog.RecipeChange{
				Type: userlog.RecipeActivated,
				Name: r.Name,
			})
			signalReload(ctx, ro)
			return nil
		},
	}

	return cmd
}

func newRecipeDeactivateCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deactivate",
		Short: "Deactivate all recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := ro.Registry.DeactivateAll(ctx); err != nil {
				return errors.Errorf("deactivating recipes: %w", err)
			}

			ro.Config.ActiveRecipeID = ""
			if err := ro.Config.Save(ctx, ro.ConfigPath); err != nil {
				ro.UserLogger.LogValidation(false, "Could not update config mirror", err)
			}

			ro.UserLogger.LogRecipeChange(userlog.RecipeChange{
				Type: userlog.RecipeDeactivated,
				Name: "all recipes",
			})
			signalReload(ctx, ro)
			return nil
		},
	}

	return cmd
}

// signalReload tells a running watch service to re-read the recipe
// store. Best effort; no service, no problem.
func signalReload(ctx context.Context, ro *opts.RootOpts) {
	if !ro.Client.IsServiceRunning(ctx) {
		return
	}
	if err := ro.Client.Send(ctx, ipc.CommandReload); err == nil {
		ro.UserLogger.Info("Signaled the running watch service")
	}
}
