package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/ninepaste/cmd/ninepaste/opts"
	"github.com/walteh/ninepaste/pkg/ipc"
	"gitlab.com/tozd/go/errors"
)

// NewToggleCmd creates a new toggle command
func NewToggleCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Toggle automatic transformation on or off",
		Long: `Toggle flips the auto_transform setting in the config file and, when the
watch service is running, tells it to flip its live gate as well.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ro.Config.AutoTransform = !ro.Config.AutoTransform
			if err := ro.Config.Save(ctx, ro.ConfigPath); err != nil {
				return errors.Errorf("saving config: %w", err)
			}

			if ro.Config.AutoTransform {
				ro.UserLogger.LogValidation(true, "Automatic transformation enabled", nil)
			} else {
				ro.UserLogger.LogValidation(true, "Automatic transformation paused", nil)
			}

			// Best effort: a running service flips its gate immediately.
			if ro.Client.IsServiceRunning(ctx) {
				if err := ro.Client.Send(ctx, ipc.CommandToggleTransform); err != nil {
					return errors.Errorf("signaling watch service: %w", err)
				}
				ro.UserLogger.Info("Signaled the running watch service")
			}
			return nil
		},
	}

	return cmd
}
