package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/ninepaste/cmd/ninepaste/opts"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether the watch service is running and what it does",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if ro.Client.IsServiceRunning(ctx) {
				ro.UserLogger.LogServiceState(true, fmt.Sprintf("Watch service running on port %d", ro.Config.IPCPort))
			} else {
				ro.UserLogger.LogServiceState(false, "Watch service not running (start it with 'ninepaste start')")
			}

			if active, ok := ro.Registry.Active(); ok {
				ro.UserLogger.Info(fmt.Sprintf("Active recipe: %s %s (%d steps)", active.Icon, active.Name, len(active.Steps)))
			} else {
				ro.UserLogger.Info("No active recipe")
			}

			auto := "off"
			if ro.Config.AutoTransform {
				auto = "on"
			}
			ro.UserLogger.Info(fmt.Sprintf("Auto-transform %s, polling every %s", auto, ro.Config.PollInterval()))
			if ro.Config.KeepHistory {
				ro.UserLogger.Info(fmt.Sprintf("History enabled, keeping %d entries", ro.Config.MaxHistorySize))
			}
			return nil
		},
	}

	return cmd
}
