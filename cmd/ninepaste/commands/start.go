package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/ninepaste/cmd/ninepaste/opts"
	"github.com/walteh/ninepaste/pkg/clipboard"
	"github.com/walteh/ninepaste/pkg/daemon"
	"github.com/walteh/ninepaste/pkg/history"
	"github.com/walteh/ninepaste/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// NewStartCmd creates a new start command
func NewStartCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the background clipboard watch service",
		Long: `Start runs the watch service in the foreground: it polls the clipboard,
applies the active recipe to every change and answers IPC commands from
other ninepaste invocations. Stop it with Ctrl+C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := zerolog.Ctx(ctx)

			accessor, err := clipboard.New(ctx, "system")
			if err != nil {
				return errors.Errorf("opening system clipboard: %w", err)
			}

			var historyLog *history.Log
			if ro.Config.KeepHistory {
				path, err := history.DefaultPath()
				if err == nil {
					historyLog, err = history.Open(ctx, path, ro.Config.MaxHistorySize)
				}
				if err != nil {
					// History is a nicety, never a reason not to start.
					logger.Warn().Err(err).Msg("history log unavailable")
					historyLog = nil
				} else {
					defer historyLog.Close()
				}
			}

			console := log.New(os.Stdout, zerolog.GlobalLevel())

			svc, err := daemon.New(daemon.Options{
				Config:   ro.Config,
				Accessor: accessor,
				Registry: ro.Registry,
				History:  historyLog,
				Console:  console,
			})
			if err != nil {
				return errors.Errorf("assembling watch service: %w", err)
			}

			console.Header("watching clipboard")
			return svc.Run(ctx)
		},
	}

	return cmd
}
