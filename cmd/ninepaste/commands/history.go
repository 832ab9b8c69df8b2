package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/walteh/ninepaste/cmd/ninepaste/opts"
	"github.com/walteh/ninepaste/pkg/history"
	"gitlab.com/tozd/go/errors"
)

// NewHistoryCmd creates the history command group
func NewHistoryCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the transformation history",
	}

	cmd.AddCommand(
		newHistoryListCmd(ro),
		newHistoryClearCmd(ro),
	)

	return cmd
}

func openHistory(cmd *cobra.Command, ro *opts.RootOpts) (*history.Log, error) {
	path, err := history.DefaultPath()
	if err != nil {
		return nil, err
	}
	log, err := history.Open(cmd.Context(), path, ro.Config.MaxHistorySize)
	if err != nil {
		return nil, errors.Errorf("opening history log: %w", err)
	}
	return log, nil
}

func newHistoryListCmd(ro *opts.RootOpts) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent transformations, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := openHistory(cmd, ro)
			if err != nil {
				return err
			}
			defer log.Close()

			entries, err := log.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "history is empty")
				return nil
			}

			for _, entry := range entries {
				recipeName := entry.RecipeName
				if recipeName == "" {
					recipeName = "-"
				}
				fmt.Fprintf(out, "%s  %-20s %s\n",
					color.New(color.Faint).Sprint(entry.CreatedAt.Local().Format("2006-01-02 15:04:05")),
					recipeName,
					color.New(color.Faint).Sprintf("%d → %d chars", len(entry.Original), len(entry.Transformed)))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to show")

	return cmd
}

func newHistoryClearCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the entire transformation history",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := openHistory(cmd, ro)
			if err != nil {
				return err
			}
			defer log.Close()

			if err := log.Clear(cmd.Context()); err != nil {
				return err
			}
			ro.UserLogger.LogValidation(true, "History cleared", nil)
			return nil
		},
	}

	return cmd
}
