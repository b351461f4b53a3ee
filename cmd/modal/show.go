package main

import (
	"errors"
	"fmt"

	"github.com/mark3labs/modal/internal/logger"
	"github.com/mark3labs/modal/internal/tui"
	"github.com/spf13/cobra"
)

var showFlags descriptorFlags

var showCmd = &cobra.Command{
	Use:   "show [descriptor.yml]",
	Short: "Show a dialog and print the outcome",
	Long: `Show a dialog full-screen over a backdrop and print the outcome.

The outcome is "closed" when the dialog is dismissed, or the result of the
chosen action. Results default to the slugified action label.

Examples:
  modal show confirm.yml
  modal show --title "Delete branch?" --action Delete --action Cancel`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showFlags.register(showCmd)
	showCmd.Flags().Bool("markdown", false, "Render the message as markdown")
}

func runShow(cmd *cobra.Command, args []string) error {
	d, err := showFlags.load(cmd, args)
	if err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("invalid descriptor:\n%w", err)
	}

	app, err := tui.NewApp(d, cfg)
	if err != nil {
		return err
	}

	outcome, err := tui.Run(cmd.Context(), app)
	if errors.Is(err, tui.ErrInterrupted) {
		return err
	}
	if err != nil {
		return fmt.Errorf("showing dialog: %w", err)
	}

	logger.Info("dialog outcome: %s", outcome)
	fmt.Fprintln(cmd.OutOrStdout(), outcome)
	return nil
}
