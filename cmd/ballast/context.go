// Package main provides the entry point for the ballast CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/ballast/internal/budget"
	"github.com/gorewood/ballast/internal/output"
)

// newContextCmd creates the context command.
func newContextCmd() *cobra.Command {
	var usageFlag int

	cmd := &cobra.Command{
		Use:   "context",
		Short: "Check context-window usage against the threshold",
		Long: `Check a context-window usage percentage against the wrap-up threshold.

At or above 33% the check alerts and returns the wrap-up checklist:
finish the current subtask, persist state with UMB, and recommend a
fresh session. Below the threshold nothing fires.

Examples:
  ballast context --usage 40        # Alerts: over threshold
  ballast context --usage 10        # Quiet: under threshold
  ballast context --usage 40 --json # Structured result`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runContext(cmd, usageFlag)
		},
	}

	cmd.Flags().IntVar(&usageFlag, "usage", -1, "Context window usage percentage (0-100)")
	_ = cmd.MarkFlagRequired("usage")
	return cmd
}

// runContext executes the context command.
func runContext(cmd *cobra.Command, usage int) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())

	if usage < 0 || usage > 100 {
		err := output.NewUserError("usage must be between 0 and 100")
		printer.Error(err)
		return err
	}

	result := budget.Evaluate(usage)

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	if !result.Alert {
		printer.Println("Context usage OK.")
		return nil
	}

	printer.Warn("%s", result.Message)
	printer.Checklist(result.Checklist)
	return nil
}
