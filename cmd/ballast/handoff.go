// Package main provides the entry point for the ballast CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/ballast/internal/mode"
	"github.com/gorewood/ballast/internal/output"
)

// newHandoffCmd creates the handoff command.
func newHandoffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "handoff <from> <to>",
		Short: "Show hand-off conditions for a mode pair",
		Long: `Show the named conditions under which the source mode hands the session
to the target mode. Hand-offs are directional: "handoff code test" and
"handoff test code" list different conditions.

Examples:
  ballast handoff code test        # When Code hands off to Test
  ballast handoff architect code   # When Architect hands off to Code`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHandoff(cmd, args[0], args[1])
		},
	}
	return cmd
}

// runHandoff executes the handoff command.
func runHandoff(cmd *cobra.Command, from, to string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())

	registry, err := mode.LoadRegistry(".")
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	conditions, err := registry.HandoffConditions(from, to)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"from":       from,
			"to":         to,
			"conditions": conditions,
		})
	}

	printer.KeyValue("Handoff", from+" -> "+to)
	if len(conditions) == 0 {
		printer.Println("(no conditions declared)")
		return nil
	}
	for _, condition := range conditions {
		printer.Println("  " + condition)
	}
	return nil
}
