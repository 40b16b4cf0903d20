// Package main provides the entry point for the ballast CLI.
package main

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/ballast/internal/mode"
	"github.com/gorewood/ballast/internal/output"
)

// newModesCmd creates the modes command.
func newModesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modes",
		Short: "List the mode registry",
		Long: `List the behavioral mode registry: slug, name, description, and the
hand-off conditions each mode declares toward the others.

The built-in registry carries the five modes (code, architect, ask,
debug, test). A .ballast/modes.yaml overlay in the project root can add
or replace modes; the merged registry is validated before listing.

Examples:
  ballast modes             # Table of modes
  ballast modes --json      # Full registry including hand-off matrix`,
		RunE: runModes,
	}
	return cmd
}

// runModes executes the modes command.
func runModes(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())

	registry, err := mode.LoadRegistry(".")
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"modes": registry.Modes()})
	}

	rows := make([][]string, 0, len(registry.Modes()))
	for _, m := range registry.Modes() {
		rows = append(rows, []string{m.Slug, m.Name, m.Description, formatTargets(m)})
	}
	printer.Table([]string{"SLUG", "NAME", "DESCRIPTION", "HANDS OFF TO"}, rows)
	return nil
}

// formatTargets renders a mode's hand-off targets as a sorted list.
func formatTargets(m mode.Mode) string {
	targets := make([]string, 0, len(m.Handoffs))
	for target := range m.Handoffs {
		targets = append(targets, target)
	}
	sort.Strings(targets)
	return strings.Join(targets, ", ")
}
