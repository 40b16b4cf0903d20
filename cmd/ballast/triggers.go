// Package main provides the entry point for the ballast CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/ballast/internal/output"
	"github.com/gorewood/ballast/internal/trigger"
)

// newTriggersCmd creates the triggers command.
func newTriggersCmd() *cobra.Command {
	var testingFlag bool
	var matchFlag string

	cmd := &cobra.Command{
		Use:   "triggers",
		Short: "Show update and testing-workflow triggers",
		Long: `Show the update-trigger table: which memory bank file is updated under
which condition, with which action, in which timestamp format. With
--testing, show the testing-workflow triggers instead.

With --match, report which files an event description should update,
and whether the text invokes the UMB command.

Examples:
  ballast triggers                                  # Update-trigger table
  ballast triggers --testing                        # Testing-workflow triggers
  ballast triggers --match "decided to use sqlite"  # Matches decisionLog.md`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTriggers(cmd, testingFlag, matchFlag)
		},
	}

	cmd.Flags().BoolVar(&testingFlag, "testing", false, "Show testing-workflow triggers")
	cmd.Flags().StringVar(&matchFlag, "match", "", "Match an event description against the trigger table")
	return cmd
}

// runTriggers executes the triggers command.
func runTriggers(cmd *cobra.Command, testing bool, match string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())

	if match != "" {
		return runTriggersMatch(printer, match)
	}
	if testing {
		return runTriggersTesting(printer)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"updates": trigger.Table()})
	}

	rows := make([][]string, 0, len(trigger.Table()))
	for _, rule := range trigger.Table() {
		rows = append(rows, []string{rule.File, rule.Condition, rule.Format})
	}
	printer.Table([]string{"FILE", "CONDITION", "FORMAT"}, rows)
	return nil
}

// runTriggersTesting lists the testing-workflow triggers.
func runTriggersTesting(printer *output.Printer) error {
	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"testing": trigger.TestingTable()})
	}

	rows := make([][]string, 0, len(trigger.TestingTable()))
	for _, rule := range trigger.TestingTable() {
		rows = append(rows, []string{rule.Condition, rule.Recommendation})
	}
	printer.Table([]string{"CONDITION", "RECOMMENDATION"}, rows)
	return nil
}

// runTriggersMatch matches an event description against the tables.
func runTriggersMatch(printer *output.Printer, event string) error {
	matched := trigger.MatchFiles(event)
	files := make([]string, 0, len(matched))
	for _, rule := range matched {
		files = append(files, rule.File)
	}
	isUMB := trigger.IsUMB(event)

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"matched": files,
			"is_umb":  isUMB,
		})
	}

	if isUMB {
		printer.Println("Text invokes UMB (Update Memory Bank).")
	}
	if len(files) == 0 {
		printer.Println("No update triggers matched.")
		return nil
	}
	printer.Section("Should update")
	for _, rule := range matched {
		printer.KeyValue(rule.File, rule.Action)
	}
	return nil
}
