// Package main provides the entry point for the ballast CLI.
package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/ballast/internal/bank"
	"github.com/gorewood/ballast/internal/mode"
	"github.com/gorewood/ballast/internal/output"
)

// statusResult holds the data for status output.
type statusResult struct {
	Status     string           `json:"status"`
	Dir        string           `json:"dir"`
	Exists     bool             `json:"exists"`
	EntryTotal int              `json:"entry_total"`
	Files      []bank.FileState `json:"files,omitempty"`
	ModeCount  int              `json:"mode_count"`
}

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show memory bank state",
		Long: `Show the current state of the memory bank.

Displays the bank directory, the active/inactive status line, per-file
presence with entry counts, and the registered mode count.

Examples:
  ballast status            # Human-readable status
  ballast status --json     # Output status as JSON for scripting`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, dirFlag)
		},
	}

	cmd.Flags().StringVar(&dirFlag, "dir", "", "Memory bank directory (default: ./memory-bank or $BALLAST_BANK_DIR)")
	return cmd
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, dirFlag string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())

	result, err := gatherStatus(dirFlag)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printHumanStatus(printer, result)
	return nil
}

// gatherStatus collects all status information.
func gatherStatus(dirFlag string) (*statusResult, error) {
	store := storeFromFlag(dirFlag)

	session, err := store.Session(false)
	if err != nil {
		return nil, err
	}

	registry, err := mode.LoadRegistry(".")
	if err != nil {
		return nil, output.NewUserError(err.Error())
	}

	result := &statusResult{
		Status:    session.Status,
		Dir:       session.Dir,
		Exists:    session.Active,
		Files:     session.Files,
		ModeCount: len(registry.Modes()),
	}
	for _, state := range session.Files {
		result.EntryTotal += state.EntryCount
	}
	return result, nil
}

// printHumanStatus outputs status in human-readable format.
func printHumanStatus(printer *output.Printer, status *statusResult) {
	printer.Println(status.Status)

	printer.Section("Memory Bank")
	printer.KeyValue("Directory", status.Dir)
	printer.KeyValue("Initialized", formatBool(status.Exists))
	printer.KeyValue("Entries", strconv.Itoa(status.EntryTotal))
	printer.KeyValue("Modes", strconv.Itoa(status.ModeCount))

	if len(status.Files) > 0 {
		printer.Section("Files")
		rows := make([][]string, 0, len(status.Files))
		for _, state := range status.Files {
			rows = append(rows, []string{
				state.File.Name,
				formatBool(state.Exists),
				strconv.Itoa(state.EntryCount),
			})
		}
		printer.Table([]string{"FILE", "PRESENT", "ENTRIES"}, rows)
	}
}

// formatBool returns a human-readable boolean string.
func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
