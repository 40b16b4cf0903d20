// Package main provides the entry point for the ballast CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/ballast/internal/bank"
	"github.com/gorewood/ballast/internal/output"
)

// newUpdateCmd creates the update command.
func newUpdateCmd() *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "update <file> <summary>",
		Short: "Append a timestamped entry to a bank file",
		Long: `Append a timestamped entry to a named memory bank file.

Entries are rendered as [YYYY-MM-DD HH:MM:SS] - Summary and appended
below the existing content; prior content is never rewritten. The .md
suffix is optional in the file argument.

Examples:
  ballast update decisionLog "Chose SQLite over flat files for search"
  ballast update progress "Auth middleware completed"
  ballast update activeContext "Switched focus to the export pipeline"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, dirFlag, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&dirFlag, "dir", "", "Memory bank directory (default: ./memory-bank or $BALLAST_BANK_DIR)")
	return cmd
}

// runUpdate executes the update command.
func runUpdate(cmd *cobra.Command, dirFlag, name, summary string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())
	store := storeFromFlag(dirFlag)

	entry, err := store.Append(name, summary)
	if err != nil {
		printer.Error(err)
		return err
	}

	f, _ := bank.Lookup(name)
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"file":  f.Name,
			"entry": entry,
		})
	}

	printer.KeyValue("Appended", f.Name)
	printer.Println(entry)
	return nil
}
