// Package main provides the entry point for the ballast CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/ballast/internal/bank"
	"github.com/gorewood/ballast/internal/output"
)

// newReviseCmd creates the revise command.
func newReviseCmd() *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "revise <file> <section> <body>",
		Short: "Replace a section body in a revisable bank file",
		Long: `Perform a targeted in-place edit: replace the body under a "## Section"
heading. Only activeContext.md and progress.md permit this; every other
memory bank file is append-only and the command refuses.

The section argument names the heading without the ## prefix, matched
case-insensitively.

Examples:
  ballast revise activeContext "Current Focus" "Hardening the export pipeline"
  ballast revise progress "Next Steps" "- wire the snapshot command\n- cut 0.2.0"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRevise(cmd, dirFlag, args[0], args[1], args[2])
		},
	}

	cmd.Flags().StringVar(&dirFlag, "dir", "", "Memory bank directory (default: ./memory-bank or $BALLAST_BANK_DIR)")
	return cmd
}

// runRevise executes the revise command.
func runRevise(cmd *cobra.Command, dirFlag, name, section, body string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())
	store := storeFromFlag(dirFlag)

	if err := store.Revise(name, section, body); err != nil {
		printer.Error(err)
		return err
	}

	f, _ := bank.Lookup(name)
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"file":    f.Name,
			"section": section,
		})
	}

	printer.KeyValue("Revised", f.Name+" / "+section)
	return nil
}
