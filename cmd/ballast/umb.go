// Package main provides the entry point for the ballast CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/ballast/internal/output"
	"github.com/gorewood/ballast/internal/trigger"
)

// newUmbCmd creates the umb command.
func newUmbCmd() *cobra.Command {
	var dirFlag string
	var summaryFlag string
	var checkFlag string

	cmd := &cobra.Command{
		Use:   "umb",
		Short: "Run the Update Memory Bank synchronization",
		Long: `Run the UMB (Update Memory Bank) synchronization checklist: append a
timestamped session-sync entry to every memory bank file, re-seeding any
that are missing.

The command is what an agent host runs when chat text invokes the
literal phrases "Update Memory Bank" or "UMB". Use --check to test
whether a piece of text invokes the command without syncing.

Examples:
  ballast umb                                        # Sync with the default summary
  ballast umb --summary "Wrapped auth refactor"      # Sync with a custom summary
  ballast umb --check "ok, UMB and call it a day"    # Phrase detection only`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if checkFlag != "" {
				return runUmbCheck(cmd, checkFlag)
			}
			return runUmb(cmd, dirFlag, summaryFlag)
		},
	}

	cmd.Flags().StringVar(&dirFlag, "dir", "", "Memory bank directory (default: ./memory-bank or $BALLAST_BANK_DIR)")
	cmd.Flags().StringVar(&summaryFlag, "summary", "", "Session-sync summary (a default is used when omitted)")
	cmd.Flags().StringVar(&checkFlag, "check", "", "Test whether the given text invokes UMB, without syncing")
	return cmd
}

// runUmbCheck reports whether text invokes the UMB command.
func runUmbCheck(cmd *cobra.Command, text string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())
	invoked := trigger.IsUMB(text)

	if printer.IsJSON() {
		return printer.Success(map[string]any{"is_umb": invoked})
	}
	printer.KeyValue("UMB invoked", formatBool(invoked))
	return nil
}

// runUmb executes the synchronization.
func runUmb(cmd *cobra.Command, dirFlag, summary string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())
	store := storeFromFlag(dirFlag)

	results, err := store.Sync(summary)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"results":   results,
			"checklist": trigger.SyncChecklist(),
		})
	}

	printer.Section("Synchronized")
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.File, r.Action})
	}
	printer.Table([]string{"FILE", "ACTION"}, rows)

	printer.Section("Checklist")
	printer.Checklist(trigger.SyncChecklist())
	return nil
}
