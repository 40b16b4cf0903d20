// Package main provides the entry point for the ballast CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/ballast/internal/bank"
	"github.com/gorewood/ballast/internal/output"
)

// newInitCmd creates the init command.
func newInitCmd() *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the memory bank",
		Long: `Create the memory-bank directory and seed the five canonical files:

  productContext.md   project description, goals, features, architecture
  activeContext.md    current focus, recent changes, open questions
  systemPatterns.md   coding, architectural, and testing patterns
  decisionLog.md      decisions with rationale and implications
  progress.md         completed work, current tasks, next steps

Each file is seeded with its section skeleton and an initial
timestamped entry. Refuses if the bank already exists.

Examples:
  ballast init                      # Create ./memory-bank
  ballast init --dir docs/bank      # Create at a custom path
  ballast init --json               # Structured output`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, dirFlag)
		},
	}

	cmd.Flags().StringVar(&dirFlag, "dir", "", "Memory bank directory (default: ./memory-bank or $BALLAST_BANK_DIR)")
	return cmd
}

// runInit executes the init command.
func runInit(cmd *cobra.Command, dirFlag string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())
	store := storeFromFlag(dirFlag)

	created, err := store.Init()
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"dir":     store.Dir(),
			"created": created,
			"status":  bank.StatusActive,
		})
	}

	printer.Println(bank.StatusActive)
	printer.Section("Created")
	printer.KeyValue("Directory", store.Dir())
	for _, name := range created {
		printer.Println("  " + name)
	}
	return nil
}

// storeFromFlag builds a bank store from the --dir flag, falling back
// to the default resolution.
func storeFromFlag(dirFlag string) *bank.Store {
	if dirFlag != "" {
		return bank.NewStore(dirFlag)
	}
	return bank.NewStore(bank.DefaultDir())
}
