// Package main provides the entry point for the ballast CLI.
package main

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/ballast/internal/bank"
	"github.com/gorewood/ballast/internal/output"
)

// workflowOverridePath is the project-relative session protocol override.
const workflowOverridePath = ".ballast/PRIME.md"

// primeResult holds the data for prime output.
type primeResult struct {
	Status   string           `json:"status"`
	Active   bool             `json:"active"`
	Dir      string           `json:"dir"`
	Files    []bank.FileState `json:"files,omitempty"`
	Missing  []string         `json:"missing,omitempty"`
	Offer    string           `json:"offer,omitempty"`
	Workflow string           `json:"workflow"`
}

// newPrimeCmd creates the prime command.
func newPrimeCmd() *cobra.Command {
	var dirFlag string
	var noContentFlag bool
	var exportFlag bool

	cmd := &cobra.Command{
		Use:   "prime",
		Short: "Session bootstrapping context injection",
		Long: `Prime reads the memory bank sequentially and emits session-start context.

The output carries the memory bank status line, each canonical file in
read order, and the session protocol instructions. With no bank, the
status is [MEMORY BANK: INACTIVE] and the output includes the offer to
create one; this is a degraded state, not an error.

The session protocol can be customized by creating .ballast/PRIME.md
in the project root.

Examples:
  ballast prime               # Full session context with file contents
  ballast prime --no-content  # Presence and entry counts only
  ballast prime --json        # Structured context as JSON
  ballast prime --export      # Print the default session protocol`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if exportFlag {
				cmd.Print(defaultWorkflowContent)
				return nil
			}
			return runPrime(cmd, dirFlag, !noContentFlag)
		},
	}

	cmd.Flags().StringVar(&dirFlag, "dir", "", "Memory bank directory (default: ./memory-bank or $BALLAST_BANK_DIR)")
	cmd.Flags().BoolVar(&noContentFlag, "no-content", false, "Omit file contents from the context")
	cmd.Flags().BoolVar(&exportFlag, "export", false, "Print the default session protocol for customization")
	return cmd
}

// runPrime executes the prime command.
func runPrime(cmd *cobra.Command, dirFlag string, withContent bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())
	store := storeFromFlag(dirFlag)

	session, err := store.Session(withContent)
	if err != nil {
		printer.Error(err)
		return err
	}

	result := &primeResult{
		Status:   session.Status,
		Active:   session.Active,
		Dir:      session.Dir,
		Files:    session.Files,
		Missing:  session.Missing,
		Offer:    session.Offer,
		Workflow: loadWorkflow(),
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printHumanPrime(printer, result, withContent)
	return nil
}

// loadWorkflow returns the session protocol, preferring the project
// override over the built-in default.
func loadWorkflow() string {
	if data, err := os.ReadFile(filepath.Clean(workflowOverridePath)); err == nil {
		return string(data)
	}
	return defaultWorkflowContent
}

// printHumanPrime outputs the session context in human-readable form.
func printHumanPrime(printer *output.Printer, result *primeResult, withContent bool) {
	printer.Println(result.Status)

	if !result.Active {
		printer.Println()
		printer.Println(result.Offer)
		return
	}

	for _, state := range result.Files {
		printer.Section(state.File.Name)
		if !state.Exists {
			printer.Println("(missing)")
			continue
		}
		if withContent {
			printer.Print("%s", state.Content)
		} else {
			printer.KeyValue("Entries", strconv.Itoa(state.EntryCount))
		}
	}

	printer.Section("Session Protocol")
	printer.Print("%s", result.Workflow)
}
