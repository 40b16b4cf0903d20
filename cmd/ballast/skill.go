// Package main provides the entry point for the ballast CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/ballast/internal/bank"
	"github.com/gorewood/ballast/internal/budget"
	"github.com/gorewood/ballast/internal/output"
)

// skillResult holds the structured skill documentation.
type skillResult struct {
	Concepts skillConcepts  `json:"concepts"`
	Workflow skillWorkflow  `json:"workflow"`
	Commands []skillCommand `json:"commands"`
	Contract skillContract  `json:"contract"`
}

// skillConcepts describes core ballast concepts.
type skillConcepts struct {
	Definition string   `json:"definition"`
	MemoryBank string   `json:"memory_bank"`
	Mode       string   `json:"mode"`
	UMB        string   `json:"umb"`
	KeyPoints  []string `json:"key_points"`
}

// skillWorkflow describes the typical session workflow.
type skillWorkflow struct {
	Description string      `json:"description"`
	Phases      []workPhase `json:"phases"`
}

// workPhase describes a workflow phase.
type workPhase struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Description string `json:"description"`
}

// skillCommand documents a single command.
type skillCommand struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Usage       string   `json:"usage"`
	Examples    []string `json:"examples,omitempty"`
}

// skillContract documents the output contract.
type skillContract struct {
	EntryFormat string     `json:"entry_format"`
	StatusLines []string   `json:"status_lines"`
	Threshold   int        `json:"context_threshold"`
	ExitCodes   []exitCode `json:"exit_codes"`
}

// exitCode documents one exit code.
type exitCode struct {
	Code    int    `json:"code"`
	Meaning string `json:"meaning"`
}

// newSkillCmd creates the skill command.
func newSkillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skill",
		Short: "Structured self-documentation for agent onboarding",
		Long: `Emit structured documentation of ballast concepts, workflow, commands,
and output contract. Agents consume the JSON form to learn the tool
without reading prose docs.

Examples:
  ballast skill           # Human-readable overview
  ballast skill --json    # Structured documentation`,
		RunE: runSkill,
	}
}

// runSkill executes the skill command.
func runSkill(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())
	result := buildSkillResult()

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printer.Section("Concepts")
	printer.KeyValue("Ballast", result.Concepts.Definition)
	printer.KeyValue("Memory Bank", result.Concepts.MemoryBank)
	printer.KeyValue("Mode", result.Concepts.Mode)
	printer.KeyValue("UMB", result.Concepts.UMB)

	printer.Section("Workflow")
	for _, phase := range result.Workflow.Phases {
		printer.KeyValue(phase.Name, phase.Command+": "+phase.Description)
	}

	printer.Section("Commands")
	rows := make([][]string, 0, len(result.Commands))
	for _, command := range result.Commands {
		rows = append(rows, []string{command.Name, command.Description})
	}
	printer.Table([]string{"COMMAND", "DESCRIPTION"}, rows)
	return nil
}

// buildSkillResult assembles the skill documentation.
func buildSkillResult() skillResult {
	return skillResult{
		Concepts: skillConcepts{
			Definition: "Memory bank and mode toolkit carrying project context across AI agent sessions.",
			MemoryBank: "Five markdown files (" + joinNames() + ") read at session start and appended to as work happens.",
			Mode:       "A named behavioral profile (code, architect, ask, debug, test) with directional hand-off conditions.",
			UMB:        "Update Memory Bank: a chat phrase that triggers synchronizing every bank file with the session.",
			KeyPoints: []string{
				"Entries are timestamped and append-only; prior content is never rewritten.",
				"Only activeContext.md and progress.md permit targeted section rewrites.",
				"A missing bank degrades to INACTIVE; it is offered, never forced.",
			},
		},
		Workflow: skillWorkflow{
			Description: "Prime at session start, update as work happens, sync before the session ends.",
			Phases: []workPhase{
				{Name: "Start", Command: "ballast prime", Description: "read the bank and inject session context"},
				{Name: "Work", Command: "ballast update", Description: "append decisions, progress, and context changes"},
				{Name: "Close", Command: "ballast umb", Description: "synchronize the whole bank from the session"},
			},
		},
		Commands: []skillCommand{
			{Name: "init", Description: "Create the memory bank", Usage: "ballast init [--dir path]"},
			{Name: "prime", Description: "Session bootstrapping context injection", Usage: "ballast prime [--no-content]"},
			{Name: "status", Description: "Show memory bank state", Usage: "ballast status"},
			{Name: "update", Description: "Append a timestamped entry", Usage: "ballast update <file> <summary>",
				Examples: []string{`ballast update decisionLog "Chose YAML overlays for custom modes"`}},
			{Name: "revise", Description: "Replace a section in a revisable file", Usage: "ballast revise <file> <section> <body>"},
			{Name: "umb", Description: "Run the UMB synchronization", Usage: "ballast umb [--summary text]"},
			{Name: "modes", Description: "List the mode registry", Usage: "ballast modes"},
			{Name: "handoff", Description: "Show hand-off conditions for a mode pair", Usage: "ballast handoff <from> <to>"},
			{Name: "triggers", Description: "Show update and testing-workflow triggers", Usage: "ballast triggers [--testing|--match text]"},
			{Name: "context", Description: "Check context-window usage", Usage: "ballast context --usage N"},
			{Name: "snapshot", Description: "Concatenate project files into one context document", Usage: "ballast snapshot [--out file]"},
			{Name: "export", Description: "Export the bank as JSON or markdown", Usage: "ballast export [--format json|md]"},
			{Name: "serve", Description: "Run as MCP server", Usage: "ballast serve"},
		},
		Contract: skillContract{
			EntryFormat: bank.TimestampFormat,
			StatusLines: []string{bank.StatusActive, bank.StatusInactive},
			Threshold:   budget.Threshold,
			ExitCodes: []exitCode{
				{Code: output.ExitSuccess, Meaning: "success"},
				{Code: output.ExitUserError, Meaning: "user error (bad args, unknown file or mode, uninitialized bank)"},
				{Code: output.ExitSystemError, Meaning: "system error (I/O failure)"},
				{Code: output.ExitConflict, Meaning: "conflict (bank already exists)"},
			},
		},
	}
}

// joinNames renders the canonical file names for prose.
func joinNames() string {
	names := bank.Names()
	joined := ""
	for i, name := range names {
		if i > 0 {
			joined += ", "
		}
		joined += name
	}
	return joined
}
