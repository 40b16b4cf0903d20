// Package main provides the entry point for the ballast CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/ballast/internal/config"
	"github.com/gorewood/ballast/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves the --color persistent flag against TTY detection.
func useColor(cmd *cobra.Command) bool {
	colorMode := "auto"
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		colorMode = flag.Value.String()
	}
	return output.ResolveColorMode(colorMode, output.IsTTY(cmd.OutOrStdout()))
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the ballast CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ballast",
		Short: "Memory bank and mode toolkit for AI agent sessions",
		Long: `Ballast - persistent project context for AI agent sessions.

Ballast manages a memory bank of markdown files that carry project
context across sessions:
  - Reads the bank sequentially at session start (prime)
  - Appends timestamped entries, never rewriting prior content (update)
  - Synchronizes the whole bank on the UMB command (umb)
  - Serves the mode registry, hand-off matrix, and workflow triggers

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'ballast --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Load env files for BALLAST_* overrides that can't be exported.
	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local   (per-project override, gitignored)
//  2. $CWD/.env         (per-project)
//  3. ~/.config/ballast/env (global fallback)
func loadEnvFiles() {
	_ = config.LoadEnvFile(".env.local")
	_ = config.LoadEnvFile(".env")

	if dir := config.Dir(); dir != "" {
		_ = config.LoadEnvFile(filepath.Join(dir, "env"))
	}
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "bank", Title: "Memory Bank Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "rules", Title: "Mode & Rule Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	// Memory bank commands
	addGroupedCommand(cmd, newInitCmd(), "bank")
	addGroupedCommand(cmd, newStatusCmd(), "bank")
	addGroupedCommand(cmd, newUpdateCmd(), "bank")
	addGroupedCommand(cmd, newReviseCmd(), "bank")
	addGroupedCommand(cmd, newUmbCmd(), "bank")
	addGroupedCommand(cmd, newExportCmd(), "bank")

	// Mode and rule commands
	addGroupedCommand(cmd, newModesCmd(), "rules")
	addGroupedCommand(cmd, newHandoffCmd(), "rules")
	addGroupedCommand(cmd, newTriggersCmd(), "rules")
	addGroupedCommand(cmd, newContextCmd(), "rules")

	// Agent commands
	addGroupedCommand(cmd, newPrimeCmd(), "agent")
	addGroupedCommand(cmd, newSnapshotCmd(), "agent")
	addGroupedCommand(cmd, newWatchCmd(), "agent")
	addGroupedCommand(cmd, newServeCmd(), "agent")
	addGroupedCommand(cmd, newSkillCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
