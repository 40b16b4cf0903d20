// Package main provides the entry point for the ballast CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gorewood/ballast/internal/output"
	"github.com/gorewood/ballast/internal/snapshot"
)

// snapshotFlags holds the command-line flags for the snapshot command.
type snapshotFlags struct {
	root          string
	out           string
	excludes      []string
	maxFileSize   int64
	includeHidden bool
}

// newSnapshotCmd creates the snapshot command.
func newSnapshotCmd() *cobra.Command {
	flags := &snapshotFlags{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Concatenate project files into one context document",
		Long: `Walk the project tree and concatenate its text files into a single
context document, each under a metadata header (path, type, size,
modified time). Binary files, oversize files, and excluded patterns are
skipped; a .context-ignore file in the root adds per-project patterns.

The result is meant to be fed to a large-context model in one shot.

Examples:
  ballast snapshot --out context.txt
  ballast snapshot --exclude '**/*_test.go' --exclude 'dist/'
  ballast snapshot --root ../service --max-file-size 500000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSnapshot(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.root, "root", ".", "Root directory to snapshot")
	cmd.Flags().StringVar(&flags.out, "out", "", "Output file (if omitted, writes to stdout)")
	cmd.Flags().StringArrayVarP(&flags.excludes, "exclude", "e", nil, "Glob patterns to exclude (repeatable)")
	cmd.Flags().Int64Var(&flags.maxFileSize, "max-file-size", snapshot.DefaultMaxFileSize, "Per-file size cap in bytes")
	cmd.Flags().BoolVar(&flags.includeHidden, "include-hidden", false, "Include hidden files and directories")
	return cmd
}

// runSnapshot executes the snapshot command.
func runSnapshot(cmd *cobra.Command, flags *snapshotFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())

	opts := snapshot.Options{
		Root:          flags.root,
		Excludes:      flags.excludes,
		MaxFileSize:   flags.maxFileSize,
		IncludeHidden: flags.includeHidden,
		OutputPath:    flags.out,
	}

	if flags.out == "" {
		_, err := snapshot.Write(cmd.OutOrStdout(), opts)
		if err != nil {
			sysErr := output.NewSystemErrorWithCause("snapshot failed", err)
			printer.Error(sysErr)
			return sysErr
		}
		return nil
	}

	file, err := os.Create(flags.out)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("failed to create "+flags.out, err)
		printer.Error(sysErr)
		return sysErr
	}
	defer file.Close() //nolint:errcheck // close error surfaced by Write

	stats, err := snapshot.Write(file, opts)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("snapshot failed", err)
		printer.Error(sysErr)
		return sysErr
	}

	return printer.Success(map[string]any{
		"message":     "snapshot written to " + flags.out,
		"path":        flags.out,
		"processed":   stats.Processed,
		"ignored":     stats.Ignored,
		"skipped":     stats.Skipped,
		"total_bytes": stats.TotalBytes,
	})
}
