// Package main provides the entry point for the ballast CLI.
package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/ballast/internal/export"
	"github.com/gorewood/ballast/internal/output"
)

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	var dirFlag string
	var formatFlag string
	var outFlag string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the memory bank to structured formats",
		Long: `Export the whole memory bank as a single document for pipelines.

Formats:
  json   machine-readable bundle preserving per-file entry counts
  md     one markdown document with YAML frontmatter

Examples:
  ballast export                          # JSON bundle to stdout
  ballast export --format md              # Markdown bundle to stdout
  ballast export --format md --out bank.md # Write to a file`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, dirFlag, formatFlag, outFlag)
		},
	}

	cmd.Flags().StringVar(&dirFlag, "dir", "", "Memory bank directory (default: ./memory-bank or $BALLAST_BANK_DIR)")
	cmd.Flags().StringVar(&formatFlag, "format", "json", "Output format: json or md")
	cmd.Flags().StringVar(&outFlag, "out", "", "Output file (if omitted, writes to stdout)")
	return cmd
}

// runExport executes the export command.
func runExport(cmd *cobra.Command, dirFlag, format, out string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())

	if format != "json" && format != "md" {
		err := output.NewUserError("unknown format: " + format + " (expected json or md)")
		printer.Error(err)
		return err
	}

	store := storeFromFlag(dirFlag)
	bundle, err := export.Build(store, time.Now())
	if err != nil {
		printer.Error(err)
		return err
	}

	if out != "" {
		return writeBundleFile(printer, bundle, format, out)
	}

	if format == "md" {
		printer.Print("%s", export.FormatMarkdown(bundle))
		return nil
	}
	return export.FormatJSON(printer, bundle)
}

// writeBundleFile writes the bundle to a file in the chosen format.
func writeBundleFile(printer *output.Printer, bundle export.Bundle, format, path string) error {
	var data []byte
	if format == "md" {
		data = []byte(export.FormatMarkdown(bundle))
	} else {
		var err error
		data, err = export.MarshalJSON(bundle)
		if err != nil {
			printer.Error(err)
			return err
		}
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		sysErr := output.NewSystemErrorWithCause("failed to write "+path, err)
		printer.Error(sysErr)
		return sysErr
	}

	return printer.Success(map[string]any{
		"message": "exported to " + path,
		"path":    path,
		"format":  format,
	})
}
