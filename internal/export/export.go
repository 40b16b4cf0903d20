// Package export bundles the memory bank into portable formats for
// pipelines and documentation.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gorewood/ballast/internal/bank"
	"github.com/gorewood/ballast/internal/output"
)

// Schema identifies the export bundle format.
const Schema = "ballast.bank/v1"

// Bundle is the complete memory bank as a single document.
type Bundle struct {
	Schema      string       `json:"schema"`
	GeneratedAt time.Time    `json:"generated_at"`
	Dir         string       `json:"dir"`
	Status      string       `json:"status"`
	Files       []FileExport `json:"files"`
}

// FileExport is one bank file within a bundle.
type FileExport struct {
	Name       string `json:"name"`
	Purpose    string `json:"purpose"`
	Exists     bool   `json:"exists"`
	EntryCount int    `json:"entry_count"`
	Content    string `json:"content,omitempty"`
}

// Build assembles a bundle from the store, including file contents.
func Build(store *bank.Store, now time.Time) (Bundle, error) {
	session, err := store.Session(true)
	if err != nil {
		return Bundle{}, err
	}

	bundle := Bundle{
		Schema:      Schema,
		GeneratedAt: now,
		Dir:         session.Dir,
		Status:      session.Status,
	}
	for _, state := range session.Files {
		bundle.Files = append(bundle.Files, FileExport{
			Name:       state.File.Name,
			Purpose:    state.File.Purpose,
			Exists:     state.Exists,
			EntryCount: state.EntryCount,
			Content:    state.Content,
		})
	}
	return bundle, nil
}

// FormatJSON writes the bundle as JSON to the printer.
func FormatJSON(printer *output.Printer, bundle Bundle) error {
	return printer.WriteJSON(bundle)
}

// MarshalJSON renders the bundle as indented JSON bytes for file output.
func MarshalJSON(bundle Bundle) ([]byte, error) {
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to marshal bundle", err)
	}
	return append(data, '\n'), nil
}

// FormatMarkdown renders the bundle as a single markdown document with
// YAML frontmatter followed by each file's content under its own
// heading.
func FormatMarkdown(bundle Bundle) string {
	var builder strings.Builder

	builder.WriteString("---\n")
	fmt.Fprintf(&builder, "schema: %s\n", bundle.Schema)
	fmt.Fprintf(&builder, "generated_at: %s\n", bundle.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&builder, "dir: %s\n", bundle.Dir)
	fmt.Fprintf(&builder, "status: %q\n", bundle.Status)
	builder.WriteString("---\n\n")

	builder.WriteString("# Memory Bank\n")
	for _, file := range bundle.Files {
		fmt.Fprintf(&builder, "\n## %s\n\n", file.Name)
		if !file.Exists {
			builder.WriteString("_Missing._\n")
			continue
		}
		fmt.Fprintf(&builder, "Entries: %d\n\n", file.EntryCount)
		builder.WriteString(strings.TrimRight(file.Content, "\n"))
		builder.WriteString("\n")
	}
	return builder.String()
}
