// Package bank implements the memory-bank file set: the canonical files,
// the timestamped update-entry convention, and the append/revise/sync
// operations an agent host performs against them.
package bank

import "strings"

// DirName is the default memory-bank directory name at the project root.
const DirName = "memory-bank"

// File describes one canonical memory-bank file.
type File struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Purpose string `json:"purpose"`

	// Revisable marks files that permit targeted in-place section edits
	// in addition to appends. All other files are strictly append-only.
	Revisable bool `json:"revisable"`
}

// canonical is the memory-bank file set in session read order.
var canonical = []File{
	{
		Name:    "productContext.md",
		Title:   "Product Context",
		Purpose: "High-level project description, goals, features, and overall architecture.",
	},
	{
		Name:      "activeContext.md",
		Title:     "Active Context",
		Purpose:   "Current session state: focus of work, recent changes, open questions.",
		Revisable: true,
	},
	{
		Name:    "systemPatterns.md",
		Title:   "System Patterns",
		Purpose: "Recurring coding, architectural, and testing patterns used in the project.",
	},
	{
		Name:    "decisionLog.md",
		Title:   "Decision Log",
		Purpose: "Architectural and implementation decisions with rationale and implications.",
	},
	{
		Name:      "progress.md",
		Title:     "Progress",
		Purpose:   "Task progress: completed work, current tasks, and next steps.",
		Revisable: true,
	},
}

// Files returns the canonical memory-bank files in session read order.
func Files() []File {
	files := make([]File, len(canonical))
	copy(files, canonical)
	return files
}

// Lookup resolves a canonical file by name. The .md suffix is optional
// and matching is case-insensitive.
func Lookup(name string) (File, bool) {
	want := strings.ToLower(strings.TrimSuffix(name, ".md"))
	for _, f := range canonical {
		if strings.ToLower(strings.TrimSuffix(f.Name, ".md")) == want {
			return f, true
		}
	}
	return File{}, false
}

// Names returns the canonical file names in session read order.
func Names() []string {
	names := make([]string, len(canonical))
	for i, f := range canonical {
		names[i] = f.Name
	}
	return names
}
