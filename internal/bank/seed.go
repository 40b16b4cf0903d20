package bank

// seedSections holds the section skeleton each file is created with.
// Revisable files get the sections their targeted edits operate on.
var seedSections = map[string][]string{
	"productContext.md": {"Project Overview", "Goals", "Features", "Architecture Overview"},
	"activeContext.md":  {"Current Focus", "Recent Changes", "Open Questions"},
	"systemPatterns.md": {"Coding Patterns", "Architectural Patterns", "Testing Patterns"},
	"decisionLog.md":    nil, // decisions are appended as entries, no fixed sections
	"progress.md":       {"Completed Tasks", "Current Tasks", "Next Steps"},
}

// seedContent builds the initial content for a canonical file.
func seedContent(f File) string {
	content := "# " + f.Title + "\n\n" + f.Purpose + "\n"
	for _, section := range seedSections[f.Name] {
		content += "\n## " + section + "\n"
	}
	return content
}
