// Package trigger declares the memory-bank update triggers, the
// testing-workflow triggers, and the UMB command phrase matcher.
package trigger

import (
	"regexp"
	"strings"

	"github.com/gorewood/ballast/internal/bank"
)

// UpdateRule declares when and how one memory-bank file is updated.
// Conditions are free-text heuristics evaluated by the agent host;
// MatchFiles offers keyword matching over the same table.
type UpdateRule struct {
	File      string `json:"file"`
	Condition string `json:"condition"`
	Action    string `json:"action"`
	Format    string `json:"format"`

	// keywords drive MatchFiles; they are matching hints, not part of
	// the declared rule.
	keywords []string
}

// Table returns the update-trigger table, one rule per canonical file.
// Every rule declares the same literal timestamp format.
func Table() []UpdateRule {
	return []UpdateRule{
		{
			File:      "productContext.md",
			Condition: "The high-level project description, goals, features, or overall architecture changes.",
			Action:    "Append a timestamped summary of the change.",
			Format:    bank.TimestampFormat,
			keywords:  []string{"goal", "scope", "feature", "architecture", "product", "overview"},
		},
		{
			File:      "activeContext.md",
			Condition: "The current focus of work changes, or a significant development happens in the session.",
			Action:    "Append a timestamped note; targeted section rewrites are also permitted for this file.",
			Format:    bank.TimestampFormat,
			keywords:  []string{"focus", "session", "working on", "switch", "question"},
		},
		{
			File:      "systemPatterns.md",
			Condition: "A new coding, architectural, or testing pattern is introduced or an existing one changes.",
			Action:    "Append the pattern with a short rationale.",
			Format:    bank.TimestampFormat,
			keywords:  []string{"pattern", "convention", "idiom", "style"},
		},
		{
			File:      "decisionLog.md",
			Condition: "A significant architectural or implementation decision is made.",
			Action:    "Append the decision, its rationale, and its implications. Never rewrite past decisions.",
			Format:    bank.TimestampFormat,
			keywords:  []string{"decision", "decided", "chose", "trade-off", "adr"},
		},
		{
			File:      "progress.md",
			Condition: "A task begins, completes, or changes state.",
			Action:    "Append the task outcome; targeted section rewrites are also permitted for this file.",
			Format:    bank.TimestampFormat,
			keywords:  []string{"task", "completed", "started", "progress", "milestone", "done"},
		},
	}
}

// MatchFiles returns the update rules whose conditions an event
// description satisfies, by case-insensitive keyword matching.
func MatchFiles(event string) []UpdateRule {
	lowered := strings.ToLower(event)
	var matched []UpdateRule
	for _, rule := range Table() {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				matched = append(matched, rule)
				break
			}
		}
	}
	return matched
}

// TestingRule maps a testing-workflow condition to a recommendation
// the host should surface.
type TestingRule struct {
	Condition      string `json:"condition"`
	Recommendation string `json:"recommendation"`
}

// TestingTable returns the testing-workflow triggers.
func TestingTable() []TestingRule {
	return []TestingRule{
		{
			Condition:      "New feature implemented",
			Recommendation: "Switch to Test mode to design and run tests for the new feature.",
		},
		{
			Condition:      "Bug fix completed",
			Recommendation: "Switch to Test mode to add a regression test covering the fixed path.",
		},
		{
			Condition:      "Refactor finished",
			Recommendation: "Switch to Test mode to verify behavior is unchanged.",
		},
		{
			Condition:      "Coverage gap identified",
			Recommendation: "Switch to Test mode to close the coverage gap before continuing.",
		},
	}
}

// umbWord matches the bare UMB keyword on a word boundary.
var umbWord = regexp.MustCompile(`(?i)\bumb\b`)

// IsUMB reports whether free chat text invokes the Update Memory Bank
// command: the literal phrase "update memory bank" or the word "UMB",
// case-insensitive.
func IsUMB(text string) bool {
	if strings.Contains(strings.ToLower(text), "update memory bank") {
		return true
	}
	return umbWord.MatchString(text)
}

// SyncChecklist is the UMB synchronization checklist the host walks
// through when the command fires.
func SyncChecklist() []string {
	return []string{
		"Halt the current task.",
		"Review the chat history for unrecorded decisions, progress, and context changes.",
		"Append a timestamped session-sync entry to every memory bank file.",
		"Confirm the memory bank is synchronized before resuming.",
	}
}
