// Package main provides the entry point for the ballast CLI.
package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/ballast/internal/bank"
	"github.com/gorewood/ballast/internal/output"
)

// initBank creates a memory bank in a temp dir and returns its path.
func initBank(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "memory-bank")
	if _, _, err := runCLI(t, "init", "--dir", dir); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestUpdateCommand_JSON(t *testing.T) {
	dir := initBank(t)

	out, _, err := runCLI(t, "update", "decisionLog", "Chose markdown for the bank format", "--dir", dir, "--json")
	if err != nil {
		t.Fatalf("update error: %v", err)
	}

	result := decodeJSON(t, out)
	if result["file"] != "decisionLog.md" {
		t.Errorf("file = %v, want decisionLog.md", result["file"])
	}
	entry, _ := result["entry"].(string)
	if !bank.IsEntry(entry) {
		t.Errorf("entry %q does not match the timestamped format", entry)
	}

	content, err := os.ReadFile(filepath.Join(dir, "decisionLog.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "Chose markdown for the bank format") {
		t.Error("entry not appended to file")
	}
}

func TestUpdateCommand_Errors(t *testing.T) {
	dir := initBank(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown file", []string{"update", "journal", "x", "--dir", dir}},
		{"empty summary", []string{"update", "progress", "   ", "--dir", dir}},
		{"uninitialized bank", []string{"update", "progress", "x", "--dir", filepath.Join(t.TempDir(), "absent")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			if err == nil {
				t.Fatal("update succeeded, want error")
			}
			if code := output.GetExitCode(err); code != output.ExitUserError {
				t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
			}
		})
	}
}

func TestReviseCommand(t *testing.T) {
	dir := initBank(t)

	_, _, err := runCLI(t, "revise", "activeContext", "Current Focus", "Watch command hardening", "--dir", dir)
	if err != nil {
		t.Fatalf("revise error: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "activeContext.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "Watch command hardening") {
		t.Error("revised body not written")
	}
}

func TestReviseCommand_AppendOnlyFile(t *testing.T) {
	dir := initBank(t)

	_, _, err := runCLI(t, "revise", "decisionLog", "Anything", "x", "--dir", dir)
	if err == nil {
		t.Fatal("revise of append-only file succeeded, want error")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}
