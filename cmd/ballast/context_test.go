// Package main provides the entry point for the ballast CLI.
package main

import (
	"strings"
	"testing"

	"github.com/gorewood/ballast/internal/output"
)

func TestContextCommand_Alert(t *testing.T) {
	out, _, err := runCLI(t, "context", "--usage", "40", "--json")
	if err != nil {
		t.Fatalf("context error: %v", err)
	}

	result := decodeJSON(t, out)
	if result["alert"] != true {
		t.Errorf("alert = %v, want true", result["alert"])
	}
	if result["threshold"] != float64(33) {
		t.Errorf("threshold = %v, want 33", result["threshold"])
	}
	if checklist, ok := result["checklist"].([]any); !ok || len(checklist) == 0 {
		t.Errorf("checklist = %v, want items", result["checklist"])
	}
}

func TestContextCommand_AtThreshold(t *testing.T) {
	out, _, err := runCLI(t, "context", "--usage", "33", "--json")
	if err != nil {
		t.Fatalf("context error: %v", err)
	}
	if result := decodeJSON(t, out); result["alert"] != true {
		t.Error("usage exactly at the threshold should alert")
	}
}

func TestContextCommand_Quiet(t *testing.T) {
	out, errOut, err := runCLI(t, "context", "--usage", "10")
	if err != nil {
		t.Fatalf("context error: %v", err)
	}
	if !strings.Contains(out, "Context usage OK.") {
		t.Errorf("stdout = %q", out)
	}
	if errOut != "" {
		t.Errorf("stderr = %q, want empty", errOut)
	}
}

func TestContextCommand_AlertHuman(t *testing.T) {
	out, errOut, err := runCLI(t, "context", "--usage", "50")
	if err != nil {
		t.Fatalf("context error: %v", err)
	}
	if !strings.Contains(errOut, "Warning") || !strings.Contains(errOut, "Wrap up this session") {
		t.Errorf("stderr = %q, want wrap-up warning", errOut)
	}
	if !strings.Contains(out, "- [ ]") {
		t.Errorf("stdout = %q, want checklist", out)
	}
}

func TestContextCommand_InvalidUsage(t *testing.T) {
	for _, usage := range []string{"-1", "101"} {
		_, _, err := runCLI(t, "context", "--usage", usage)
		if err == nil {
			t.Errorf("usage %s accepted, want error", usage)
			continue
		}
		if code := output.GetExitCode(err); code != output.ExitUserError {
			t.Errorf("usage %s exit code = %d, want %d", usage, code, output.ExitUserError)
		}
	}
}

func TestContextCommand_UsageRequired(t *testing.T) {
	if _, _, err := runCLI(t, "context"); err == nil {
		t.Fatal("context without --usage succeeded, want error")
	}
}
