package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestPrinter_Success_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	if err := p.Success(map[string]any{"message": "done", "count": 3}); err != nil {
		t.Fatalf("Success() error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["message"] != "done" {
		t.Errorf("message = %v, want done", decoded["message"])
	}
	if decoded["count"] != float64(3) {
		t.Errorf("count = %v, want 3", decoded["count"])
	}
}

func TestPrinter_Success_Human(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	if err := p.Success(map[string]any{"message": "bank initialized"}); err != nil {
		t.Fatalf("Success() error: %v", err)
	}
	if got := buf.String(); got != "bank initialized\n" {
		t.Errorf("Success() output = %q", got)
	}
}

func TestPrinter_Error_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	p.Error(NewConflictError("memory bank already exists"))

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["error"] != "memory bank already exists" {
		t.Errorf("error = %v", decoded["error"])
	}
	if decoded["code"] != float64(ExitConflict) {
		t.Errorf("code = %v, want %d", decoded["code"], ExitConflict)
	}
}

func TestPrinter_Error_Human_GoesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, false, false).WithStderr(&errOut)

	p.Error(errors.New("bad input"))

	if out.Len() != 0 {
		t.Errorf("stdout got %q, want empty", out.String())
	}
	if got := errOut.String(); !strings.Contains(got, "Error: bad input") {
		t.Errorf("stderr = %q", got)
	}
}

func TestPrinter_Warn(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, false, false).WithStderr(&errOut)

	p.Warn("usage at %d%%", 40)

	if got := errOut.String(); !strings.Contains(got, "Warning: usage at 40%") {
		t.Errorf("stderr = %q", got)
	}
}

func TestPrinter_Checklist(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	p.Checklist([]string{"first", "second"})

	want := "  - [ ] first\n  - [ ] second\n"
	if got := buf.String(); got != want {
		t.Errorf("Checklist() = %q, want %q", got, want)
	}
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	p.Table([]string{"FILE", "PRESENT"}, [][]string{
		{"productContext.md", "yes"},
		{"progress.md", "no"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Table() wrote %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "FILE") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "productContext.md  yes") {
		t.Errorf("row = %q", lines[1])
	}
}

func TestPrinter_WriteJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	type payload struct {
		Status string `json:"status"`
	}
	if err := p.WriteJSON(payload{Status: "[MEMORY BANK: ACTIVE]"}); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var decoded payload
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Status != "[MEMORY BANK: ACTIVE]" {
		t.Errorf("status = %q", decoded.Status)
	}
}

func TestErrorJSON(t *testing.T) {
	data := ErrorJSON("boom", ExitSystemError)

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("ErrorJSON() is not valid JSON: %v", err)
	}
	if decoded["error"] != "boom" || decoded["code"] != float64(ExitSystemError) {
		t.Errorf("ErrorJSON() = %v", decoded)
	}
}
