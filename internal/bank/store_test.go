package bank

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorewood/ballast/internal/output"
)

// fixedClock returns a deterministic clock for tests.
func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 1, 15, 15, 4, 5, 0, time.UTC)
	}
}

// newTestStore creates a store over a temp directory with a fixed clock.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStoreAt(filepath.Join(t.TempDir(), DirName), fixedClock())
}

func TestStore_Init(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Init()
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if len(created) != 5 {
		t.Fatalf("Init() created %d files, want 5", len(created))
	}

	for _, f := range Files() {
		data, readErr := os.ReadFile(filepath.Join(store.Dir(), f.Name))
		if readErr != nil {
			t.Fatalf("reading %s: %v", f.Name, readErr)
		}
		content := string(data)
		if !strings.HasPrefix(content, "# "+f.Title+"\n") {
			t.Errorf("%s does not start with its title heading", f.Name)
		}
		if !strings.Contains(content, "[2026-01-15 15:04:05] - Memory bank initialized.") {
			t.Errorf("%s missing initial entry", f.Name)
		}
	}
}

func TestStore_Init_Conflict(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Init(); err != nil {
		t.Fatalf("first Init() error: %v", err)
	}

	_, err := store.Init()
	if err == nil {
		t.Fatal("second Init() succeeded, want conflict")
	}
	if code := output.GetExitCode(err); code != output.ExitConflict {
		t.Errorf("exit code = %d, want %d", code, output.ExitConflict)
	}
}

func TestStore_Append(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	before, _ := os.ReadFile(filepath.Join(store.Dir(), "decisionLog.md"))

	entry, err := store.Append("decisionLog", "Chose YAML overlays for custom modes")
	if err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	want := "[2026-01-15 15:04:05] - Chose YAML overlays for custom modes"
	if entry != want {
		t.Errorf("Append() entry = %q, want %q", entry, want)
	}

	after, _ := os.ReadFile(filepath.Join(store.Dir(), "decisionLog.md"))
	if !strings.HasPrefix(string(after), string(before)) {
		t.Error("Append() rewrote prior content")
	}
	if !strings.HasSuffix(string(after), "\n"+want+"\n") {
		t.Errorf("file does not end with the appended entry:\n%s", after)
	}
}

func TestStore_Append_Errors(t *testing.T) {
	tests := []struct {
		name     string
		init     bool
		file     string
		summary  string
		wantCode int
	}{
		{"uninitialized bank", false, "progress", "x", output.ExitUserError},
		{"unknown file", true, "notes.md", "x", output.ExitUserError},
		{"empty summary", true, "progress", "", output.ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			if tt.init {
				if _, err := store.Init(); err != nil {
					t.Fatalf("Init() error: %v", err)
				}
			}
			_, err := store.Append(tt.file, tt.summary)
			if err == nil {
				t.Fatal("Append() succeeded, want error")
			}
			if code := output.GetExitCode(err); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
		})
	}
}

func TestStore_Append_ReseedsMissingFile(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if err := os.Remove(filepath.Join(store.Dir(), "progress.md")); err != nil {
		t.Fatalf("removing progress.md: %v", err)
	}

	if _, err := store.Append("progress", "Back on track"); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(store.Dir(), "progress.md"))
	if err != nil {
		t.Fatalf("reading progress.md: %v", err)
	}
	if !strings.Contains(string(data), "# Progress") {
		t.Error("re-seeded file missing title heading")
	}
	if !strings.Contains(string(data), "Back on track") {
		t.Error("re-seeded file missing appended entry")
	}
}

func TestStore_Revise(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	if err := store.Revise("activeContext", "Current Focus", "Hardening the export pipeline"); err != nil {
		t.Fatalf("Revise() error: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(store.Dir(), "activeContext.md"))
	content := string(data)
	if !strings.Contains(content, "## Current Focus\n\nHardening the export pipeline\n") {
		t.Errorf("revised section not found:\n%s", content)
	}
	// Sections after the revised one survive
	if !strings.Contains(content, "## Recent Changes") {
		t.Error("Revise() dropped a following section")
	}
}

func TestStore_Revise_Refusals(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	tests := []struct {
		name    string
		file    string
		section string
	}{
		{"append-only file", "decisionLog", "Anything"},
		{"unknown section", "progress", "Nonexistent Section"},
		{"unknown file", "notes", "Anything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.Revise(tt.file, tt.section, "body")
			if err == nil {
				t.Fatal("Revise() succeeded, want error")
			}
			if code := output.GetExitCode(err); code != output.ExitUserError {
				t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
			}
		})
	}
}

func TestStore_Sync(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if err := os.Remove(filepath.Join(store.Dir(), "systemPatterns.md")); err != nil {
		t.Fatalf("removing systemPatterns.md: %v", err)
	}

	results, err := store.Sync("")
	if err != nil {
		t.Fatalf("Sync() error: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("Sync() touched %d files, want 5", len(results))
	}

	for _, r := range results {
		wantAction := "appended"
		if r.File == "systemPatterns.md" {
			wantAction = "created"
		}
		if r.Action != wantAction {
			t.Errorf("%s: action = %s, want %s", r.File, r.Action, wantAction)
		}
		if !IsEntry(r.Entry) {
			t.Errorf("%s: entry %q not in timestamped format", r.File, r.Entry)
		}
	}
}

func TestStore_Sync_Uninitialized(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Sync(""); err == nil {
		t.Fatal("Sync() on uninitialized bank succeeded, want error")
	}
}

func TestStore_States(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if err := os.Remove(filepath.Join(store.Dir(), "decisionLog.md")); err != nil {
		t.Fatalf("removing decisionLog.md: %v", err)
	}

	states, err := store.States(false)
	if err != nil {
		t.Fatalf("States() error: %v", err)
	}
	if len(states) != 5 {
		t.Fatalf("States() returned %d files, want 5", len(states))
	}

	for _, state := range states {
		wantExists := state.File.Name != "decisionLog.md"
		if state.Exists != wantExists {
			t.Errorf("%s: exists = %v, want %v", state.File.Name, state.Exists, wantExists)
		}
		if state.Exists && state.EntryCount != 1 {
			t.Errorf("%s: entry count = %d, want 1", state.File.Name, state.EntryCount)
		}
		if state.Content != "" {
			t.Errorf("%s: content populated without withContent", state.File.Name)
		}
	}
}
