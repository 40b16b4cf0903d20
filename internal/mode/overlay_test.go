package mode

import (
	"os"
	"path/filepath"
	"testing"
)

func writeOverlay(t *testing.T, root, content string) {
	t.Helper()
	path := filepath.Join(root, OverlayPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadOverlay_Missing(t *testing.T) {
	modes, err := LoadOverlay(filepath.Join(t.TempDir(), OverlayPath))
	if err != nil {
		t.Fatalf("LoadOverlay() error: %v", err)
	}
	if modes != nil {
		t.Errorf("LoadOverlay() = %v, want nil for missing file", modes)
	}
}

func TestLoadOverlay_Invalid(t *testing.T) {
	root := t.TempDir()
	writeOverlay(t, root, "modes: [not: {valid")

	if _, err := LoadOverlay(filepath.Join(root, OverlayPath)); err == nil {
		t.Error("LoadOverlay() with malformed YAML succeeded, want error")
	}
}

func TestLoadRegistry_Overlay(t *testing.T) {
	root := t.TempDir()
	writeOverlay(t, root, `modes:
  - slug: code
    name: Implementer
    description: Replaces the built-in code mode.
  - slug: review
    name: Review
    description: Reads diffs and leaves findings.
    handoffs:
      code:
        - fix_requested
`)

	registry, err := LoadRegistry(root)
	if err != nil {
		t.Fatalf("LoadRegistry() error: %v", err)
	}

	code, ok := registry.Get("code")
	if !ok || code.Name != "Implementer" {
		t.Errorf("overlay code mode = %+v, want name Implementer", code)
	}

	conditions, err := registry.HandoffConditions("review", "code")
	if err != nil {
		t.Fatalf("HandoffConditions() error: %v", err)
	}
	if len(conditions) != 1 || conditions[0] != "fix_requested" {
		t.Errorf("review->code conditions = %v, want [fix_requested]", conditions)
	}
}

func TestLoadRegistry_InvalidOverlay(t *testing.T) {
	root := t.TempDir()
	writeOverlay(t, root, `modes:
  - slug: review
    name: Review
    description: Dangling hand-off.
    handoffs:
      release:
        - ready_to_ship
`)

	if _, err := LoadRegistry(root); err == nil {
		t.Error("LoadRegistry() with dangling hand-off target succeeded, want error")
	}
}

func TestLoadRegistry_NoOverlay(t *testing.T) {
	registry, err := LoadRegistry(t.TempDir())
	if err != nil {
		t.Fatalf("LoadRegistry() error: %v", err)
	}
	if len(registry.Modes()) != 5 {
		t.Errorf("registry has %d modes, want 5 built-ins", len(registry.Modes()))
	}
}
