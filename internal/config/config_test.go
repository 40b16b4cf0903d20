package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDir_BallastOverride(t *testing.T) {
	t.Setenv("BALLAST_CONFIG_HOME", "/tmp/ballast-conf")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	if got := Dir(); got != "/tmp/ballast-conf" {
		t.Errorf("Dir() = %q, want /tmp/ballast-conf", got)
	}
}

func TestDir_XDG(t *testing.T) {
	t.Setenv("BALLAST_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	want := filepath.Join("/tmp/xdg", "ballast")
	if got := Dir(); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestDir_HomeFallback(t *testing.T) {
	t.Setenv("BALLAST_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	got := Dir()
	if got == "" {
		t.Skip("no home directory available")
	}
	if filepath.Base(got) != "ballast" {
		t.Errorf("Dir() = %q, want a ballast directory", got)
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env")
	content := `# comment
BALLAST_TEST_A=plain
BALLAST_TEST_B="quoted value"
export BALLAST_TEST_C='single'
BALLAST_TEST_D=already-set

not-an-assignment
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("BALLAST_TEST_A", "")
	t.Setenv("BALLAST_TEST_B", "")
	t.Setenv("BALLAST_TEST_C", "")
	t.Setenv("BALLAST_TEST_D", "from-env")

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile() error: %v", err)
	}

	tests := []struct {
		key, want string
	}{
		{"BALLAST_TEST_A", "plain"},
		{"BALLAST_TEST_B", "quoted value"},
		{"BALLAST_TEST_C", "single"},
		{"BALLAST_TEST_D", "from-env"},
	}
	for _, tt := range tests {
		if got := os.Getenv(tt.key); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestLoadEnvFile_Missing(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "absent")); err != nil {
		t.Errorf("LoadEnvFile() on missing file = %v, want nil", err)
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`"hello"`, "hello"},
		{`'hello'`, "hello"},
		{`hello`, "hello"},
		{`"mismatched'`, `"mismatched'`},
		{`"`, `"`},
		{``, ``},
	}
	for _, tt := range tests {
		if got := unquote(tt.in); got != tt.want {
			t.Errorf("unquote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
