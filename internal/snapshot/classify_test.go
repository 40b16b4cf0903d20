package snapshot

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want FileType
	}{
		{"main.go", TypeCode},
		{"scripts/build.sh", TypeCode},
		{"config.yaml", TypeCode},
		{"README.md", TypeDocs},
		{"notes.txt", TypeDocs},
		{"LICENSE", TypeDocs},
		{"docs/adr/0001-storage.md", TypeADR},
		{"adr-0002.md", TypeADR},
		{"docs/adr/diagram.png", TypeUnknown},
		{"photo.png", TypeUnknown},
		{"Makefile", TypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Classify(tt.path); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsBinary(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    bool
	}{
		{"plain text", []byte("hello world\n"), false},
		{"empty", nil, false},
		{"nul byte", []byte{'a', 0, 'b'}, true},
		{"nul beyond probe", append([]byte(strings.Repeat("x", 600)), 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBinary(tt.content); got != tt.want {
				t.Errorf("IsBinary() = %v, want %v", got, tt.want)
			}
		})
	}
}
