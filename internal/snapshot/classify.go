package snapshot

import (
	"bytes"
	"path/filepath"
	"strings"
)

// FileType classifies a file for the snapshot header.
type FileType string

const (
	TypeCode         FileType = "code"
	TypeDocs         FileType = "documentation"
	TypeADR          FileType = "architecture_decision"
	TypeText         FileType = "text"
	TypeBinary       FileType = "binary"
	TypeUnknown      FileType = "unknown"
	binaryProbeBytes          = 512
)

// codeExtensions are extensions classified as source code.
var codeExtensions = map[string]bool{
	".py": true, ".js": true, ".ts": true, ".java": true, ".cpp": true,
	".c": true, ".h": true, ".go": true, ".rs": true, ".php": true,
	".rb": true, ".sh": true, ".sql": true, ".yaml": true, ".yml": true,
	".json": true, ".toml": true,
}

// docExtensions are extensions classified as documentation.
var docExtensions = map[string]bool{
	".md": true, ".txt": true, ".rst": true, ".adoc": true,
}

// docBasenames are extensionless documentation files matched by name.
var docBasenames = map[string]bool{
	"readme": true, "license": true, "contributing": true,
	"changelog": true, "authors": true,
}

// Classify determines the file type from its path and name.
// ADR classification wins over plain documentation: a markdown file
// anywhere under a path mentioning "adr" is an architecture decision.
func Classify(relPath string) FileType {
	ext := strings.ToLower(filepath.Ext(relPath))
	base := strings.ToLower(strings.TrimSuffix(filepath.Base(relPath), ext))

	if ext == ".md" && strings.Contains(strings.ToLower(relPath), "adr") {
		return TypeADR
	}
	switch {
	case codeExtensions[ext]:
		return TypeCode
	case docExtensions[ext]:
		return TypeDocs
	case ext == "" && docBasenames[base]:
		return TypeDocs
	default:
		return TypeUnknown
	}
}

// IsBinary reports whether content looks binary: a NUL byte within the
// first probe window.
func IsBinary(content []byte) bool {
	probe := content
	if len(probe) > binaryProbeBytes {
		probe = probe[:binaryProbeBytes]
	}
	return bytes.IndexByte(probe, 0) >= 0
}
