// Package snapshot concatenates a project's text files into a single
// context document with per-file metadata headers, for feeding a
// large-context model in one shot.
package snapshot

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// IgnoreFile is the per-project ignore list, one glob pattern per line.
// Patterns ending in "/" exclude whole directories.
const IgnoreFile = ".context-ignore"

// DefaultMaxFileSize is the per-file size cap; larger files are skipped.
const DefaultMaxFileSize = 1_000_000

// separator is the per-file header rule.
var separator = strings.Repeat("=", 80)

// Options configures a snapshot run.
type Options struct {
	Root          string
	Excludes      []string // glob patterns, in addition to .context-ignore
	MaxFileSize   int64
	IncludeHidden bool
	Now           func() time.Time

	// OutputPath is the file the snapshot is being written to, if any.
	// When it lives under Root the walker must skip it, or the document
	// would swallow its own partial content.
	OutputPath string
}

// Stats summarizes a snapshot run.
type Stats struct {
	Processed  int   `json:"processed"`
	Ignored    int   `json:"ignored"`
	Skipped    int   `json:"skipped"` // binary, oversize, unreadable
	TotalBytes int64 `json:"total_bytes"`
}

// alwaysExcluded are directories never worth snapshotting.
var alwaysExcluded = map[string]bool{
	".git": true, "node_modules": true, "vendor": true, "__pycache__": true,
}

// Write walks the tree under opts.Root and writes the context document
// to w: a generation header, each included file under a metadata
// separator, and a summary footer.
func Write(w io.Writer, opts Options) (Stats, error) {
	if opts.Root == "" {
		opts.Root = "."
	}
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = DefaultMaxFileSize
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	ignores, err := loadIgnoreFile(filepath.Join(opts.Root, IgnoreFile))
	if err != nil {
		return Stats{}, err
	}
	patterns := append(ignores, opts.Excludes...)

	outAbs := ""
	if opts.OutputPath != "" {
		if abs, absErr := filepath.Abs(opts.OutputPath); absErr == nil {
			outAbs = abs
		}
	}

	var stats Stats
	if _, err := fmt.Fprintf(w, "# Codebase Context\n\nGenerated on: %s\nRoot directory: %s\n",
		now().Format(time.RFC3339), opts.Root); err != nil {
		return stats, err
	}

	walkErr := filepath.WalkDir(opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(opts.Root, path)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if alwaysExcluded[d.Name()] || (!opts.IncludeHidden && strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			if excluded(rel+"/", patterns) {
				stats.Ignored++
				return filepath.SkipDir
			}
			return nil
		}

		if !opts.IncludeHidden && strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		// Never snapshot the document being written.
		if outAbs != "" {
			if abs, absErr := filepath.Abs(path); absErr == nil && abs == outAbs {
				stats.Skipped++
				return nil
			}
		}
		if excluded(rel, patterns) {
			stats.Ignored++
			return nil
		}
		return writeFile(w, opts, path, rel, &stats)
	})
	if walkErr != nil {
		return stats, fmt.Errorf("walking %s: %w", opts.Root, walkErr)
	}

	_, err = fmt.Fprintf(w, "\n\n%s\nSUMMARY\nFiles processed: %d\nFiles ignored: %d\nFiles skipped: %d\nTotal size: %d bytes\n%s\n",
		separator, stats.Processed, stats.Ignored, stats.Skipped, stats.TotalBytes, separator)
	return stats, err
}

// writeFile emits one file under its metadata header, or counts it as
// skipped (oversize, binary, unreadable).
func writeFile(w io.Writer, opts Options, path, rel string, stats *Stats) error {
	info, err := os.Stat(path)
	if err != nil {
		stats.Skipped++
		return nil
	}
	if info.Size() > opts.MaxFileSize {
		stats.Skipped++
		return nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		stats.Skipped++
		return nil
	}
	if IsBinary(content) {
		stats.Skipped++
		return nil
	}

	_, err = fmt.Fprintf(w, "\n\n%s\nFILE: %s\nTYPE: %s\nSIZE: %d bytes\nLAST MODIFIED: %s\n%s\n\n%s",
		separator, rel, Classify(rel), info.Size(),
		info.ModTime().Format(time.RFC3339), separator, content)
	if err != nil {
		return err
	}

	stats.Processed++
	stats.TotalBytes += info.Size()
	return nil
}

// excluded reports whether a relative path matches any pattern.
// Directory patterns end with "/" and match the directory and
// everything under it.
func excluded(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		if strings.HasSuffix(pattern, "/") {
			dir := strings.TrimSuffix(pattern, "/")
			if rel == dir || rel == dir+"/" || strings.HasPrefix(rel, dir+"/") {
				return true
			}
			continue
		}
		if ok, err := doublestar.Match(pattern, strings.TrimSuffix(rel, "/")); err == nil && ok {
			return true
		}
		if rel == pattern {
			return true
		}
	}
	return false
}

// loadIgnoreFile reads .context-ignore patterns, skipping blanks and
// comments. A missing file yields no patterns.
func loadIgnoreFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns, nil
}
