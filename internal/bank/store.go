package bank

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorewood/ballast/internal/output"
)

// Store provides read/write access to a memory-bank directory.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore creates a Store for the given memory-bank directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

// NewStoreAt creates a Store with an injected clock for tests.
func NewStoreAt(dir string, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{dir: dir, now: now}
}

// DefaultDir resolves the memory-bank directory.
// $BALLAST_BANK_DIR overrides; otherwise memory-bank/ under the
// current working directory.
func DefaultDir() string {
	if dir := os.Getenv("BALLAST_BANK_DIR"); dir != "" {
		return dir
	}
	return DirName
}

// Dir returns the memory-bank directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Exists returns true if the memory-bank directory exists.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.dir)
	return err == nil && info.IsDir()
}

// path returns the on-disk path for a canonical file.
func (s *Store) path(f File) string {
	return filepath.Join(s.dir, f.Name)
}

// Init creates the memory-bank directory and seeds all canonical files
// with their section skeletons plus an initial timestamped entry.
// Returns a conflict error if the directory already exists.
func (s *Store) Init() ([]string, error) {
	if s.Exists() {
		return nil, output.NewConflictError("memory bank already exists at " + s.dir)
	}
	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to create memory bank directory: "+s.dir, err)
	}

	created := make([]string, 0, len(canonical))
	entry := FormatEntry(s.now(), "Memory bank initialized.")
	for _, f := range canonical {
		content := seedContent(f) + "\n" + entry + "\n"
		if err := os.WriteFile(s.path(f), []byte(content), 0600); err != nil {
			return created, output.NewSystemErrorWithCause("failed to create "+f.Name, err)
		}
		created = append(created, f.Name)
	}
	return created, nil
}

// Read returns the canonical file and its content.
// Returns a user error for unknown names or a missing file.
func (s *Store) Read(name string) (File, string, error) {
	f, ok := Lookup(name)
	if !ok {
		return File{}, "", output.NewUserError("unknown memory bank file: " + name)
	}
	data, err := os.ReadFile(s.path(f))
	if err != nil {
		if os.IsNotExist(err) {
			return f, "", output.NewUserError("memory bank file not found: " + f.Name)
		}
		return f, "", output.NewSystemErrorWithCause("failed to read "+f.Name, err)
	}
	return f, string(data), nil
}

// FileState describes one canonical file as found on disk.
type FileState struct {
	File       File   `json:"file"`
	Exists     bool   `json:"exists"`
	EntryCount int    `json:"entry_count"`
	Content    string `json:"content,omitempty"`
}

// States reads every canonical file in session read order.
// Missing files are reported with Exists false, never as errors.
// Content is populated only when withContent is true.
func (s *Store) States(withContent bool) ([]FileState, error) {
	states := make([]FileState, 0, len(canonical))
	for _, f := range canonical {
		state := FileState{File: f}
		data, err := os.ReadFile(s.path(f))
		switch {
		case err == nil:
			state.Exists = true
			state.EntryCount = CountEntries(string(data))
			if withContent {
				state.Content = string(data)
			}
		case os.IsNotExist(err):
			// reported via Exists
		default:
			return nil, output.NewSystemErrorWithCause("failed to read "+f.Name, err)
		}
		states = append(states, state)
	}
	return states, nil
}

// Append appends a timestamped entry to a canonical file and returns
// the rendered entry. Prior content is never rewritten. If the bank
// directory exists but the file is missing, the file is re-seeded
// first. Returns a user error if the bank is not initialized.
func (s *Store) Append(name, summary string) (string, error) {
	f, ok := Lookup(name)
	if !ok {
		return "", output.NewUserError("unknown memory bank file: " + name)
	}
	if strings.TrimSpace(summary) == "" {
		return "", output.NewUserError("summary must not be empty")
	}
	if !s.Exists() {
		return "", output.NewUserError("memory bank not initialized (run 'ballast init')")
	}

	if err := s.ensureFile(f); err != nil {
		return "", err
	}

	entry := FormatEntry(s.now(), summary)
	if err := s.appendText(f, entry); err != nil {
		return "", err
	}
	return entry, nil
}

// ensureFile re-seeds a canonical file that has gone missing from an
// initialized bank.
func (s *Store) ensureFile(f File) error {
	_, err := os.Stat(s.path(f))
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return output.NewSystemErrorWithCause("failed to stat "+f.Name, err)
	}
	if writeErr := os.WriteFile(s.path(f), []byte(seedContent(f)), 0600); writeErr != nil {
		return output.NewSystemErrorWithCause("failed to re-create "+f.Name, writeErr)
	}
	return nil
}

// appendText appends a line to a file, separated from prior content by
// a blank line. Uses O_APPEND so existing content is untouched.
func (s *Store) appendText(f File, text string) error {
	file, err := os.OpenFile(s.path(f), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return output.NewSystemErrorWithCause("failed to open "+f.Name, err)
	}
	defer file.Close() //nolint:errcheck // close error surfaced by the write below

	info, err := file.Stat()
	if err != nil {
		return output.NewSystemErrorWithCause("failed to stat "+f.Name, err)
	}

	payload := text + "\n"
	if info.Size() > 0 {
		payload = "\n" + payload
	}
	if _, err := file.WriteString(payload); err != nil {
		return output.NewSystemErrorWithCause("failed to append to "+f.Name, err)
	}
	return nil
}

// Revise performs a targeted in-place edit: it replaces the body under
// a "## section" heading with the given body. Only revisable files
// (activeContext.md, progress.md) permit this; all other files are
// append-only and the call refuses with a user error.
func (s *Store) Revise(name, section, body string) error {
	f, ok := Lookup(name)
	if !ok {
		return output.NewUserError("unknown memory bank file: " + name)
	}
	if !f.Revisable {
		return output.NewUserError(f.Name + " is append-only; targeted edits are permitted only for activeContext.md and progress.md")
	}
	if !s.Exists() {
		return output.NewUserError("memory bank not initialized (run 'ballast init')")
	}

	data, err := os.ReadFile(s.path(f))
	if err != nil {
		if os.IsNotExist(err) {
			return output.NewUserError("memory bank file not found: " + f.Name)
		}
		return output.NewSystemErrorWithCause("failed to read "+f.Name, err)
	}

	revised, found := replaceSection(string(data), section, body)
	if !found {
		return output.NewUserError("section not found in " + f.Name + ": " + section)
	}
	if err := os.WriteFile(s.path(f), []byte(revised), 0600); err != nil {
		return output.NewSystemErrorWithCause("failed to write "+f.Name, err)
	}
	return nil
}

// replaceSection swaps the body between a "## heading" line and the
// next "## " heading (or EOF) for the given body. Heading match is
// case-insensitive. Returns the revised content and whether the
// heading was found.
func replaceSection(content, section, body string) (string, bool) {
	lines := strings.Split(content, "\n")
	heading := "## " + strings.ToLower(strings.TrimSpace(section))

	start := -1
	for i, line := range lines {
		if strings.ToLower(strings.TrimSpace(line)) == heading {
			start = i
			break
		}
	}
	if start == -1 {
		return content, false
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "## ") {
			end = i
			break
		}
	}

	revised := make([]string, 0, len(lines))
	revised = append(revised, lines[:start+1]...)
	revised = append(revised, "")
	revised = append(revised, strings.Split(strings.TrimRight(body, "\n"), "\n")...)
	revised = append(revised, "")
	revised = append(revised, lines[end:]...)
	return strings.Join(revised, "\n"), true
}

// SyncResult reports the action taken on one file during a sync.
type SyncResult struct {
	File   string `json:"file"`
	Action string `json:"action"` // "appended" or "created"
	Entry  string `json:"entry"`
}

// Sync runs the UMB synchronization: it appends a session-sync entry to
// every canonical file, re-seeding any that are missing. Returns a user
// error if the bank is not initialized.
func (s *Store) Sync(summary string) ([]SyncResult, error) {
	if !s.Exists() {
		return nil, output.NewUserError("memory bank not initialized (run 'ballast init')")
	}
	if summary == "" {
		summary = "Session sync: memory bank updated from chat context."
	}

	entry := FormatEntry(s.now(), summary)
	results := make([]SyncResult, 0, len(canonical))
	for _, f := range canonical {
		action := "appended"
		if _, err := os.Stat(s.path(f)); os.IsNotExist(err) {
			action = "created"
		}
		if err := s.ensureFile(f); err != nil {
			return results, err
		}
		if err := s.appendText(f, entry); err != nil {
			return results, err
		}
		results = append(results, SyncResult{File: f.Name, Action: action, Entry: entry})
	}
	return results, nil
}
