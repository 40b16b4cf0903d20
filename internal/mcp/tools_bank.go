package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/ballast/internal/bank"
)

// FileState is one canonical file as seen by the tools.
type FileState struct {
	Name       string `json:"name"        jsonschema:"canonical file name"`
	Exists     bool   `json:"exists"      jsonschema:"whether the file exists on disk"`
	EntryCount int    `json:"entry_count" jsonschema:"number of timestamped entries"`
	Content    string `json:"content,omitempty" jsonschema:"file content when requested"`
}

// toFileStates converts bank states to tool output.
func toFileStates(states []bank.FileState) []FileState {
	result := make([]FileState, 0, len(states))
	for _, state := range states {
		result = append(result, FileState{
			Name:       state.File.Name,
			Exists:     state.Exists,
			EntryCount: state.EntryCount,
			Content:    state.Content,
		})
	}
	return result
}

// --- Prime tool ---

// PrimeInput is the input for the prime tool.
type PrimeInput struct {
	WithContent bool `json:"with_content,omitempty" jsonschema:"include file contents (default true for prime)"`
}

// PrimeOutput is the output for the prime tool.
type PrimeOutput struct {
	Status  string      `json:"status"            jsonschema:"memory bank status line"`
	Active  bool        `json:"active"            jsonschema:"whether the bank is active"`
	Dir     string      `json:"dir"               jsonschema:"memory bank directory"`
	Files   []FileState `json:"files,omitempty"   jsonschema:"canonical files in read order"`
	Missing []string    `json:"missing,omitempty" jsonschema:"canonical files absent from an active bank"`
	Offer   string      `json:"offer,omitempty"   jsonschema:"creation offer when the bank is inactive"`
}

func handlePrime(store *bank.Store) mcp.ToolHandlerFor[PrimeInput, PrimeOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input PrimeInput) (*mcp.CallToolResult, PrimeOutput, error) {
		session, err := store.Session(true)
		if err != nil {
			return nil, PrimeOutput{}, fmt.Errorf("building session context: %w", err)
		}

		out := PrimeOutput{
			Status:  session.Status,
			Active:  session.Active,
			Dir:     session.Dir,
			Files:   toFileStates(session.Files),
			Missing: session.Missing,
			Offer:   session.Offer,
		}
		return nil, out, nil
	}
}

// --- Status tool ---

// StatusInput is the input for the status tool (no parameters needed).
type StatusInput struct{}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	Status     string      `json:"status"      jsonschema:"memory bank status line"`
	Dir        string      `json:"dir"         jsonschema:"memory bank directory"`
	Exists     bool        `json:"exists"      jsonschema:"whether the bank directory exists"`
	EntryTotal int         `json:"entry_total" jsonschema:"total timestamped entries across files"`
	Files      []FileState `json:"files,omitempty" jsonschema:"per-file state without content"`
}

func handleStatus(store *bank.Store) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		session, err := store.Session(false)
		if err != nil {
			return nil, StatusOutput{}, fmt.Errorf("reading bank state: %w", err)
		}

		out := StatusOutput{
			Status: session.Status,
			Dir:    session.Dir,
			Exists: session.Active,
			Files:  toFileStates(session.Files),
		}
		for _, state := range session.Files {
			out.EntryTotal += state.EntryCount
		}
		return nil, out, nil
	}
}

// --- Update tool ---

// UpdateInput is the input for the update tool.
type UpdateInput struct {
	File    string `json:"file"    jsonschema:"canonical file name, .md suffix optional"`
	Summary string `json:"summary" jsonschema:"entry summary text"`
}

// UpdateOutput is the output for the update tool.
type UpdateOutput struct {
	File  string `json:"file"  jsonschema:"file the entry was appended to"`
	Entry string `json:"entry" jsonschema:"rendered timestamped entry"`
}

func handleUpdate(store *bank.Store) mcp.ToolHandlerFor[UpdateInput, UpdateOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input UpdateInput) (*mcp.CallToolResult, UpdateOutput, error) {
		entry, err := store.Append(input.File, input.Summary)
		if err != nil {
			return nil, UpdateOutput{}, err
		}
		f, _ := bank.Lookup(input.File)
		return nil, UpdateOutput{File: f.Name, Entry: entry}, nil
	}
}

// --- Revise tool ---

// ReviseInput is the input for the revise tool.
type ReviseInput struct {
	File    string `json:"file"    jsonschema:"activeContext.md or progress.md"`
	Section string `json:"section" jsonschema:"heading to replace, without the ## prefix"`
	Body    string `json:"body"    jsonschema:"replacement section body"`
}

// ReviseOutput is the output for the revise tool.
type ReviseOutput struct {
	File    string `json:"file"    jsonschema:"file that was revised"`
	Section string `json:"section" jsonschema:"section that was replaced"`
}

func handleRevise(store *bank.Store) mcp.ToolHandlerFor[ReviseInput, ReviseOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ReviseInput) (*mcp.CallToolResult, ReviseOutput, error) {
		if err := store.Revise(input.File, input.Section, input.Body); err != nil {
			return nil, ReviseOutput{}, err
		}
		f, _ := bank.Lookup(input.File)
		return nil, ReviseOutput{File: f.Name, Section: input.Section}, nil
	}
}

// --- UMB tool ---

// UMBInput is the input for the umb tool.
type UMBInput struct {
	Summary string `json:"summary,omitempty" jsonschema:"session-sync summary (default provided)"`
}

// UMBOutput is the output for the umb tool.
type UMBOutput struct {
	Results   []SyncResult `json:"results"   jsonschema:"per-file sync actions"`
	Checklist []string     `json:"checklist" jsonschema:"UMB synchronization checklist"`
}

// SyncResult reports the action taken on one file during a sync.
type SyncResult struct {
	File   string `json:"file"   jsonschema:"canonical file name"`
	Action string `json:"action" jsonschema:"appended or created"`
	Entry  string `json:"entry"  jsonschema:"rendered session-sync entry"`
}

func handleUMB(store *bank.Store) mcp.ToolHandlerFor[UMBInput, UMBOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input UMBInput) (*mcp.CallToolResult, UMBOutput, error) {
		results, err := store.Sync(input.Summary)
		if err != nil {
			return nil, UMBOutput{}, err
		}

		out := UMBOutput{Checklist: umbChecklist()}
		for _, r := range results {
			out.Results = append(out.Results, SyncResult{File: r.File, Action: r.Action, Entry: r.Entry})
		}
		return nil, out, nil
	}
}
