// Package mcp provides a Model Context Protocol server for ballast.
// It exposes memory-bank and mode operations as MCP tools that any
// MCP-capable agent host can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/ballast/internal/bank"
	"github.com/gorewood/ballast/internal/mode"
)

// NewServer creates an MCP server with all ballast tools registered.
func NewServer(version string, store *bank.Store, registry *mode.Registry) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "ballast",
		Version: version,
	}, nil)
	registerTools(server, store, registry)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all ballast tools to the server.
func registerTools(server *mcp.Server, store *bank.Store, registry *mode.Registry) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "prime",
		Description: "Read the memory bank sequentially and return session-start context. " +
			"Reports [MEMORY BANK: ACTIVE] or [MEMORY BANK: INACTIVE] with a creation offer.",
		Annotations: readOnlyAnnotations(),
	}, handlePrime(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Show memory bank state: directory, per-file presence, and entry counts.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update",
		Description: "Append a timestamped entry ([YYYY-MM-DD HH:MM:SS] - Summary) to a named memory bank file. Never rewrites prior content.",
		Annotations: writeAnnotations(),
	}, handleUpdate(store))

	mcp.AddTool(server, &mcp.Tool{
		Name: "revise",
		Description: "Replace the body under a '## Section' heading of activeContext.md or progress.md. " +
			"Other files are append-only and are refused.",
		Annotations: writeAnnotations(),
	}, handleRevise(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "umb",
		Description: "Run the Update Memory Bank synchronization: append a session-sync entry to every bank file and return the checklist.",
		Annotations: writeAnnotations(),
	}, handleUMB(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "modes",
		Description: "List the mode registry: slug, name, description, and hand-off conditions per target mode.",
		Annotations: readOnlyAnnotations(),
	}, handleModes(registry))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "handoff",
		Description: "Return the named hand-off conditions for a directed mode pair (from, to).",
		Annotations: readOnlyAnnotations(),
	}, handleHandoff(registry))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "context_check",
		Description: "Check context-window usage against the 33% threshold. At or above it, returns the wrap-up alert and checklist.",
		Annotations: readOnlyAnnotations(),
	}, handleContextCheck())

	mcp.AddTool(server, &mcp.Tool{
		Name: "triggers",
		Description: "Return the update-trigger table and testing-workflow triggers; optionally match an event " +
			"description to the files it should update and detect the UMB phrase.",
		Annotations: readOnlyAnnotations(),
	}, handleTriggers())
}
