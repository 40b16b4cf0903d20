// Package main provides the entry point for the ballast CLI.
package main

import (
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	ballastmcp "github.com/gorewood/ballast/internal/mcp"
	"github.com/gorewood/ballast/internal/mode"
	"github.com/gorewood/ballast/internal/output"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run ballast as a Model Context Protocol (MCP) server over stdio.

This exposes memory-bank and mode operations as MCP tools that any
MCP-capable agent environment can use (Claude Code, Cursor, Windsurf,
Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "ballast": {
        "command": "ballast",
        "args": ["serve"]
      }
    }
  }

Available tools: prime, status, update, revise, umb, modes, handoff,
context_check, triggers`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

			registry, err := mode.LoadRegistry(".")
			if err != nil {
				return output.NewUserError(err.Error())
			}

			store := storeFromFlag(dirFlag)
			server := ballastmcp.NewServer(buildVersion(), store, registry)

			logger.Info().Str("dir", store.Dir()).Bool("bank_exists", store.Exists()).Msg("mcp server starting")
			runErr := server.Run(cmd.Context(), &mcp.StdioTransport{})
			if runErr != nil {
				logger.Error().Err(runErr).Msg("mcp server stopped")
			}
			return runErr
		},
	}

	cmd.Flags().StringVar(&dirFlag, "dir", "", "Memory bank directory (default: ./memory-bank or $BALLAST_BANK_DIR)")
	return cmd
}
