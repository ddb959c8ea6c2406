// Package main provides the entry point for the verbs CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	verbsmcp "github.com/gorewood/verbs/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run verbs as a Model Context Protocol (MCP) server over stdio.

This exposes the formatter as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "verbs": {
        "command": "verbs",
        "args": ["serve"]
      }
    }
  }

Available tools: render, explain, check, template_list`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := verbsmcp.NewServer(buildVersion())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
