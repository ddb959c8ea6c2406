// Package mcp provides a Model Context Protocol server for verbs.
// It exposes the formatter as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with all verbs tools registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "verbs",
		Version: version,
	}, nil)
	registerTools(server)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// pureAnnotations returns annotations for tools with no side effects.
func pureAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all verbs tools to the server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "render",
		Description: "Render a printf-style format string against a list of arguments. " +
			"Supports flags, width, precision, and positional parameters (%1$s).",
		Annotations: pureAnnotations(),
	}, handleRender)

	mcp.AddTool(server, &mcp.Tool{
		Name: "explain",
		Description: "Break a printf-style format string into its placeholders: verb, flags, " +
			"width, precision, and a prose description of each.",
		Annotations: pureAnnotations(),
	}, handleExplain)

	mcp.AddTool(server, &mcp.Tool{
		Name: "check",
		Description: "Lint a printf-style format string, optionally against a list of arguments: " +
			"grammar errors, argument count mismatches, values a verb cannot render, and ignored flags.",
		Annotations: pureAnnotations(),
	}, handleCheck)

	mcp.AddTool(server, &mcp.Tool{
		Name: "template_list",
		Description: "List the named format templates available from the project, global, " +
			"and built-in libraries.",
		Annotations: pureAnnotations(),
	}, handleTemplateList)
}
