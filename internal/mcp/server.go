// Package mcp provides a Model Context Protocol server for pwademo.
// It exposes the router as MCP tools so an agent can see what a URL
// renders without a browser.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/pwademo/internal/config"
	"github.com/gorewood/pwademo/internal/page"
)

// NewServer creates an MCP server with all pwademo tools registered.
func NewServer(version string, cfg config.Config, pages *page.Loader) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "pwademo",
		Version: version,
	}, nil)
	registerTools(server, cfg, pages)
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

// registerTools adds all pwademo tools to the server.
func registerTools(server *mcp.Server, cfg config.Config, pages *page.Loader) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "route",
		Description: "Render the page for a URL hash fragment such as #print/world. Returns the parsed arguments, the page markup and text, and the error message shown, if any.",
		Annotations: readOnlyAnnotations(),
	}, handleRoute(cfg, pages))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "pages",
		Description: "List the page templates the router renders with, showing which are built-in and which are overridden.",
		Annotations: readOnlyAnnotations(),
	}, handlePages(pages))
}
