package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/pwademo/internal/config"
	pwademomcp "github.com/gorewood/pwademo/internal/mcp"
	"github.com/gorewood/pwademo/internal/page"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run pwademo as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "pwademo": {
        "command": "pwademo",
        "args": ["serve"]
      }
    }
  }

Available tools: route, pages`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			server := pwademomcp.NewServer(buildVersion(), cfg, page.NewLoader())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
