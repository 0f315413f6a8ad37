package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/pwademo/internal/config"
	"github.com/gorewood/pwademo/internal/page"
	"github.com/gorewood/pwademo/internal/router"
)

// --- Route tool ---

// RouteInput is the input for the route tool.
type RouteInput struct {
	Fragment string `json:"fragment,omitempty" jsonschema:"hash fragment to render, e.g. #upper/world (empty for the start page)"`
}

// RouteOutput is the output for the route tool.
type RouteOutput struct {
	Args     []string `json:"args"            jsonschema:"argument list, starting with the app name"`
	Verb     string   `json:"verb"            jsonschema:"first user argument that selected the page"`
	Body     string   `json:"body"            jsonschema:"markup rendered into the page body"`
	BodyText string   `json:"body_text"       jsonschema:"text content of the page body"`
	Error    string   `json:"error,omitempty" jsonschema:"message shown in the error area"`
}

func handleRoute(cfg config.Config, pages *page.Loader) mcp.ToolHandlerFor[RouteInput, RouteOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RouteInput) (*mcp.CallToolResult, RouteOutput, error) {
		res := router.RenderFragment(input.Fragment, cfg, router.WithPages(pages))
		return nil, RouteOutput{
			Args:     res.Args,
			Verb:     res.Verb,
			Body:     res.Body,
			BodyText: res.BodyText,
			Error:    res.Error,
		}, nil
	}
}

// --- Pages tool ---

// PagesInput is the input for the pages tool (no parameters needed).
type PagesInput struct{}

// PageSummary describes one page template.
type PageSummary struct {
	Name        string `json:"name"                jsonschema:"page name"`
	Description string `json:"description"         jsonschema:"what the page renders"`
	Source      string `json:"source"              jsonschema:"project, global or built-in"`
	Overrides   string `json:"overrides,omitempty" jsonschema:"source this page replaces"`
}

// PagesOutput is the output for the pages tool.
type PagesOutput struct {
	Count int           `json:"count" jsonschema:"number of pages"`
	Pages []PageSummary `json:"pages" jsonschema:"available pages"`
}

func handlePages(pages *page.Loader) mcp.ToolHandlerFor[PagesInput, PagesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ PagesInput) (*mcp.CallToolResult, PagesOutput, error) {
		infos := pages.List()
		out := PagesOutput{Count: len(infos), Pages: make([]PageSummary, 0, len(infos))}
		for _, info := range infos {
			out.Pages = append(out.Pages, PageSummary(info))
		}
		return nil, out, nil
	}
}
