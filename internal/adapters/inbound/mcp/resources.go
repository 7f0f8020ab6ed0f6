package mcp

import (
	"context"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/billkraft/billkraft/internal/adapters/outbound/tui"
)

const summaryURI = "invoice://summary"

// registerResources registers all billkraft MCP resources on the given server.
func registerResources(s *server.MCPServer, path string) {
	s.AddResource(
		mcplib.NewResource(
			summaryURI,
			"Invoice Summary",
			mcplib.WithResourceDescription("Invoice total followed by its comments"),
			mcplib.WithMIMEType("text/plain"),
		),
		handleSummaryResource(path),
	)
}

func handleSummaryResource(path string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		summary, err := newService().SummarizePath(path, nil)
		if err != nil {
			return nil, fmt.Errorf("summary failed: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      summaryURI,
				MIMEType: "text/plain",
				Text:     tui.RenderPlain(summary),
			},
		}, nil
	}
}
