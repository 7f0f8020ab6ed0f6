package mcp

import (
	"context"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/billkraft/billkraft/internal/adapters/outbound/config"
	"github.com/billkraft/billkraft/internal/adapters/outbound/tui"
	"github.com/billkraft/billkraft/internal/application"
)

// registerTools registers all billkraft MCP tools on the given server.
func registerTools(s *server.MCPServer, path string) {
	// 1. invoice_total
	s.AddTool(
		mcplib.NewTool("invoice_total",
			mcplib.WithDescription("Returns the invoice total with the discount applied before tax"),
			mcplib.WithNumber("discount",
				mcplib.Description("Discount rate overriding the document's (0.2 = 20%)"),
			),
		),
		handleTotal(path),
	)

	// 2. invoice_comments
	s.AddTool(
		mcplib.NewTool("invoice_comments",
			mcplib.WithDescription("Returns the invoice comments, each on its own line"),
		),
		handleComments(path),
	)
}

func newService() *application.InvoiceService {
	return application.NewInvoiceService(config.New())
}

func handleTotal(path string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		var override *float64
		if v, ok := request.GetArguments()["discount"]; ok {
			d, isNum := v.(float64)
			if !isNum {
				return errorResult(fmt.Sprintf("discount must be a number, got %v", v)), nil
			}
			override = &d
		}

		summary, err := newService().SummarizePath(path, override)
		if err != nil {
			return errorResult(fmt.Sprintf("total failed: %v", err)), nil
		}
		return textResult(tui.RenderTotalLine(summary)), nil
	}
}

func handleComments(path string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		summary, err := newService().SummarizePath(path, nil)
		if err != nil {
			return errorResult(fmt.Sprintf("comments failed: %v", err)), nil
		}
		return textResult(summary.Comments), nil
	}
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
