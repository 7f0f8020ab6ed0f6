package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewInvoiceMCPServer creates a new MCP server with the billkraft tools and
// resources registered. path is the invoice document, or a directory holding
// .billkraft.yaml, that every request is answered from.
func NewInvoiceMCPServer(path string) *server.MCPServer {
	s := server.NewMCPServer(
		"billkraft",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, path)
	registerResources(s, path)

	return s
}
