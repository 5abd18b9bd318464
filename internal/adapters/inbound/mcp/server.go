package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewInvoiceMCPServer creates an MCP server with all invoice tools and
// resources registered.
func NewInvoiceMCPServer(version string) *server.MCPServer {
	s := server.NewMCPServer(
		"invoicegen",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s)
	registerResources(s)

	return s
}
