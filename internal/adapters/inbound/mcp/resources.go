package mcp

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/invoicegen/internal/adapters/outbound/template"
	"github.com/abdidvp/invoicegen/internal/domain"
)

const (
	configExampleURI   = "invoice://examples/config"
	templateExampleURI = "invoice://examples/template"
)

// registerResources registers the example documents as MCP resources.
func registerResources(s *server.MCPServer) {
	s.AddResource(
		mcplib.NewResource(
			configExampleURI,
			"Example configuration",
			mcplib.WithResourceDescription("YAML configuration covering every invoice field"),
			mcplib.WithMIMEType("application/yaml"),
		),
		textResource(configExampleURI, "application/yaml", domain.ExampleConfig),
	)

	s.AddResource(
		mcplib.NewResource(
			templateExampleURI,
			"Built-in template",
			mcplib.WithResourceDescription("HTML template with %field% placeholders"),
			mcplib.WithMIMEType("text/html"),
		),
		textResource(templateExampleURI, "text/html", template.Default()),
	)
}

func textResource(uri, mime, text string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      uri,
				MIMEType: mime,
				Text:     text,
			},
		}, nil
	}
}
