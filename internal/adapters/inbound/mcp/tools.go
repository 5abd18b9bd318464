package mcp

import (
	"context"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/invoicegen/internal/adapters/outbound/config"
	"github.com/abdidvp/invoicegen/internal/adapters/outbound/template"
	"github.com/abdidvp/invoicegen/internal/application"
	"github.com/abdidvp/invoicegen/internal/domain"
	"github.com/abdidvp/invoicegen/internal/domain/money"
)

// overrideArgs are the tool arguments that behave like command-line values.
var overrideArgs = []string{
	domain.KeyClient,
	domain.KeyCurrency,
	domain.KeyDate,
	domain.KeyDueDate,
	domain.KeyFrom,
	domain.KeyHeader,
	domain.KeyNotes,
	domain.KeyNumber,
}

// registerTools registers all invoice MCP tools on the given server.
func registerTools(s *server.MCPServer) {
	// 1. invoice_render_html
	opts := []mcplib.ToolOption{
		mcplib.WithDescription("Assemble an invoice from a YAML configuration and return the filled HTML"),
		mcplib.WithString("config",
			mcplib.Required(),
			mcplib.Description("YAML invoice configuration (see invoice_example_config)"),
		),
		mcplib.WithString("template",
			mcplib.Description("HTML template text with %field% placeholders; the built-in template is used when empty"),
		),
	}
	for _, name := range overrideArgs {
		opts = append(opts, mcplib.WithString(name,
			mcplib.Description(fmt.Sprintf("Overrides %q from the configuration", name)),
		))
	}
	s.AddTool(mcplib.NewTool("invoice_render_html", opts...), handleRenderHTML)

	// 2. invoice_example_config
	s.AddTool(
		mcplib.NewTool("invoice_example_config",
			mcplib.WithDescription("Returns an example YAML invoice configuration"),
		),
		handleExampleConfig,
	)

	// 3. invoice_example_template
	s.AddTool(
		mcplib.NewTool("invoice_example_template",
			mcplib.WithDescription("Returns the built-in HTML invoice template"),
		),
		handleExampleTemplate,
	)
}

func handleRenderHTML(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	cfg, err := request.RequireString("config")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	fields := domain.FieldSet{}
	for _, name := range overrideArgs {
		if v := request.GetString(name, ""); v != "" {
			fields[name] = v
		}
	}

	var templates domain.TemplateLoader = template.New()
	if text := request.GetString("template", ""); text != "" {
		templates = staticTemplate(text)
	}

	svc := application.NewInvoiceService(config.New(), templates, money.New(), nil)
	_, markup, err := svc.Build(application.Request{
		Fields: fields,
		Config: strings.NewReader(cfg),
	})
	if err != nil {
		return errorResult(fmt.Sprintf("render failed: %v", err)), nil
	}
	return textResult(markup), nil
}

func handleExampleConfig(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	return textResult(domain.ExampleConfig), nil
}

func handleExampleTemplate(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	return textResult(template.Default()), nil
}

// staticTemplate serves template text supplied by the caller.
type staticTemplate string

func (t staticTemplate) Load(string) (string, error) { return string(t), nil }

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
