package cli

import (
	mcpadapter "github.com/abdidvp/invoicegen/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the invoicegen MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start invoicegen MCP server (stdio)",
		Long:  "Start the invoicegen MCP server using stdio transport. This lets AI assistants render invoices and fetch the example configuration and template.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewInvoiceMCPServer(version)
			return server.ServeStdio(s)
		},
	}
}
