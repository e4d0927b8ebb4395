package cmd

import (
	"context"
	"log"
	"os"

	"github.com/done-app/donectl/internal/mcptools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes log tools
over stdio transport, so MCP clients can read and append to your log.

Available tools:
  - search_logs: substring search over log content
  - filter_logs: filter entries by time range (today/week/month/all)
  - add_log: append a timestamped entry`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if store == nil {
			return cmd.Help()
		}

		server := mcptools.CreateMCPServer(store)

		// Log to stderr (stdout is reserved for MCP protocol)
		log.SetOutput(os.Stderr)
		log.Printf("Starting donectl MCP server (stdio transport)")
		log.Printf("Storage backend: %s", appConfig.Storage)
		log.Printf("Data directory: %s", appConfig.DataDir)

		return server.Run(context.Background(), &mcp.StdioTransport{})
	},
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}
