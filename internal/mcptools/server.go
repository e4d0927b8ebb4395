package mcptools

import (
	"context"

	"github.com/done-app/donectl/internal/journal"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewLogMCPServer creates an in-memory MCP server exposing log tools.
// Returns the server and a client transport for connecting to it (tests).
func NewLogMCPServer(store *journal.Store) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(store)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with registered log tools.
func CreateMCPServer(store *journal.Store) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "donectl",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_logs",
		Description: "Search log entries by content substring",
	}, SearchHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "filter_logs",
		Description: "Filter log entries by time range (today, week, month, all)",
	}, FilterHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_log",
		Description: "Append a timestamped log entry",
	}, AddLogHandler(store))

	return server
}
