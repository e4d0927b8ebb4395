package mcptools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/done-app/donectl/internal/entry"
	"github.com/done-app/donectl/internal/export"
	"github.com/done-app/donectl/internal/journal"
	"github.com/done-app/donectl/internal/timeline"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func toResult(e entry.Entry) EntryResult {
	return EntryResult{
		ID:      e.ID,
		Preview: e.Preview(100),
		Date:    e.CreatedAt.Local().Format("2006-01-02"),
		Time:    e.CreatedAt.Local().Format("15:04"),
	}
}

// SearchHandler returns the handler function for the search_logs MCP tool.
func SearchHandler(store *journal.Store) func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
		limit := input.Limit
		if limit <= 0 {
			limit = 10
		}

		query := strings.ToLower(input.Query)
		var results []EntryResult
		for _, e := range timeline.SortedDesc(store.Entries()) {
			if strings.Contains(strings.ToLower(e.Content), query) {
				results = append(results, toResult(e))
				if len(results) >= limit {
					break
				}
			}
		}

		return nil, SearchOutput{Entries: results}, nil
	}
}

// FilterHandler returns the handler function for the filter_logs MCP tool.
func FilterHandler(store *journal.Store) func(ctx context.Context, req *mcp.CallToolRequest, input FilterInput) (*mcp.CallToolResult, FilterOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input FilterInput) (*mcp.CallToolResult, FilterOutput, error) {
		r := export.RangeAll
		if input.Range != "" {
			parsed, err := export.ParseRange(input.Range)
			if err != nil {
				return nil, FilterOutput{}, err
			}
			r = parsed
		}

		filtered := export.Filter(store.Entries(), r, time.Now())
		if input.Limit > 0 && len(filtered) > input.Limit {
			filtered = filtered[len(filtered)-input.Limit:]
		}

		results := make([]EntryResult, len(filtered))
		for i, e := range filtered {
			results[i] = toResult(e)
		}
		return nil, FilterOutput{Entries: results}, nil
	}
}

// AddLogHandler returns the handler function for the add_log MCP tool.
func AddLogHandler(store *journal.Store) func(ctx context.Context, req *mcp.CallToolRequest, input AddLogInput) (*mcp.CallToolResult, AddLogOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AddLogInput) (*mcp.CallToolResult, AddLogOutput, error) {
		id, ok := store.Add(input.Content)
		if !ok {
			return nil, AddLogOutput{}, fmt.Errorf("log content must not be empty")
		}
		e, _ := store.Get(id)
		return nil, AddLogOutput{
			ID:   id,
			Date: e.CreatedAt.Local().Format("2006-01-02"),
		}, nil
	}
}
