package mcptools_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/done-app/donectl/internal/entry"
	"github.com/done-app/donectl/internal/journal"
	"github.com/done-app/donectl/internal/mcptools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func newTestSession(t *testing.T, store *journal.Store) *mcp.ClientSession {
	t.Helper()
	_, clientTransport := mcptools.NewLogMCPServer(store)
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(context.Background(), clientTransport, nil)
	if err != nil {
		t.Fatalf("failed to connect client: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func decodeOutput(t *testing.T, result *mcp.CallToolResult, out any) {
	t.Helper()
	if result.StructuredContent == nil {
		t.Fatal("expected structured content in result")
	}
	outputJSON, err := json.Marshal(result.StructuredContent)
	if err != nil {
		t.Fatalf("failed to marshal structured content: %v", err)
	}
	if err := json.Unmarshal(outputJSON, out); err != nil {
		t.Fatalf("failed to unmarshal structured content: %v", err)
	}
}

func TestMCPServer_SearchLogs(t *testing.T) {
	store := journal.New([]entry.Entry{
		{ID: "testid01", Content: "Today I learned about Go interfaces", CreatedAt: time.Now()},
		{ID: "testid02", Content: "Meeting notes from standup", CreatedAt: time.Now()},
	}, nil)

	session := newTestSession(t, store)
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "search_logs",
		Arguments: mcptools.SearchInput{Query: "go interfaces", Limit: 10},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}

	var output mcptools.SearchOutput
	decodeOutput(t, result, &output)

	if len(output.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(output.Entries))
	}
	if output.Entries[0].ID != "testid01" {
		t.Errorf("expected entry testid01, got %s", output.Entries[0].ID)
	}
}

func TestMCPServer_FilterLogs(t *testing.T) {
	now := time.Now()
	store := journal.New([]entry.Entry{
		{ID: "today001", Content: "Entry from today", CreatedAt: now},
		{ID: "lastmon1", Content: "Entry from a while back", CreatedAt: now.AddDate(0, -2, 0)},
	}, nil)

	session := newTestSession(t, store)
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "filter_logs",
		Arguments: mcptools.FilterInput{Range: "today", Limit: 10},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}

	var output mcptools.FilterOutput
	decodeOutput(t, result, &output)

	if len(output.Entries) != 1 {
		t.Fatalf("expected 1 entry for today, got %d", len(output.Entries))
	}
	if output.Entries[0].ID != "today001" {
		t.Errorf("expected entry today001, got %s", output.Entries[0].ID)
	}
}

func TestMCPServer_AddLog(t *testing.T) {
	store := journal.New(nil, nil)

	session := newTestSession(t, store)
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "add_log",
		Arguments: mcptools.AddLogInput{Content: "Shipped the release"},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}

	var output mcptools.AddLogOutput
	decodeOutput(t, result, &output)

	if output.ID == "" {
		t.Fatal("expected an entry ID in the output")
	}
	e, found := store.Get(output.ID)
	if !found {
		t.Fatalf("entry %s not present in store", output.ID)
	}
	if e.Content != "Shipped the release" {
		t.Errorf("content = %q", e.Content)
	}
}

func TestMCPServer_AddLogRejectsEmpty(t *testing.T) {
	store := journal.New(nil, nil)

	session := newTestSession(t, store)
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "add_log",
		Arguments: mcptools.AddLogInput{Content: "   "},
	})
	if err == nil && (result == nil || !result.IsError) {
		t.Fatal("expected an error for empty content")
	}
	if store.Len() != 0 {
		t.Errorf("store grew to %d after rejected add", store.Len())
	}
}
