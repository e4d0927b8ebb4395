package mcptools

// SearchInput is the input schema for the search_logs MCP tool.
type SearchInput struct {
	Query string `json:"query" jsonschema-description:"Text to search for in log content"`
	Limit int    `json:"limit" jsonschema-description:"Maximum number of results to return"`
}

// SearchOutput is the output schema for the search_logs MCP tool.
type SearchOutput struct {
	Entries []EntryResult `json:"entries"`
}

// FilterInput is the input schema for the filter_logs MCP tool.
type FilterInput struct {
	Range string `json:"range" jsonschema-description:"Time range: today, week, month, or all"`
	Limit int    `json:"limit" jsonschema-description:"Maximum number of results"`
}

// FilterOutput is the output schema for the filter_logs MCP tool.
type FilterOutput struct {
	Entries []EntryResult `json:"entries"`
}

// EntryResult is the common output format for log-related MCP tools.
type EntryResult struct {
	ID      string `json:"id"`
	Preview string `json:"preview"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// AddLogInput is the input schema for the add_log MCP tool.
type AddLogInput struct {
	Content string `json:"content" jsonschema-description:"Log entry content"`
}

// AddLogOutput is the output schema for the add_log MCP tool.
type AddLogOutput struct {
	ID   string `json:"id"`
	Date string `json:"date"`
}
