// Package report turns a filtered log snapshot into an AI-written summary
// via the Gemini REST API. Failures never escape as errors: every outcome is
// a user-facing localized string.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/done-app/donectl/internal/entry"
	"github.com/done-app/donectl/internal/i18n"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	geminiModel    = "gemini-2.5-flash"
)

// Client calls the Gemini generateContent endpoint.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Gemini client with a sane request timeout.
func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// NewClientWithBaseURL creates a client against a custom endpoint (tests).
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate produces a date-grouped, professionally-toned summary of the
// given entries in the selected language.
//
// With no API key configured, or with no entries, it returns the fixed
// localized placeholder without touching the network. Transport and service
// errors come back as a fixed localized error string. Single-shot: no retry,
// no streaming.
func (c *Client) Generate(ctx context.Context, entries []entry.Entry, lang i18n.Language, apiKey string) string {
	if apiKey == "" {
		return i18n.T(lang, "reportNoKey")
	}
	if len(entries) == 0 {
		return i18n.T(lang, "reportNoLogs")
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: buildPrompt(entries, lang)}}}},
	})
	if err != nil {
		return i18n.T(lang, "reportError")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, geminiModel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return i18n.T(lang, "reportError")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return i18n.T(lang, "reportError")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil || resp.StatusCode != http.StatusOK {
		return i18n.T(lang, "reportError")
	}

	var out geminiResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return i18n.T(lang, "reportError")
	}

	var text strings.Builder
	if len(out.Candidates) > 0 {
		for _, p := range out.Candidates[0].Content.Parts {
			text.WriteString(p.Text)
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return i18n.T(lang, "reportFailed")
	}
	return text.String()
}

// buildPrompt renders the entries as raw timestamped lines and wraps them in
// the summary instruction.
func buildPrompt(entries []entry.Entry, lang i18n.Language) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("[%s %s] %s",
			i18n.FormatDate(e.CreatedAt, lang),
			i18n.FormatTime(e.CreatedAt, lang),
			e.Content,
		)
	}

	langInstruction := "Please generate the report in English."
	if i18n.ParseLanguage(string(lang)) == i18n.Chinese {
		langInstruction = "Please generate the report in Simplified Chinese (简体中文)."
	}

	return fmt.Sprintf(`You are a helpful assistant for a busy professional.
Below is a raw list of work logs.
Please format them into a professional Weekly Report (or Daily Report if only one day).

Rules:
1. Group by Date.
2. Summarize key achievements if possible, but keep the specific details.
3. Use a clean Markdown format with bullet points.
4. Tone: Professional, concise, objective.
5. Language: %s

Raw Logs:
%s`, langInstruction, strings.Join(lines, "\n"))
}
