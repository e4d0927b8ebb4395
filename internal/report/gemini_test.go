package report_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/done-app/donectl/internal/entry"
	"github.com/done-app/donectl/internal/i18n"
	"github.com/done-app/donectl/internal/report"
)

func sampleEntries() []entry.Entry {
	return []entry.Entry{
		{ID: "aaaaaaaa", Content: "Wrote spec", CreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{ID: "bbbbbbbb", Content: "Fixed bug", CreatedAt: time.Date(2024, 1, 1, 14, 30, 0, 0, time.UTC)},
	}
}

func TestGenerateMissingKey(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := report.NewClientWithBaseURL(srv.URL)
	if got := c.Generate(context.Background(), sampleEntries(), i18n.English, ""); got != "API Key missing" {
		t.Errorf("en: got %q", got)
	}
	if got := c.Generate(context.Background(), sampleEntries(), i18n.Chinese, ""); got != "未设置 API Key" {
		t.Errorf("zh: got %q", got)
	}
	if hits.Load() != 0 {
		t.Errorf("missing key still made %d requests", hits.Load())
	}
}

func TestGenerateNoEntries(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := report.NewClientWithBaseURL(srv.URL)
	if got := c.Generate(context.Background(), nil, i18n.English, "key"); got != "No logs found to generate a report." {
		t.Errorf("en: got %q", got)
	}
	if got := c.Generate(context.Background(), nil, i18n.Chinese, "key"); got != "没有找到记录。" {
		t.Errorf("zh: got %q", got)
	}
	if hits.Load() != 0 {
		t.Errorf("empty range still made %d requests", hits.Load())
	}
}

func TestGenerateSuccess(t *testing.T) {
	var gotPath, gotKey string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		gotBody, _ = io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{
						{"text": "## Weekly Report\n"},
						{"text": "- Wrote spec"},
					},
				},
			}},
		})
	}))
	defer srv.Close()

	c := report.NewClientWithBaseURL(srv.URL)
	got := c.Generate(context.Background(), sampleEntries(), i18n.English, "secret-key")

	if got != "## Weekly Report\n- Wrote spec" {
		t.Errorf("got %q", got)
	}
	if gotPath != "/models/gemini-2.5-flash:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "secret-key" {
		t.Errorf("api key header = %q", gotKey)
	}
	for _, want := range []string{"Wrote spec", "Fixed bug", "Please generate the report in English."} {
		if !strings.Contains(string(gotBody), want) {
			t.Errorf("request body missing %q", want)
		}
	}
}

func TestGeneratePromptLanguage(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{"parts": []map[string]any{{"text": "ok"}}},
			}},
		})
	}))
	defer srv.Close()

	c := report.NewClientWithBaseURL(srv.URL)
	c.Generate(context.Background(), sampleEntries(), i18n.Chinese, "key")

	if !strings.Contains(string(gotBody), "Simplified Chinese") {
		t.Error("zh request body missing the Chinese language instruction")
	}
}

func TestGenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := report.NewClientWithBaseURL(srv.URL)
	if got := c.Generate(context.Background(), sampleEntries(), i18n.English, "key"); got != "Error connecting to AI service. Please check your network or API Key." {
		t.Errorf("en: got %q", got)
	}
	if got := c.Generate(context.Background(), sampleEntries(), i18n.Chinese, "key"); got != "连接 AI 服务出错，请检查网络或 API Key。" {
		t.Errorf("zh: got %q", got)
	}
}

func TestGenerateUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := report.NewClientWithBaseURL(srv.URL)
	if got := c.Generate(context.Background(), sampleEntries(), i18n.English, "key"); got != "Error connecting to AI service. Please check your network or API Key." {
		t.Errorf("got %q", got)
	}
}

func TestGenerateEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	c := report.NewClientWithBaseURL(srv.URL)
	if got := c.Generate(context.Background(), sampleEntries(), i18n.English, "key"); got != "Failed to generate report." {
		t.Errorf("en: got %q", got)
	}
	if got := c.Generate(context.Background(), sampleEntries(), i18n.Chinese, "key"); got != "生成失败。" {
		t.Errorf("zh: got %q", got)
	}
}
