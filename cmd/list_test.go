package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/done-app/donectl/internal/ui"
)

func TestListRunEmpty(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	if err := listRun(&buf, "", nil); err != nil {
		t.Fatalf("listRun: %v", err)
	}
	if !strings.Contains(buf.String(), "No logs yet.") {
		t.Errorf("expected empty-state message, got:\n%s", buf.String())
	}
}

func TestListRunGroupsByDay(t *testing.T) {
	setupTestEnv(t)
	now := time.Now()
	today := seedEntry(t, "entry from today", now)
	seedEntry(t, "entry from yesterday", now.AddDate(0, 0, -1))

	var buf bytes.Buffer
	if err := listRun(&buf, "", nil); err != nil {
		t.Fatalf("listRun: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "── Today ──") {
		t.Errorf("missing Today header:\n%s", out)
	}
	if !strings.Contains(out, "── Yesterday ──") {
		t.Errorf("missing Yesterday header:\n%s", out)
	}
	if !strings.Contains(out, today.ID) {
		t.Errorf("missing entry id %s:\n%s", today.ID, out)
	}
	if strings.Index(out, "entry from today") > strings.Index(out, "entry from yesterday") {
		t.Errorf("today's bucket should come first:\n%s", out)
	}
}

func TestListRunSearch(t *testing.T) {
	setupTestEnv(t)
	now := time.Now()
	seedEntry(t, "planning the Roadmap", now)
	seedEntry(t, "reviewed a pull request", now)

	var buf bytes.Buffer
	if err := listRun(&buf, "roadmap", nil); err != nil {
		t.Fatalf("listRun: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "planning the Roadmap") {
		t.Errorf("search missed a matching entry:\n%s", out)
	}
	if strings.Contains(out, "pull request") {
		t.Errorf("search leaked a non-matching entry:\n%s", out)
	}
}

func TestListRunDateFilter(t *testing.T) {
	setupTestEnv(t)
	day := time.Date(2024, 1, 2, 14, 0, 0, 0, time.Local)
	seedEntry(t, "on the target day", day)
	seedEntry(t, "on another day", day.AddDate(0, 0, -5))

	var buf bytes.Buffer
	if err := listRun(&buf, "", &day); err != nil {
		t.Fatalf("listRun: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "on the target day") {
		t.Errorf("date filter missed the matching entry:\n%s", out)
	}
	if strings.Contains(out, "on another day") {
		t.Errorf("date filter leaked another day's entry:\n%s", out)
	}
}

func TestListRunJSON(t *testing.T) {
	setupTestEnv(t)
	jsonOutput = true
	seedEntry(t, "json entry", time.Now())

	var buf bytes.Buffer
	if err := listRun(&buf, "", nil); err != nil {
		t.Fatalf("listRun: %v", err)
	}

	var buckets []ui.BucketJSON
	if err := json.Unmarshal(buf.Bytes(), &buckets); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(buckets))
	}
	if buckets[0].Label != "Today" {
		t.Errorf("label = %q, want Today", buckets[0].Label)
	}
	if len(buckets[0].Entries) != 1 || buckets[0].Entries[0].Content != "json entry" {
		t.Errorf("unexpected entries: %+v", buckets[0].Entries)
	}
}
