package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/done-app/donectl/internal/entry"
	"github.com/done-app/donectl/internal/i18n"
	"github.com/done-app/donectl/internal/timeline"
)

// FormatEntryAdded formats an append confirmation message.
func FormatEntryAdded(w io.Writer, e entry.Entry) {
	fmt.Fprintf(w, "Added entry %s (%s)\n", e.ID, e.CreatedAt.Local().Format("2006-01-02 15:04"))
}

// FormatEntryUpdated formats an update confirmation message.
func FormatEntryUpdated(w io.Writer, e entry.Entry) {
	fmt.Fprintf(w, "Updated entry %s (%s)\n", e.ID, e.CreatedAt.Local().Format("2006-01-02 15:04"))
}

// FormatEntryDeleted formats a deletion confirmation message.
func FormatEntryDeleted(w io.Writer, id string) {
	fmt.Fprintf(w, "Deleted entry %s.\n", id)
}

// FormatTimeline writes the date-bucketed view: a header line per day,
// then "id  time  content" lines, newest first.
func FormatTimeline(w io.Writer, buckets []timeline.Bucket, lang i18n.Language) {
	if len(buckets) == 0 {
		fmt.Fprintln(w, i18n.T(lang, "noLogs"))
		return
	}
	for i, b := range buckets {
		fmt.Fprintf(w, "── %s ──────────\n", b.Label)
		for _, e := range b.Entries {
			fmt.Fprintf(w, "  %s  %s  %s\n",
				e.ID,
				i18n.FormatTime(e.CreatedAt, lang),
				e.Preview(80),
			)
		}
		if i < len(buckets)-1 {
			fmt.Fprintln(w)
		}
	}
}

// FormatJSON writes any value as indented JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EntrySummary is a JSON representation for list output.
type EntrySummary struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// BucketJSON is the JSON representation of one timeline bucket.
type BucketJSON struct {
	Label   string         `json:"label"`
	Date    string         `json:"date"`
	Entries []EntrySummary `json:"entries"`
}

// ToBucketJSON converts timeline buckets for --json output.
func ToBucketJSON(buckets []timeline.Bucket) []BucketJSON {
	out := make([]BucketJSON, len(buckets))
	for i, b := range buckets {
		entries := make([]EntrySummary, len(b.Entries))
		for j, e := range b.Entries {
			entries[j] = EntrySummary{ID: e.ID, Content: e.Content, CreatedAt: e.CreatedAt}
		}
		out[i] = BucketJSON{
			Label:   b.Label,
			Date:    b.Date.Format("2006-01-02"),
			Entries: entries,
		}
	}
	return out
}

// DeleteResult is a JSON representation for delete output.
type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// ImportResult is a JSON representation for import output.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
