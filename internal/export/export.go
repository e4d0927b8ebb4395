// Package export filters entries by time range and renders them as text.
//
// Exported text is always chronological (oldest first), the opposite of the
// timeline view's ordering. The raw format round-trips through the importer.
package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/done-app/donectl/internal/entry"
	"github.com/done-app/donectl/internal/i18n"
	"github.com/done-app/donectl/internal/timeline"
)

// Range selects which entries to export, evaluated against "now" at call time.
type Range string

const (
	RangeToday Range = "today"
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
	RangeAll   Range = "all"
)

// ParseRange validates a range flag value.
func ParseRange(s string) (Range, error) {
	switch Range(s) {
	case RangeToday, RangeWeek, RangeMonth, RangeAll:
		return Range(s), nil
	default:
		return "", fmt.Errorf("invalid range %q (use today|week|month|all)", s)
	}
}

// Format selects the rendered text layout.
type Format string

const (
	FormatRaw     Format = "raw"
	FormatGrouped Format = "grouped"
)

// ParseFormat validates a format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatRaw, FormatGrouped:
		return Format(s), nil
	default:
		return "", fmt.Errorf("invalid format %q (use raw|grouped)", s)
	}
}

// Filter returns the entries within r relative to now, sorted ascending by
// timestamp. The week range starts on the most recent Monday at local
// midnight; the month range on the first of the current local month.
func Filter(entries []entry.Entry, r Range, now time.Time) []entry.Entry {
	var cutoff time.Time
	switch r {
	case RangeToday:
		cutoff = timeline.StartOfDay(now)
	case RangeWeek:
		cutoff = timeline.StartOfWeek(now)
	case RangeMonth:
		cutoff = timeline.StartOfMonth(now)
	default:
		cutoff = time.Time{}
	}

	var out []entry.Entry
	for _, e := range entries {
		if !e.CreatedAt.Before(cutoff) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Render renders already-filtered entries in the given format. An empty set
// renders the localized "no logs" placeholder, never an empty string.
func Render(entries []entry.Entry, f Format, lang i18n.Language) string {
	if len(entries) == 0 {
		return i18n.T(lang, "noLogsFound")
	}
	if f == FormatGrouped {
		return renderGrouped(entries, lang)
	}
	return renderRaw(entries, lang)
}

// renderRaw emits one "[date time] content" line per entry.
func renderRaw(entries []entry.Entry, lang i18n.Language) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("[%s %s] %s",
			i18n.FormatDate(e.CreatedAt, lang),
			i18n.FormatTime(e.CreatedAt, lang),
			e.Content,
		)
	}
	return strings.Join(lines, "\n")
}

// renderGrouped emits a markdown heading per calendar day with bulleted
// time-stamped lines, blank line between day groups. Unlike the timeline
// view, day headings here never use today/yesterday labels.
func renderGrouped(entries []entry.Entry, lang i18n.Language) string {
	var b strings.Builder
	var currentDay time.Time
	for _, e := range entries {
		day := timeline.StartOfDay(e.CreatedAt)
		if !day.Equal(currentDay) {
			if !currentDay.IsZero() {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "### %s\n", i18n.FormatWeekdayDate(e.CreatedAt, lang))
			currentDay = day
		}
		fmt.Fprintf(&b, "- [%s] %s\n", i18n.FormatTime(e.CreatedAt, lang), e.Content)
	}
	return strings.TrimRight(b.String(), "\n")
}
