// Package timeline derives the date-bucketed, newest-first view of a log.
package timeline

import (
	"sort"
	"time"

	"github.com/done-app/donectl/internal/entry"
	"github.com/done-app/donectl/internal/i18n"
)

// Bucket is one calendar day's worth of entries in the timeline view.
// Label is already localized ("Today", "昨天", or a weekday date).
type Bucket struct {
	Label   string
	Date    time.Time // local midnight of the bucket's day
	Entries []entry.Entry
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// SameDay reports whether two times fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// StartOfWeek returns local midnight of the Monday of the ISO week
// containing t. For a Sunday this is the Monday six days prior.
func StartOfWeek(t time.Time) time.Time {
	t = t.Local()
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := t.AddDate(0, 0, -(wd - 1))
	return StartOfDay(monday)
}

// StartOfMonth returns local midnight of the first day of the month
// containing t.
func StartOfMonth(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
}

// SortedDesc returns a copy of entries sorted newest-first.
func SortedDesc(entries []entry.Entry) []entry.Entry {
	out := make([]entry.Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Group buckets entries by local calendar day relative to now.
//
// Entries are sorted newest-first; buckets appear in first-seen order from
// that sequence, so bucket order is also newest-first without any further
// special-casing. The current day is labeled "today" and the prior day
// "yesterday" (localized); every other day gets a weekday date label.
// An empty input yields no buckets.
func Group(entries []entry.Entry, now time.Time, lang i18n.Language) []Bucket {
	sorted := SortedDesc(entries)

	var buckets []Bucket
	index := map[time.Time]int{}
	for _, e := range sorted {
		day := StartOfDay(e.CreatedAt)
		if i, ok := index[day]; ok {
			buckets[i].Entries = append(buckets[i].Entries, e)
			continue
		}
		index[day] = len(buckets)
		buckets = append(buckets, Bucket{
			Label:   bucketLabel(e.CreatedAt, now, lang),
			Date:    day,
			Entries: []entry.Entry{e},
		})
	}
	return buckets
}

func bucketLabel(at, now time.Time, lang i18n.Language) string {
	switch {
	case SameDay(at, now):
		return i18n.T(lang, "today")
	case SameDay(at, now.AddDate(0, 0, -1)):
		return i18n.T(lang, "yesterday")
	default:
		return i18n.FormatWeekdayDate(at, lang)
	}
}
