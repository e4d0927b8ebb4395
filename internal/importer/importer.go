// Package importer parses previously exported (or hand-written) log text
// back into entries.
package importer

import (
	"regexp"
	"strings"
	"time"

	"github.com/done-app/donectl/internal/entry"
)

// linePattern matches a leading bracketed timestamp followed by content.
var linePattern = regexp.MustCompile(`^\[(.*?)\]\s+(.*)$`)

// layouts are tried in order against the bracketed field. They cover both
// raw export locales plus common hand-written forms. All are interpreted in
// local time.
var layouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02",
	"01/02/2006 03:04 PM",
	"01/02/2006 15:04",
	"01/02/2006",
	"2006年1月2日 15:04",
	"2006年1月2日",
}

// ParseTimestamp permissively parses a bracketed date/time field.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Parse scans multi-line text and returns the entries it could recover.
//
// Per line: blank lines are skipped; lines not matching "[timestamp] text",
// lines whose bracketed field does not parse as a date/time, and lines with
// empty content are dropped silently rather than aborting the import. Each
// recovered entry gets a freshly generated ID.
func Parse(text string) []entry.Entry {
	var parsed []entry.Entry
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := linePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		at, ok := ParseTimestamp(m[1])
		if !ok {
			continue
		}
		e, err := entry.New(m[2], at)
		if err != nil {
			// Empty content after the bracket: skip the line.
			continue
		}
		parsed = append(parsed, e)
	}
	return parsed
}
