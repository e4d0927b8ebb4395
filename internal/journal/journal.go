// Package journal holds the in-memory log collection, authoritative for the
// lifetime of the running process. Every mutation is pushed through a single
// persistence saver; save failures are logged and the in-memory state keeps
// working (worst case the session's changes are not durable).
package journal

import (
	"fmt"
	"os"
	"time"

	"github.com/done-app/donectl/internal/entry"
)

// Saver persists the full collection after a mutation.
type Saver interface {
	Save(entries []entry.Entry) error
}

// Store owns the entry collection for a session.
type Store struct {
	entries []entry.Entry
	saver   Saver
	now     func() time.Time
}

// New creates a Store over an initial collection, typically the result of a
// storage Load at startup. saver may be nil (no persistence, used in tests).
func New(initial []entry.Entry, saver Saver) *Store {
	s := &Store{saver: saver, now: time.Now}
	s.entries = append(s.entries, initial...)
	return s
}

// SetClock overrides the time source; tests use this to pin "now".
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Entries returns a snapshot copy of the collection. Storage order carries
// no meaning; presentation re-sorts.
func (s *Store) Entries() []entry.Entry {
	out := make([]entry.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Get returns the entry with the given id.
func (s *Store) Get(id string) (entry.Entry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return entry.Entry{}, false
}

// Add appends a new entry with the current timestamp and returns its id.
// Content that trims to empty is a no-op and returns ok=false.
func (s *Store) Add(content string) (string, bool) {
	e, err := entry.New(content, s.now())
	if err != nil {
		return "", false
	}
	s.entries = append(s.entries, e)
	s.persist()
	return e.ID, true
}

// Update replaces the content (and, when at is non-nil, the timestamp) of
// the matching entry. Missing ids and empty content are no-ops.
func (s *Store) Update(id, content string, at *time.Time) bool {
	if entry.ValidateContent(content) != nil {
		return false
	}
	for i := range s.entries {
		if s.entries[i].ID != id {
			continue
		}
		s.entries[i].Content = content
		if at != nil {
			s.entries[i].CreatedAt = at.UTC()
		}
		s.persist()
		return true
	}
	return false
}

// Delete removes the matching entry; deleting an unknown id is a no-op.
func (s *Store) Delete(id string) bool {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// ImportMany appends already-constructed entries (from the importer),
// preserving their ids and timestamps.
func (s *Store) ImportMany(entries []entry.Entry) {
	if len(entries) == 0 {
		return
	}
	s.entries = append(s.entries, entries...)
	s.persist()
}

func (s *Store) persist() {
	if s.saver == nil {
		return
	}
	if err := s.saver.Save(s.entries); err != nil {
		fmt.Fprintf(os.Stderr, "warning: saving entries: %v\n", err)
	}
}
