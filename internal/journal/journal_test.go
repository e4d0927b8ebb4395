package journal_test

import (
	"errors"
	"testing"
	"time"

	"github.com/done-app/donectl/internal/entry"
	"github.com/done-app/donectl/internal/journal"
)

// recordingSaver captures every persisted snapshot.
type recordingSaver struct {
	saves [][]entry.Entry
	err   error
}

func (r *recordingSaver) Save(entries []entry.Entry) error {
	snapshot := make([]entry.Entry, len(entries))
	copy(snapshot, entries)
	r.saves = append(r.saves, snapshot)
	return r.err
}

func TestAdd(t *testing.T) {
	saver := &recordingSaver{}
	s := journal.New(nil, saver)

	id, ok := s.Add("did a thing")
	if !ok {
		t.Fatal("Add returned ok=false")
	}
	e, found := s.Get(id)
	if !found {
		t.Fatal("added entry not found")
	}
	if e.Content != "did a thing" {
		t.Errorf("content = %q", e.Content)
	}
	if len(saver.saves) != 1 {
		t.Errorf("expected 1 save after Add, got %d", len(saver.saves))
	}
}

func TestAddRejectsEmptyContent(t *testing.T) {
	saver := &recordingSaver{}
	s := journal.New(nil, saver)

	for _, content := range []string{"", "   ", "\t\n"} {
		if _, ok := s.Add(content); ok {
			t.Errorf("Add(%q) returned ok=true", content)
		}
	}
	if s.Len() != 0 {
		t.Errorf("collection grew to %d after empty adds", s.Len())
	}
	if len(saver.saves) != 0 {
		t.Errorf("empty adds triggered %d saves", len(saver.saves))
	}
}

func TestAddIDsUnique(t *testing.T) {
	s := journal.New(nil, nil)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, ok := s.Add("entry")
		if !ok {
			t.Fatal("Add failed")
		}
		if seen[id] {
			t.Fatalf("duplicate ID: %s", id)
		}
		seen[id] = true
	}
}

func TestUpdate(t *testing.T) {
	saver := &recordingSaver{}
	s := journal.New(nil, saver)
	id, _ := s.Add("before")

	if !s.Update(id, "after", nil) {
		t.Fatal("Update returned false")
	}
	e, _ := s.Get(id)
	if e.Content != "after" {
		t.Errorf("content = %q, want %q", e.Content, "after")
	}
	if e.ID != id {
		t.Errorf("update changed the ID: %s -> %s", id, e.ID)
	}
}

func TestUpdateTimestamp(t *testing.T) {
	s := journal.New(nil, nil)
	id, _ := s.Add("backdated later")

	at := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	if !s.Update(id, "backdated later", &at) {
		t.Fatal("Update returned false")
	}
	e, _ := s.Get(id)
	if !e.CreatedAt.Equal(at) {
		t.Errorf("created_at = %v, want %v", e.CreatedAt, at)
	}
}

func TestUpdateNoOps(t *testing.T) {
	saver := &recordingSaver{}
	s := journal.New(nil, saver)
	id, _ := s.Add("original")
	savesBefore := len(saver.saves)

	if s.Update("missing1", "new content", nil) {
		t.Error("Update of unknown ID returned true")
	}
	if s.Update(id, "   ", nil) {
		t.Error("Update with empty content returned true")
	}

	e, _ := s.Get(id)
	if e.Content != "original" {
		t.Errorf("no-op update changed content to %q", e.Content)
	}
	if len(saver.saves) != savesBefore {
		t.Error("no-op updates triggered saves")
	}
}

func TestDelete(t *testing.T) {
	s := journal.New(nil, nil)
	id, _ := s.Add("doomed")

	if !s.Delete(id) {
		t.Fatal("Delete returned false")
	}
	if _, found := s.Get(id); found {
		t.Error("entry still present after delete")
	}
	// Deleting again is a no-op, not an error.
	if s.Delete(id) {
		t.Error("second delete returned true")
	}
}

func TestImportMany(t *testing.T) {
	saver := &recordingSaver{}
	s := journal.New(nil, saver)

	imported := []entry.Entry{
		{ID: "aaaaaaaa", Content: "one", CreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{ID: "bbbbbbbb", Content: "two", CreatedAt: time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)},
	}
	s.ImportMany(imported)

	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	e, found := s.Get("aaaaaaaa")
	if !found || !e.CreatedAt.Equal(imported[0].CreatedAt) {
		t.Error("imported entry lost its supplied id or timestamp")
	}
	if len(saver.saves) != 1 {
		t.Errorf("expected 1 save, got %d", len(saver.saves))
	}

	// An empty batch persists nothing.
	s.ImportMany(nil)
	if len(saver.saves) != 1 {
		t.Error("empty import triggered a save")
	}
}

func TestSaveFailureDoesNotBlockEdits(t *testing.T) {
	saver := &recordingSaver{err: errors.New("disk full")}
	s := journal.New(nil, saver)

	id, ok := s.Add("still works")
	if !ok {
		t.Fatal("Add failed when the saver errored")
	}
	if _, found := s.Get(id); !found {
		t.Error("entry missing from in-memory state after save failure")
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	s := journal.New(nil, nil)
	s.Add("original")

	snapshot := s.Entries()
	snapshot[0].Content = "mutated"

	fresh := s.Entries()
	if fresh[0].Content != "original" {
		t.Error("mutating a snapshot leaked into the store")
	}
}
