package cmd

import (
	"testing"
	"time"

	"github.com/done-app/donectl/internal/config"
	"github.com/done-app/donectl/internal/entry"
	"github.com/done-app/donectl/internal/journal"
)

func setupTestEnv(t *testing.T) {
	t.Helper()
	store = journal.New(nil, nil)
	appConfig = &config.Config{Language: "en", Theme: "dark", MaxWidth: 100}
	jsonOutput = false
}

func seedEntry(t *testing.T, content string, at time.Time) entry.Entry {
	t.Helper()
	id, err := entry.NewID()
	if err != nil {
		t.Fatalf("generating ID: %v", err)
	}
	e := entry.Entry{ID: id, Content: content, CreatedAt: at.UTC()}
	store.ImportMany([]entry.Entry{e})
	return e
}
