package storage

import (
	"errors"

	"github.com/done-app/donectl/internal/entry"
)

// Sentinel errors for storage operations.
var (
	ErrStorage    = errors.New("storage error")
	ErrValidation = errors.New("validation error")
)

// Storage is the persistence adapter for the log collection.
//
// The in-memory collection is authoritative for a running session; Save is a
// best-effort full replace of the persisted copy and implementations make no
// transactional guarantee beyond a single Save call.
type Storage interface {
	Load() ([]entry.Entry, error)
	Save(entries []entry.Entry) error
	Close() error
}
