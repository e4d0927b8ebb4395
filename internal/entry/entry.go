package entry

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

var idPattern = regexp.MustCompile(`^[a-z0-9]{8}$`)

// Entry represents a single timestamped log record.
type Entry struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewID generates a new nanoid for an entry.
func NewID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}

// New constructs a validated entry with a fresh ID and the given timestamp.
func New(content string, at time.Time) (Entry, error) {
	content = strings.TrimSpace(content)
	if err := ValidateContent(content); err != nil {
		return Entry{}, err
	}
	id, err := NewID()
	if err != nil {
		return Entry{}, fmt.Errorf("generating ID: %w", err)
	}
	return Entry{ID: id, Content: content, CreatedAt: at.UTC()}, nil
}

// ValidateID checks whether an ID matches the expected pattern.
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return fmt.Errorf("invalid entry ID: %q (must be 8 lowercase alphanumeric characters)", id)
	}
	return nil
}

// ValidateContent checks whether content is non-empty.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("entry content must not be empty")
	}
	return nil
}

// Preview returns a truncated single-line preview of the entry content.
func (e *Entry) Preview(maxLen int) string {
	content := strings.ReplaceAll(e.Content, "\n", " ")
	if len(content) <= maxLen {
		return content
	}
	return content[:maxLen-3] + "..."
}
