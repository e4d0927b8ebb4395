package markdown

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/done-app/donectl/internal/entry"
	"github.com/done-app/donectl/internal/storage"
)

// Store implements storage.Storage using Markdown files with YAML
// front-matter, one file per entry under YYYY/MM/DD/<id>.md.
type Store struct {
	baseDir string // e.g. ~/.donectl/entries/
}

// New creates a new Markdown file storage backend under dataDir.
func New(dataDir string) (*Store, error) {
	entriesDir := filepath.Join(dataDir, "entries")
	if err := os.MkdirAll(entriesDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating entries directory: %v", storage.ErrStorage, err)
	}
	return &Store{baseDir: entriesDir}, nil
}

// Close is a no-op for the Markdown backend.
func (s *Store) Close() error {
	return nil
}

func (s *Store) entryPath(e entry.Entry) string {
	t := e.CreatedAt.Local()
	return filepath.Join(s.baseDir, t.Format("2006"), t.Format("01"), t.Format("02"), e.ID+".md")
}

func marshal(e entry.Entry) []byte {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "id: %s\n", e.ID)
	fmt.Fprintf(&b, "created_at: %s\n", e.CreatedAt.UTC().Format(time.RFC3339))
	b.WriteString("---\n\n")
	b.WriteString(e.Content)
	return []byte(b.String())
}

type frontMatter struct {
	ID        string `yaml:"id"`
	CreatedAt string `yaml:"created_at"`
}

func unmarshal(data []byte) (entry.Entry, error) {
	var fm frontMatter
	content, err := frontmatter.Parse(strings.NewReader(string(data)), &fm)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("%w: parsing front-matter: %v", storage.ErrStorage, err)
	}

	createdAt, err := time.Parse(time.RFC3339, fm.CreatedAt)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("%w: parsing created_at: %v", storage.ErrStorage, err)
	}

	return entry.Entry{
		ID:        fm.ID,
		Content:   strings.TrimSpace(string(content)),
		CreatedAt: createdAt,
	}, nil
}

// atomicWrite writes data to a temp file then renames it to the target path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: creating directory: %v", storage.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", storage.ErrStorage, err)
	}
	tmpName := tmp.Name()

	// Lock the temp file during write
	if err := syscall.Flock(int(tmp.Fd()), syscall.LOCK_EX); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: acquiring lock: %v", storage.ErrStorage, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing temp file: %v", storage.ErrStorage, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", storage.ErrStorage, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming file: %v", storage.ErrStorage, err)
	}
	return nil
}

// walkFiles returns the paths of all entry files under the base directory.
func (s *Store) walkFiles() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(s.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: walking entries: %v", storage.ErrStorage, err)
	}
	return paths, nil
}

// Load reads the full entry collection. Files that fail to parse are
// skipped; a corrupt file must not take the whole log down with it.
func (s *Store) Load() ([]entry.Entry, error) {
	paths, err := s.walkFiles()
	if err != nil {
		return nil, err
	}

	var entries []entry.Entry
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", storage.ErrStorage, path, err)
		}
		e, err := unmarshal(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping unreadable entry file %s: %v\n", path, err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Save replaces the persisted collection: every entry is (re)written and
// files for entries no longer in the collection are removed.
func (s *Store) Save(entries []entry.Entry) error {
	keep := make(map[string]bool, len(entries))
	for _, e := range entries {
		if err := entry.ValidateContent(e.Content); err != nil {
			return fmt.Errorf("%w: %v", storage.ErrValidation, err)
		}
		path := s.entryPath(e)
		if err := atomicWrite(path, marshal(e)); err != nil {
			return err
		}
		keep[path] = true
	}

	paths, err := s.walkFiles()
	if err != nil {
		return err
	}
	for _, path := range paths {
		if keep[path] {
			continue
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("%w: removing stale entry file: %v", storage.ErrStorage, err)
		}
	}
	return nil
}
