// Package backup keeps lz4-compressed snapshots of a profile, named by ksuid
// so that listing the directory in name order lists them oldest first.
package backup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pierrec/lz4/v4"
	"github.com/segmentio/ksuid"
)

const ext = ".sav.lz4"

// ErrNotFound is returned by Restore for an id with no snapshot.
var ErrNotFound = errors.New("backup: not found")

// Entry describes one stored snapshot.
type Entry struct {
	ID   ksuid.KSUID
	Path string
	Time time.Time
}

// Store is a directory of snapshots. The directory is created on first Save.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string { return s.dir }

// Save compresses everything src yields into a new snapshot.
func (s *Store) Save(src io.Reader) (Entry, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return Entry{}, fmt.Errorf("create backup dir: %w", err)
	}

	id := ksuid.New()
	path := filepath.Join(s.dir, id.String()+ext)

	tmp, err := os.CreateTemp(s.dir, ".partial-*")
	if err != nil {
		return Entry{}, fmt.Errorf("create %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	zw := lz4.NewWriter(tmp)
	if _, err := io.Copy(zw, src); err != nil {
		return Entry{}, fmt.Errorf("write compressed %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		return Entry{}, fmt.Errorf("write compressed %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return Entry{}, fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return Entry{}, fmt.Errorf("rename %s: %w", path, err)
	}

	return Entry{ID: id, Path: path, Time: id.Time()}, nil
}

// List returns the snapshots oldest first. A missing directory holds none.
func (s *Store) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read backup dir: %w", err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || !strings.HasSuffix(name, ext) {
			continue
		}
		id, err := ksuid.Parse(strings.TrimSuffix(name, ext))
		if err != nil {
			continue
		}
		entries = append(entries, Entry{ID: id, Path: filepath.Join(s.dir, name), Time: id.Time()})
	}

	sort.Slice(entries, func(i, j int) bool {
		return ksuid.Compare(entries[i].ID, entries[j].ID) < 0
	})
	return entries, nil
}

// Open returns a reader of the decompressed snapshot id. The caller closes it.
func (s *Store) Open(id string) (io.ReadCloser, error) {
	parsed, err := ksuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	path := filepath.Join(s.dir, parsed.String()+ext)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &snapshot{Reader: lz4.NewReader(f), f: f}, nil
}

// Restore decompresses snapshot id into dst.
func (s *Store) Restore(id string, dst io.Writer) error {
	rc, err := s.Open(id)
	if err != nil {
		return err
	}
	defer rc.Close()

	if _, err := io.Copy(dst, rc); err != nil {
		return fmt.Errorf("decompress %s: %w", id, err)
	}
	return nil
}

type snapshot struct {
	*lz4.Reader
	f *os.File
}

func (s *snapshot) Close() error { return s.f.Close() }
