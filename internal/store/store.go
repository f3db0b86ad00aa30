// Package store persists projected documents as JSON files under a data
// directory. Writes are atomic so readers never observe a half-written
// document.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/natefinch/atomic"
)

var ErrNotFound = errors.New("document not found")

// Meta describes one stored document.
type Meta struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename,omitempty"`
	ContentHash string    `json:"content_hash,omitempty"`
	Individuals int       `json:"individuals"`
	Families    int       `json:"families"`
	Warnings    []string  `json:"warnings,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Entry is a stored document with its metadata.
type Entry struct {
	Meta     Meta           `json:"meta"`
	Document map[string]any `json:"document"`
}

// Store is a directory of <id>.json files.
type Store struct {
	dir string
}

// Open creates the data directory if needed and returns the store.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Put writes the entry for meta.ID, replacing any previous version.
func (s *Store) Put(meta Meta, doc map[string]any) error {
	path, err := s.pathFor(meta.ID)
	if err != nil {
		return err
	}
	data, err := json.Marshal(Entry{Meta: meta, Document: doc})
	if err != nil {
		return fmt.Errorf("marshal document %s: %w", meta.ID, err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write document %s: %w", meta.ID, err)
	}
	return nil
}

// Get reads a stored entry by id.
func (s *Store) Get(id string) (*Entry, error) {
	path, err := s.pathFor(id)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", id, err)
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	return &entry, nil
}

// List returns metadata for every stored document, newest first.
func (s *Store) List() ([]Meta, error) {
	names, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("scan data dir: %w", err)
	}
	metas := make([]Meta, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(name)
		if err != nil {
			continue // deleted between glob and read
		}
		var entry Entry
		if err := json.Unmarshal(data, &entry); err != nil {
			continue
		}
		metas = append(metas, entry.Meta)
	}
	sort.Slice(metas, func(i, j int) bool {
		return metas[i].CreatedAt.After(metas[j].CreatedAt)
	})
	return metas, nil
}

// Delete removes a stored document.
func (s *Store) Delete(id string) error {
	path, err := s.pathFor(id)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return err
}

// pathFor validates the id so a crafted id cannot escape the data dir.
func (s *Store) pathFor(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, "/\\.") {
		return "", fmt.Errorf("invalid document id %q", id)
	}
	return filepath.Join(s.dir, id+".json"), nil
}
