// Package notes persists the text notes attached to minutes of the clock face.
package notes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// DefaultFileName matches the file written by earlier releases.
const DefaultFileName = "chronos_notes.json"

// Note is one stored note.
type Note struct {
	Content string `json:"content" yaml:"content"`
	Locked  bool   `json:"is_locked" yaml:"is_locked"`
}

// Entry is a note together with its key.
type Entry struct {
	Key  string
	Note Note
}

// FileStore keeps notes in memory and writes the whole map to a file on every save.
// The encoding follows the file extension.
type FileStore struct {
	path  string
	codec codec
	notes map[string]Note
	mu    sync.RWMutex
}

// NewFileStore creates an empty store backed by path. Call Load to read it.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:  path,
		codec: codecFor(path),
		notes: make(map[string]Note),
	}
}

// Path returns the backing file.
func (s *FileStore) Path() string { return s.path }

// Format names the file encoding: json, yaml or gob.
func (s *FileStore) Format() string { return s.codec.name() }

// Load replaces the in-memory notes with the file contents. A missing file is an
// empty store. A malformed file also leaves the store empty, and the decode error is
// returned for the caller to report.
func (s *FileStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = make(map[string]Note)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No notes yet, start fresh
		}
		return fmt.Errorf("failed to read notes: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	decoded, err := s.codec.decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode notes %s: %w", s.path, err)
	}
	if decoded != nil {
		s.notes = decoded
	}
	return nil
}

// Lookup returns the content stored under key.
func (s *FileStore) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.notes[key]
	if !ok {
		return "", false
	}
	return n.Content, true
}

// Get returns the full note stored under key.
func (s *FileStore) Get(key string) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.notes[key]
	return n, ok
}

// Save overwrites the note under key and persists the store. The in-memory value is
// kept even when writing the file fails.
func (s *FileStore) Save(key, content string) error {
	s.mu.Lock()
	s.notes[key] = Note{Content: content}
	s.mu.Unlock()
	return s.Persist(context.Background())
}

// All returns every note sorted by key.
func (s *FileStore) All() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, 0, len(s.notes))
	for k, n := range s.notes {
		out = append(out, Entry{Key: k, Note: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Len returns the number of stored notes.
func (s *FileStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// Persist writes the store to disk through a temporary file and a rename.
func (s *FileStore) Persist(ctx context.Context) error {
	s.mu.RLock()
	data, err := s.codec.encode(s.notes)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}

	if err := ensureParentDir(s.path); err != nil {
		return fmt.Errorf("failed to prepare notes directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create notes file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write notes: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write notes: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace notes file: %w", err)
	}
	return nil
}

// ensureParentDir creates parent directories if missing.
func ensureParentDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0755)
}
