// Package progress persists the per-post cleaning checkpoint that makes
// interrupted runs resumable.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidypost/tidypost/internal/post"
)

// Store maps post keys to completed updates, backed by a JSON file.
// Presence of a key means that post's cleaning is durably complete.
type Store struct {
	path    string
	entries map[string]post.Update
}

// Open loads the checkpoint at path if one exists. A missing file is a
// fresh, empty store.
func Open(path string) (*Store, error) {
	s := &Store{
		path:    path,
		entries: make(map[string]post.Update),
	}

	data, err := os.ReadFile(path) //#nosec G304 -- checkpoint path is user-specified
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading checkpoint: %w", err)
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		return nil, fmt.Errorf("parsing checkpoint %s: %w", path, err)
	}
	return s, nil
}

// Lookup returns the completed update for key, if one was recorded.
func (s *Store) Lookup(key string) (post.Update, bool) {
	u, ok := s.entries[key]
	return u, ok
}

// Len reports how many posts have been checkpointed.
func (s *Store) Len() int {
	return len(s.entries)
}

// Record checkpoints a completed update. The whole map is rewritten to a
// temp file in the checkpoint's directory and renamed into place, so a
// crash mid-write cannot corrupt previously recorded progress.
func (s *Store) Record(key string, u post.Update) error {
	s.entries[key] = u

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding checkpoint: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".progress-*")
	if err != nil {
		return fmt.Errorf("creating checkpoint temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing checkpoint: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing checkpoint temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing checkpoint: %w", err)
	}
	return nil
}

// Clear discards the checkpoint. Called only after an error-free run.
func (s *Store) Clear() error {
	s.entries = make(map[string]post.Update)
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing checkpoint: %w", err)
	}
	return nil
}
