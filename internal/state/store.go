package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/danieljhkim/envup/internal/fsops"
)

// StateStore provides an interface for persisting sync state.
type StateStore interface {
	// Load loads the sync state for the given project ID.
	// Returns os.ErrNotExist if the state doesn't exist.
	Load(id string) (*SyncState, error)

	// Save saves the sync state atomically.
	Save(id string, st *SyncState) error

	// Delete deletes the sync state file. Deleting a missing state is not
	// an error.
	Delete(id string) error
}

// FileStateStore implements StateStore using JSON files on disk.
type FileStateStore struct {
	fs  fsops.FS
	dir string
}

// NewFileStateStore creates a new FileStateStore rooted at dir.
func NewFileStateStore(fs fsops.FS, dir string) *FileStateStore {
	return &FileStateStore{fs: fs, dir: dir}
}

// Load loads the sync state for the given project ID.
func (s *FileStateStore) Load(id string) (*SyncState, error) {
	if err := s.fs.ValidateIdentifier(id); err != nil {
		return nil, err
	}
	path := filepath.Join(s.dir, id+".json")

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to read sync state: %w", err)
	}

	var st SyncState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sync state: %w", err)
	}

	return &st, nil
}

// Save saves the sync state atomically.
func (s *FileStateStore) Save(id string, st *SyncState) error {
	if err := s.fs.ValidateIdentifier(id); err != nil {
		return err
	}
	path := filepath.Join(s.dir, id+".json")

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sync state: %w", err)
	}

	if err := s.fs.AtomicWrite(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write sync state: %w", err)
	}

	return nil
}

// Delete deletes the sync state file.
func (s *FileStateStore) Delete(id string) error {
	if err := s.fs.ValidateIdentifier(id); err != nil {
		return err
	}
	path := filepath.Join(s.dir, id+".json")

	if err := s.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete sync state: %w", err)
	}
	return nil
}
