// Package eventlog persists resolution diagnostics and forwards them to the log.
package eventlog

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.EventLog using a flat JSON file keyed by cycle id.
// Append re-reads the file before writing and replaces it atomically, so sequential
// writers never lose each other's events. Writes from concurrent processes are not
// locked against each other.
type Store struct {
	path   string
	mu     sync.RWMutex
	events map[string][]domain.Diagnostic
}

// NewStore creates a new Store backed by the file at the given path.
// A missing file is treated as an empty log.
func NewStore(path string) (*Store, error) {
	s := &Store{path: filepath.Clean(path)}

	events, err := s.read()
	if err != nil {
		return nil, err
	}
	s.events = events
	return s, nil
}

func (s *Store) read() (map[string][]domain.Diagnostic, error) {
	events := make(map[string][]domain.Diagnostic)

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return events, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read event log"), "path", s.path)
	}

	if len(data) == 0 {
		return events, nil
	}

	if err := json.Unmarshal(data, &events); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal event log"), "path", s.path)
	}
	return events, nil
}

// save writes events through a temporary file and renames it into place.
// The caller must hold the write lock.
func (s *Store) save(events map[string][]domain.Diagnostic) error {
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal event log")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for event log")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temporary event log"), "path", s.path)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to write event log"), "path", s.path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write event log"), "path", s.path)
	}
	//nolint:gosec // Event logs are not secret
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write event log"), "path", s.path)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace event log"), "path", s.path)
	}
	return nil
}

// Append merges the file's current content with events, grouped by cycle id, and
// writes the result back in a single save.
func (s *Store) Append(events ...domain.Diagnostic) error {
	if len(events) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.read()
	if err != nil {
		return err
	}
	for _, e := range events {
		current[e.CycleID] = append(current[e.CycleID], e)
	}

	if err := s.save(current); err != nil {
		return err
	}
	s.events = current
	return nil
}

// ByCycle returns a copy of the events recorded for cycleID, or nil if there are none.
func (s *Store) ByCycle(cycleID string) ([]domain.Diagnostic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events, ok := s.events[cycleID]
	if !ok {
		return nil, nil
	}
	out := make([]domain.Diagnostic, len(events))
	copy(out, events)
	return out, nil
}
