// Package store persists the copy session to disk so an interrupted run
// can resume where it left off. Storage failures are deliberately
// swallowed: the in-memory session stays authoritative and a lost
// snapshot only costs the resume, never the run.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	sessionFileName = "session.json"
	snapshotVersion = 1
)

// Session is the persisted snapshot of parsed lines plus the cursor
// position.
type Session struct {
	Version int      `json:"version"`
	ID      string   `json:"id"`
	Lines   []string `json:"lines"`
	Index   int      `json:"index"`
	SavedAt string   `json:"saved_at"`
}

// Store reads and writes session snapshots under a single directory.
type Store struct {
	dir    string
	logger *zap.Logger
}

func New(dir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{dir: dir, logger: logger}
}

// DefaultDir returns the session snapshot directory, preferring
// XDG_DATA_HOME and falling back to ~/.local/share.
func DefaultDir(appName string) string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return appName
	}
	return filepath.Join(home, ".local", "share", appName)
}

func (s *Store) path() string {
	return filepath.Join(s.dir, sessionFileName)
}

// Save writes the session snapshot atomically (temp file + rename).
// On a write failure the existing snapshot is cleared once and the
// write is not retried; losing the snapshot beats crashing the run.
func (s *Store) Save(id string, lines []string, index int) {
	if id == "" {
		id = uuid.NewString()
	}
	snap := Session{
		Version: snapshotVersion,
		ID:      id,
		Lines:   lines,
		Index:   index,
		SavedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}

	if err := s.write(snap); err != nil {
		s.logger.Warn("session save failed, clearing stale snapshot", zap.Error(err))
		s.Clear()
	}
}

func (s *Store) write(snap Session) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return err
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, sessionFileName+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, s.path())
}

// Load reads the last snapshot. A missing file, malformed payload or a
// snapshot without lines all yield nil; the caller just starts fresh.
func (s *Store) Load() *Session {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("session load failed", zap.Error(err))
		}
		return nil
	}

	var snap Session
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("session snapshot malformed", zap.Error(err))
		return nil
	}
	if snap.Version != 0 && snap.Version != snapshotVersion {
		s.logger.Warn("session snapshot version unsupported", zap.Int("version", snap.Version))
		return nil
	}
	if len(snap.Lines) == 0 {
		return nil
	}
	return &snap
}

// Clear removes the snapshot. Removing an absent snapshot is fine.
func (s *Store) Clear() {
	if err := os.Remove(s.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("session clear failed", zap.Error(err))
	}
}
