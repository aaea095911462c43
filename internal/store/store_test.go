package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	s := New(t.TempDir(), zap.NewNop())

	lines := []string{"first", "second", "third"}
	s.Save("abc-123", lines, 2)

	snap := s.Load()
	require.NotNil(t, snap)
	require.Equal(t, "abc-123", snap.ID)
	require.Equal(t, lines, snap.Lines)
	require.Equal(t, 2, snap.Index)
	require.NotEmpty(t, snap.SavedAt)
}

func TestSaveGeneratesID(t *testing.T) {
	s := New(t.TempDir(), zap.NewNop())
	s.Save("", []string{"a"}, 0)

	snap := s.Load()
	require.NotNil(t, snap)
	require.NotEmpty(t, snap.ID)
}

func TestLoadMissingFile(t *testing.T) {
	s := New(t.TempDir(), zap.NewNop())
	require.Nil(t, s.Load())
}

func TestLoadMalformedPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "{{{nope"},
		{"wrong shape", `"just a string"`},
		{"no lines field", `{"version":1,"index":3}`},
		{"empty lines", `{"version":1,"lines":[],"index":0}`},
		{"future version", `{"version":99,"lines":["a"],"index":0}`},
		{"empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte(tt.payload), 0o644))

			s := New(dir, zap.NewNop())
			require.Nil(t, s.Load())
		})
	}
}

func TestClearIdempotent(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, zap.NewNop())

	s.Save("id", []string{"a"}, 1)
	s.Clear()
	require.Nil(t, s.Load())

	// Clearing again must be a no-op.
	s.Clear()
	require.Nil(t, s.Load())
}

func TestSaveOverwrites(t *testing.T) {
	s := New(t.TempDir(), zap.NewNop())

	s.Save("id", []string{"a", "b"}, 1)
	s.Save("id", []string{"a", "b"}, 2)

	snap := s.Load()
	require.NotNil(t, snap)
	require.Equal(t, 2, snap.Index)
}

func TestSaveFailureClearsSnapshot(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, zap.NewNop())

	// Occupy the snapshot path with a directory so the rename fails.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "session.json"), 0o750))

	s.Save("id", []string{"a"}, 1)

	// The failed write cleared the stale record instead of crashing.
	require.Nil(t, s.Load())
	_, err := os.Stat(filepath.Join(dir, "session.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
