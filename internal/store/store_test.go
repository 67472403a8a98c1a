package store

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdspec/internal/store/migrations"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, migrations.Run(db))
	return NewWithDB(db)
}

func TestStore_AppendAndRecent(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, line := range []string{"add 1 2", "multiply 3 4", "recall"} {
		require.NoError(t, s.Append("session-a", line, base.Add(time.Duration(i)*time.Second)))
	}

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "add 1 2", entries[0].Line)
	require.Equal(t, "recall", entries[2].Line)
	require.Equal(t, "session-a", entries[1].SessionID)
	require.True(t, entries[1].EnteredAt.Equal(base.Add(time.Second)))
}

func TestStore_RecentLimitKeepsNewest(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()

	for _, line := range []string{"one", "two", "three", "four"} {
		require.NoError(t, s.Append("s", line, now))
	}

	entries, err := s.Recent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "three", entries[0].Line)
	require.Equal(t, "four", entries[1].Line)

	all, err := s.Recent(0)
	require.NoError(t, err)
	require.Len(t, all, 4)
}

func TestStore_Trim(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()

	for _, line := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, s.Append("s", line, now))
	}

	removed, err := s.Trim(2)
	require.NoError(t, err)
	require.Equal(t, int64(3), removed)

	entries, err := s.Recent(0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "d", entries[0].Line)

	removed, err = s.Trim(10)
	require.NoError(t, err)
	require.Zero(t, removed)
}

func TestStore_EmptyRecent(t *testing.T) {
	s := newTestStore(t)

	entries, err := s.Recent(5)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestNew_FileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := New(path)
	require.NoError(t, err)
	require.Equal(t, path, s.Path())
	require.NoError(t, s.Append(NewSessionID(), "echo hi", time.Now()))
	require.NoError(t, s.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	reopened, err := New(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	entries, err := reopened.Recent(0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "echo hi", entries[0].Line)
}

func TestNewSessionID_Unique(t *testing.T) {
	require.NotEqual(t, NewSessionID(), NewSessionID())
	require.Len(t, NewSessionID(), 36)
}
