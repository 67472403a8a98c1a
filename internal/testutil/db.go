// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdspec/internal/store"
)

// NewTestStore opens an in-memory history store with migrations applied.
// It is closed when the test finishes.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.New(":memory:")
	require.NoError(t, err, "failed to open in-memory history store")

	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

// SeedHistory appends lines under sessionID, one second apart starting
// at base.
func SeedHistory(t *testing.T, s *store.Store, sessionID string, base time.Time, lines ...string) {
	t.Helper()

	for i, line := range lines {
		err := s.Append(sessionID, line, base.Add(time.Duration(i)*time.Second))
		require.NoError(t, err, "failed to seed history line %q", line)
	}
}
