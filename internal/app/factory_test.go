package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdspec/internal/config"
	"github.com/footprint-tools/cmdspec/internal/log"
	"github.com/footprint-tools/cmdspec/internal/store"
)

func TestNewServices_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CMDSPEC_HOME", dir)

	var out, errOut bytes.Buffer
	s := NewServices(config.DefaultSettings(), Options{Stdout: &out, Stderr: &errOut})
	defer func() { _ = s.Close() }()

	require.IsType(t, log.NopLogger{}, s.Logger)
	require.IsType(t, &store.Store{}, s.History)
	require.FileExists(t, filepath.Join(dir, "history.db"))
	require.False(t, s.Styler.Enabled())

	_, _ = s.Output.Println("hello")
	require.Equal(t, "hello\n", out.String())
	require.Same(t, &errOut, s.ErrOut)
}

func TestNewServices_NoHistory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CMDSPEC_HOME", dir)

	s := NewServices(config.DefaultSettings(), Options{NoHistory: true, Stdout: &bytes.Buffer{}})
	defer func() { _ = s.Close() }()

	require.Nil(t, s.History)
	require.NoFileExists(t, filepath.Join(dir, "history.db"))
}

func TestNewServices_LogLevelEnablesFileLog(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CMDSPEC_HOME", dir)

	s := NewServices(config.DefaultSettings(), Options{LogLevel: "debug", NoHistory: true, Stdout: &bytes.Buffer{}})
	require.IsType(t, &log.Logger{}, s.Logger)
	require.Same(t, s.Logger, log.GetLogger())

	log.Debug("services: %s", "ready")
	require.NoError(t, s.Close())
	require.Nil(t, log.GetLogger())

	data, err := os.ReadFile(filepath.Join(dir, "cmdspec.log"))
	require.NoError(t, err)
	require.Contains(t, string(data), "DEBUG: services: ready")
}

func TestNewServices_HistoryRoundTrip(t *testing.T) {
	t.Setenv("CMDSPEC_HOME", t.TempDir())

	s := NewServices(config.DefaultSettings(), Options{Stdout: &bytes.Buffer{}})
	require.NoError(t, s.History.Append("a", "add 1 2", time.Now()))
	require.NoError(t, s.Close())

	s = NewServices(config.DefaultSettings(), Options{Stdout: &bytes.Buffer{}})
	defer func() { _ = s.Close() }()
	entries, err := s.History.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "add 1 2", entries[0].Line)
}

func TestNewTestServices(t *testing.T) {
	s := NewTestServices(nil, nil)
	require.Nil(t, s.History)
	require.False(t, s.Styler.Enabled())
	require.NoError(t, s.Close())
}
