package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppDataDir_Override(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	t.Setenv("CMDSPEC_HOME", dir)

	require.Equal(t, dir, AppDataDir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
	require.Equal(t, os.FileMode(0700), info.Mode().Perm())

	require.Equal(t, filepath.Join(dir, "cmdspec.log"), LogFilePath())
	require.Equal(t, filepath.Join(dir, "history.db"), HistoryDBPath())
}

func TestAppDataDir_Default(t *testing.T) {
	t.Setenv("CMDSPEC_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := AppDataDir()
	require.NotEqual(t, ".", dir)
	require.True(t, strings.HasSuffix(dir, "cmdspec"), dir)
}

func TestConfigFilePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := ConfigFilePath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".cmdspecrc"), path)
}
