package paths

import (
	"os"
	"path/filepath"
)

const (
	appDirName     = "cmdspec"
	configFileName = ".cmdspecrc"
	envDataDir     = "CMDSPEC_HOME"
)

// AppDataDir returns the application data directory for logs and history.
// CMDSPEC_HOME overrides the location. Otherwise os.UserConfigDir() is used:
//   - macOS: ~/Library/Application Support/cmdspec
//   - Linux: $XDG_CONFIG_HOME/cmdspec or ~/.config/cmdspec
//   - Windows: %AppData%\cmdspec
func AppDataDir() string {
	path := os.Getenv(envDataDir)
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "."
		}
		path = filepath.Join(dir, appDirName)
	}

	_ = os.MkdirAll(path, 0700)
	return path
}

// ConfigFilePath returns the settings file in the user's home directory.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configFileName), nil
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "cmdspec.log")
}

// HistoryDBPath returns the sqlite database holding shell history.
func HistoryDBPath() string {
	return filepath.Join(AppDataDir(), "history.db")
}
