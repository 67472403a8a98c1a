package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/footprint-tools/cmdspec/internal/domain"
	"github.com/footprint-tools/cmdspec/internal/log"
	"github.com/footprint-tools/cmdspec/internal/paths"
)

// File is a key=value settings file guarded by a sibling lock file.
type File struct {
	path     string
	lockWait time.Duration
}

// Open returns the settings file at path. Nothing is read until needed.
func Open(path string) *File {
	return &File{path: path, lockWait: defaultLockWait}
}

// Default returns the settings file in the user's home directory.
func Default() (*File, error) {
	path, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}
	return Open(path), nil
}

func (f *File) Path() string {
	return f.path
}

func (f *File) lockPath() string {
	return f.path + ".lock"
}

// ReadLines returns the raw lines of the file, creating it with the
// default settings when it does not exist or is empty.
func (f *File) ReadLines() ([]string, error) {
	info, err := os.Stat(f.path)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(f.path, 0600); err != nil {
		log.Warn("config: could not set permissions on %s: %v", f.path, err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = defaultLines()
		if err := f.WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

func defaultLines() []string {
	lines := []string{
		"# cmdspec settings",
		"# Edit values below or use: cmdspec --set <key>=<value>",
	}

	section := ""
	for _, key := range domain.ConfigKeys {
		if key.Hidden {
			continue
		}
		if key.Section != section {
			section = key.Section
			lines = append(lines, "", "# "+section)
		}

		value := key.Default
		if strings.Contains(value, " ") {
			value = "\"" + value + "\""
		}
		lines = append(lines, key.Name+"="+value)
	}

	return lines
}

// WriteLines replaces the file contents atomically.
func (f *File) WriteLines(lines []string) error {
	dir := filepath.Dir(f.path)
	tmpFile, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := tmpFile.Chmod(0600); err != nil {
		return err
	}

	writer := bufio.NewWriter(tmpFile)
	for _, line := range lines {
		if _, err := writer.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		return err
	}

	success = true
	return nil
}
