package domain

import (
	"io"
	"time"
)

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Pager displays content through a pager if appropriate.
	Pager(content string)
}

// Styler defines text styling operations.
type Styler interface {
	Enabled() bool
	Success(text string) string
	Warning(text string) string
	Error(text string) string
	Info(text string) string
	Muted(text string) string
	Header(text string) string
}

// HistoryEntry is one line entered in the interactive shell.
type HistoryEntry struct {
	ID        int64
	SessionID string
	Line      string
	EnteredAt time.Time
}

// HistoryStore persists interactive shell input across sessions.
type HistoryStore interface {
	// Append records a line for the given session.
	Append(sessionID, line string, at time.Time) error

	// Recent returns up to limit entries, oldest first.
	Recent(limit int) ([]HistoryEntry, error)

	// Trim deletes all but the newest keep entries.
	Trim(keep int) (int64, error)

	Close() error
}
