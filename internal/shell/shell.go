// Package shell runs the interactive read-eval loop on top of a line
// editor.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/footprint-tools/cmdspec/internal/domain"
	"github.com/footprint-tools/cmdspec/internal/log"
)

var (
	// ErrAborted is returned by a LineReader when the user abandons the
	// current line (Ctrl-C).
	ErrAborted = errors.New("line aborted")

	// ErrExit may be returned by the executor to leave the loop.
	ErrExit = errors.New("exit shell")
)

// LineReader reads edited lines from the terminal.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(line string)
	Close() error
}

// Executor runs one non-blank line.
type Executor func(line string) error

type Shell struct {
	reader  LineReader
	prompt  string
	execute Executor

	out    io.Writer
	errOut io.Writer
	render func(error) string

	history     domain.HistoryStore
	historySize int
	sessionID   string
	now         func() time.Time
}

type Option func(*Shell)

// WithOutput sets where the shell writes newlines and rendered errors.
func WithOutput(out, errOut io.Writer) Option {
	return func(s *Shell) {
		s.out = out
		s.errOut = errOut
	}
}

// WithErrorRenderer formats executor errors before they are printed.
func WithErrorRenderer(fn func(error) string) Option {
	return func(s *Shell) {
		s.render = fn
	}
}

// WithHistory loads up to size lines from store before the first prompt
// and records every line entered. On exit the store is trimmed to size.
func WithHistory(store domain.HistoryStore, sessionID string, size int) Option {
	return func(s *Shell) {
		s.history = store
		s.sessionID = sessionID
		s.historySize = size
	}
}

func New(reader LineReader, prompt string, execute Executor, opts ...Option) *Shell {
	s := &Shell{
		reader:  reader,
		prompt:  prompt,
		execute: execute,
		out:     os.Stdout,
		errOut:  os.Stderr,
		render:  func(err error) string { return "error: " + err.Error() },
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsExit reports whether line is one of the words that leave the shell.
func IsExit(line string) bool {
	switch strings.TrimSpace(line) {
	case "exit", "quit":
		return true
	}
	return false
}

// Run reads and executes lines until exit, quit, EOF or ErrExit.
// Executor errors are printed and the loop continues.
func (s *Shell) Run() error {
	s.loadHistory()
	defer s.trimHistory()

	for {
		line, err := s.reader.Prompt(s.prompt)
		switch {
		case errors.Is(err, ErrAborted):
			continue
		case errors.Is(err, io.EOF):
			_, _ = fmt.Fprintln(s.out)
			return nil
		case err != nil:
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s.record(line)

		if IsExit(line) {
			return nil
		}

		if err := s.execute(line); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			_, _ = fmt.Fprintln(s.errOut, s.render(err))
		}
	}
}

func (s *Shell) loadHistory() {
	if s.history == nil {
		return
	}
	entries, err := s.history.Recent(s.historySize)
	if err != nil {
		log.Warn("shell: could not load history: %v", err)
		return
	}
	for _, e := range entries {
		s.reader.AppendHistory(e.Line)
	}
	log.Debug("shell: loaded %d history entries", len(entries))
}

func (s *Shell) record(line string) {
	s.reader.AppendHistory(line)
	if s.history == nil {
		return
	}
	if err := s.history.Append(s.sessionID, line, s.now()); err != nil {
		log.Warn("shell: could not save history: %v", err)
	}
}

func (s *Shell) trimHistory() {
	if s.history == nil || s.historySize <= 0 {
		return
	}
	if n, err := s.history.Trim(s.historySize); err != nil {
		log.Warn("shell: could not trim history: %v", err)
	} else if n > 0 {
		log.Debug("shell: trimmed %d history entries", n)
	}
}
