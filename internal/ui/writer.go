// Package ui holds terminal output helpers shared by the front-ends.
//
// The pager runs a user-configured command. That is the usual behaviour
// for CLI tools (git, man) and needs local access to abuse.
package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"
	"golang.org/x/term"

	"github.com/footprint-tools/cmdspec/internal/domain"
)

// Writer implements domain.OutputWriter.
type Writer struct {
	out           io.Writer
	pagerDisabled bool
	pagerOverride string
	configGetter  func(string) (string, bool)
	envGetter     func(string) string
	isTerminal    func(io.Writer) bool
}

type WriterOption func(*Writer)

func WithPagerDisabled() WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = true
	}
}

// WithPagerOverride sets the pager command, ahead of config and $PAGER.
func WithPagerOverride(cmd string) WriterOption {
	return func(w *Writer) {
		w.pagerOverride = cmd
	}
}

// WithConfigGetter reads the "pager" setting through fn.
func WithConfigGetter(fn func(string) (string, bool)) WriterOption {
	return func(w *Writer) {
		w.configGetter = fn
	}
}

func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) {
		w.envGetter = fn
	}
}

// NewWriter writes to stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:        out,
		envGetter:  os.Getenv,
		isTerminal: isTerminal,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Writer) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Pager displays content through a pager when the output is a terminal.
//
// Precedence:
//  1. disabled → direct output
//  2. output not a TTY → direct output
//  3. override → that command, "cat" bypasses
//  4. pager setting → that command, "cat" bypasses
//  5. $PAGER → that command, "cat" bypasses
//  6. less -FRSX
func (w *Writer) Pager(content string) {
	if w.pagerDisabled || !w.isTerminal(w.out) {
		w.direct(content)
		return
	}

	if cmd := w.PagerCommand(); cmd != "" {
		w.runPagerCmd(cmd, content)
		return
	}
	w.runPager("less", []string{"-FRSX"}, content)
}

// PagerCommand returns the configured pager, or "" for the default.
func (w *Writer) PagerCommand() string {
	if w.pagerOverride != "" {
		return w.pagerOverride
	}
	if w.configGetter != nil {
		if p, ok := w.configGetter("pager"); ok && p != "" {
			return p
		}
	}
	if w.envGetter != nil {
		return w.envGetter("PAGER")
	}
	return ""
}

func (w *Writer) direct(content string) {
	_, _ = fmt.Fprint(w.out, content)
}

func (w *Writer) runPagerCmd(pagerCmd, content string) {
	parts, err := shellwords.Parse(pagerCmd)
	if err != nil || len(parts) == 0 || parts[0] == "cat" {
		w.direct(content)
		return
	}
	w.runPager(parts[0], parts[1:], content)
}

func (w *Writer) runPager(pager string, args []string, content string) {
	cmd := exec.Command(pager, args...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = w.out
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		w.direct(content)
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var _ domain.OutputWriter = (*Writer)(nil)
