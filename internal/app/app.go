// Package app assembles the pipeline (schema, registry, parser and
// dispatcher) and exposes the one-shot and interactive front-ends.
package app

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/footprint-tools/cmdspec/internal/completions"
	"github.com/footprint-tools/cmdspec/internal/dispatch"
	"github.com/footprint-tools/cmdspec/internal/log"
	"github.com/footprint-tools/cmdspec/internal/parser"
	"github.com/footprint-tools/cmdspec/internal/registry"
	"github.com/footprint-tools/cmdspec/internal/schema"
	"github.com/footprint-tools/cmdspec/internal/shell"
	"github.com/footprint-tools/cmdspec/internal/store"
	"github.com/footprint-tools/cmdspec/internal/suggest"
	"github.com/footprint-tools/cmdspec/internal/usage"
)

// Exit codes beyond those carried by errors.
const (
	ExitOK     = 0
	ExitError  = 1
	ExitConfig = 3
)

type App[C any] struct {
	doc        schema.Document
	reg        *registry.Registry
	parser     *parser.Parser
	dispatcher *dispatch.Dispatcher[C]
	services   *Services
	suggest    suggest.Options
	program    string
	// schemaHelp is set when the document defines its own help command.
	schemaHelp bool
}

func (a *App[C]) Document() schema.Document {
	return a.doc
}

func (a *App[C]) Registry() *registry.Registry {
	return a.reg
}

func (a *App[C]) Parser() *parser.Parser {
	return a.parser
}

func (a *App[C]) Services() *Services {
	return a.services
}

// With runs fn against the application context under the dispatch lock.
func (a *App[C]) With(fn func(ctx C) error) error {
	return a.dispatcher.With(fn)
}

// Execute parses tokens and dispatches the result. The built-in help
// command and a lone --help or -h after a command are handled here.
func (a *App[C]) Execute(tokens []string) error {
	if len(tokens) > 0 && tokens[0] == helpCommand && !a.schemaHelp {
		return a.help(tokens[1:])
	}
	if len(tokens) == 2 && (tokens[1] == "--help" || tokens[1] == "-h") {
		if cmd, ok := a.reg.Resolve(tokens[0]); ok && !a.declaresFlag(cmd, tokens[1]) {
			return a.showCommand(cmd)
		}
	}

	inv, err := a.parser.Parse(tokens)
	if err != nil {
		return err
	}
	return a.dispatcher.Dispatch(inv)
}

// ExecuteLine tokenizes one interactive line and executes it. Blank
// lines do nothing.
func (a *App[C]) ExecuteLine(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	tokens, err := parser.Tokenize(line)
	if err != nil {
		return err
	}
	return a.Execute(tokens)
}

func (a *App[C]) declaresFlag(cmd *schema.CommandSpec, flag string) bool {
	for _, opts := range [][]schema.OptionSpec{cmd.Options, a.parser.Globals()} {
		for _, o := range opts {
			if slices.Contains(o.Flags(), flag) {
				return true
			}
		}
	}
	return false
}

// Render formats err the way the front-ends print it.
func (a *App[C]) Render(err error) string {
	return usage.Render(err, a.services.Styler)
}

// ExitCode maps an error to a process exit status. Errors carrying
// their own code (usage and dispatch errors) keep it; anything else,
// including handler errors, is 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var coded interface{ GetExitCode() int }
	if errors.As(err, &coded) {
		return coded.GetExitCode()
	}
	return ExitError
}

// RunArgs executes one invocation, prints any error and returns the exit
// code.
func (a *App[C]) RunArgs(args []string) int {
	err := a.Execute(args)
	if err != nil {
		_, _ = fmt.Fprintln(a.services.ErrOut, a.Render(err))
	}
	return ExitCode(err)
}

// RunShell runs the interactive loop on reader until the user leaves.
func (a *App[C]) RunShell(reader shell.LineReader) error {
	opts := []shell.Option{
		shell.WithOutput(a.services.Output, a.services.ErrOut),
		shell.WithErrorRenderer(a.Render),
	}
	if a.services.History != nil && a.services.Settings.EnableHistory {
		opts = append(opts, shell.WithHistory(a.services.History, store.NewSessionID(), a.services.Settings.HistorySize))
	}

	log.Debug("app: starting shell")
	return shell.New(reader, a.doc.Metadata.PromptLine(), a.ExecuteLine, opts...).Run()
}

// Run starts the shell when args is empty and runs one invocation
// otherwise. It returns the process exit code.
func (a *App[C]) Run(args []string) int {
	if len(args) > 0 {
		return a.RunArgs(args)
	}

	reader := shell.NewLiner(a.Completions())
	defer func() { _ = reader.Close() }()

	if err := a.RunShell(reader); err != nil {
		_, _ = fmt.Fprintln(a.services.ErrOut, a.Render(err))
		return ExitError
	}
	return ExitOK
}

// Completions describes the command surface for tab completion and
// completion scripts, including the built-in help command.
func (a *App[C]) Completions() []completions.CommandInfo {
	commands := completions.Extract(a.reg, a.parser.Globals())
	if !a.schemaHelp {
		commands = append(commands, completions.CommandInfo{
			Name:    helpCommand,
			Summary: "Show help for all commands or one command",
			Flags: []completions.FlagInfo{
				{Long: "interactive", Short: "i", Description: "Browse commands interactively"},
			},
		})
	}
	return commands
}

// WriteCompletions prints the completion script for shell.
func (a *App[C]) WriteCompletions(w io.Writer, sh completions.Shell) error {
	return completions.Print(w, sh, a.program, a.Completions())
}
