package app

import (
	"errors"
	"strings"

	"github.com/footprint-tools/cmdspec/internal/help"
	"github.com/footprint-tools/cmdspec/internal/log"
	"github.com/footprint-tools/cmdspec/internal/schema"
	"github.com/footprint-tools/cmdspec/internal/usage"
)

const helpCommand = "help"

// browse is swapped out in tests.
var browse = help.Browse

func (a *App[C]) page() help.Page {
	return help.Page{
		Metadata: a.doc.Metadata,
		Commands: a.reg.Commands(),
		Globals:  a.parser.Globals(),
		Builtins: []help.Builtin{
			{Usage: "help [command]", Description: "Show help for all commands or one command"},
			{Usage: "help --interactive", Description: "Browse commands in a full-screen view"},
			{Usage: "exit, quit", Description: "Leave the interactive shell"},
		},
	}
}

func (a *App[C]) help(args []string) error {
	st := a.services.Styler

	if len(args) == 0 {
		a.services.Output.Pager(help.Overview(a.page(), st))
		return nil
	}
	if len(args) > 1 {
		return usage.TooManyArguments(helpCommand, 1, len(args))
	}

	switch arg := args[0]; {
	case arg == "--interactive" || arg == "-i":
		err := browse(a.page(), st, a.services.Colors)
		if errors.Is(err, help.ErrNotTerminal) {
			log.Debug("app: %v, printing overview", err)
			a.services.Output.Pager(help.Overview(a.page(), st))
			return nil
		}
		return err
	case strings.HasPrefix(arg, "-"):
		return usage.UnknownFlag(helpCommand, arg, a.suggest.Suggest(arg, []string{"--interactive", "-i"}))
	}

	cmd, ok := a.reg.Resolve(args[0])
	if !ok {
		return usage.UnknownCommand(args[0], a.suggest.Suggest(args[0], a.reg.Names()))
	}
	return a.showCommand(cmd)
}

func (a *App[C]) showCommand(cmd *schema.CommandSpec) error {
	a.services.Output.Pager(help.Command(*cmd, a.parser.Globals(), a.services.Styler))
	return nil
}
