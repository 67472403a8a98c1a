package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/footprint-tools/cmdspec/internal/actions/calculator"
	"github.com/footprint-tools/cmdspec/internal/app"
	"github.com/footprint-tools/cmdspec/internal/completions"
	"github.com/footprint-tools/cmdspec/internal/config"
	"github.com/footprint-tools/cmdspec/internal/domain"
	"github.com/footprint-tools/cmdspec/internal/schemafile"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const program = "cmdspec"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type hostFlags struct {
	schema      string
	noColor     bool
	logLevel    string
	noHistory   bool
	completions string
	set         []string
	version     bool
}

// parseFlags reads host flags up to the first command token. Everything
// after it belongs to the schema's commands.
func parseFlags(args []string, stderr io.Writer) (hostFlags, []string, error) {
	var f hostFlags

	flagSet := pflag.NewFlagSet(program, pflag.ContinueOnError)
	flagSet.SetInterspersed(false)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&f.schema, "schema", "s", "", "command schema (.yaml, .json, .jsonc, .toml, .hcl); default is the built-in calculator")
	flagSet.BoolVar(&f.noColor, "no-color", false, "disable colored output")
	flagSet.StringVar(&f.logLevel, "log-level", "", "log to file at this level (debug, info, warn, error)")
	flagSet.BoolVar(&f.noHistory, "no-history", false, "do not load or save shell history")
	flagSet.StringVar(&f.completions, "completions", "", "print a completion script (bash, zsh, fish)")
	flagSet.StringArrayVar(&f.set, "set", nil, "persist a setting as key=value (repeatable)")
	flagSet.BoolVar(&f.version, "version", false, "print the version")
	flagSet.Usage = func() { printUsage(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		return f, nil, err
	}
	return f, flagSet.Args(), nil
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	_, _ = fmt.Fprintf(w, `Usage:
  %[1]s [flags]                      start the interactive shell
  %[1]s [flags] <command> [args...]  run one command

Flags:
%[2]s
Run '%[1]s help' for the commands the schema defines.
`, program, flagSet.FlagUsages())
}

func run(args []string, stdout, stderr io.Writer) int {
	flags, rest, err := parseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return app.ExitOK
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if flags.version {
		_, _ = fmt.Fprintf(stdout, "%s version %s\n", program, version)
		return app.ExitOK
	}

	if len(flags.set) > 0 {
		file, err := config.Default()
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return app.ExitConfig
		}
		return applySettings(file, flags.set, stdout, stderr)
	}

	services := app.DefaultServices(app.Options{
		NoColor:   flags.noColor,
		NoHistory: flags.noHistory,
		LogLevel:  flags.logLevel,
		Stdout:    stdout,
		Stderr:    stderr,
	})
	defer func() { _ = services.Close() }()

	a, err := build(flags.schema, services)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return app.ExitConfig
	}

	if flags.completions != "" {
		shell, err := completions.ParseShell(flags.completions)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return 2
		}
		if err := a.WriteCompletions(stdout, shell); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return app.ExitError
		}
		return app.ExitOK
	}

	return a.Run(rest)
}

// build wires the calculator handlers to the schema at path, or to the
// embedded calculator schema when path is empty.
func build(path string, services *app.Services) (*app.App[*calculator.Calculator], error) {
	calc := calculator.New(calculator.Deps{
		Out:      services.Output,
		Styler:   services.Styler,
		ReadFile: os.ReadFile,
	})

	b := app.NewBuilder(calc).
		Program(program).
		Services(services).
		Handlers(calculator.Handlers())
	if path == "" {
		b.SchemaBytes(calculator.Schema, schemafile.FormatYAML, calculator.SchemaName)
	} else {
		b.SchemaFile(path)
	}
	return b.Build()
}

// applySettings persists each key=value pair. It stops at the first
// malformed pair or unknown key.
func applySettings(provider domain.ConfigProvider, pairs []string, stdout, stderr io.Writer) int {
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			_, _ = fmt.Fprintf(stderr, "error: --set expects key=value, got %q\n", pair)
			return 2
		}
		if !domain.IsValidConfigKey(key) {
			_, _ = fmt.Fprintf(stderr, "error: unknown setting %q\n", key)
			return 2
		}
		if err := provider.Set(key, strings.TrimSpace(value)); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return app.ExitConfig
		}
		_, _ = fmt.Fprintf(stdout, "%s = %s\n", key, strings.TrimSpace(value))
	}
	return app.ExitOK
}
