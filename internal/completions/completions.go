// Package completions generates shell completion scripts from the
// command registry and completes partial input for the interactive shell.
package completions

import (
	"slices"
	"strings"

	"github.com/footprint-tools/cmdspec/internal/registry"
	"github.com/footprint-tools/cmdspec/internal/schema"
)

// CommandInfo is what completion needs to know about one command.
type CommandInfo struct {
	Name    string
	Aliases []string
	Summary string
	Flags   []FlagInfo
	// TakesPath is set when any positional argument is a path.
	TakesPath bool
}

type FlagInfo struct {
	Long        string
	Short       string
	Description string
	HasValue    bool
	Choices     []string
	Path        bool
}

// Names returns the dashed forms, long first.
func (f FlagInfo) Names() []string {
	var out []string
	if f.Long != "" {
		out = append(out, "--"+f.Long)
	}
	if f.Short != "" {
		out = append(out, "-"+f.Short)
	}
	return out
}

// Extract collects completion data for every command in declaration
// order. Global options are appended to each command's flags.
func Extract(reg *registry.Registry, globals []schema.OptionSpec) []CommandInfo {
	var out []CommandInfo
	for _, c := range reg.Commands() {
		info := CommandInfo{
			Name:    c.Name,
			Aliases: slices.Clone(c.Aliases),
			Summary: c.Description,
		}
		for _, a := range c.Arguments {
			if a.Type == schema.TypePath {
				info.TakesPath = true
			}
		}
		for _, o := range c.Options {
			info.Flags = append(info.Flags, flagInfo(o))
		}
		for _, o := range globals {
			info.Flags = append(info.Flags, flagInfo(o))
		}
		out = append(out, info)
	}
	return out
}

func flagInfo(o schema.OptionSpec) FlagInfo {
	return FlagInfo{
		Long:        o.Long,
		Short:       o.Short,
		Description: o.Description,
		HasValue:    o.Type != schema.TypeBool,
		Choices:     slices.Clone(o.Choices),
		Path:        o.Type == schema.TypePath,
	}
}

// FindCommand finds a command by name or alias.
func FindCommand(commands []CommandInfo, name string) *CommandInfo {
	for i := range commands {
		if commands[i].Name == name || slices.Contains(commands[i].Aliases, name) {
			return &commands[i]
		}
	}
	return nil
}

// Candidates completes the last word of a partially typed line. words
// are the completed words before it; partial is the word being typed.
func Candidates(commands []CommandInfo, words []string, partial string) []string {
	if len(words) == 0 {
		var out []string
		for _, c := range commands {
			out = appendPrefixed(out, partial, c.Name)
			for _, a := range c.Aliases {
				out = appendPrefixed(out, partial, a)
			}
		}
		slices.Sort(out)
		return out
	}

	cmd := FindCommand(commands, words[0])
	if cmd == nil {
		return nil
	}

	if prev := words[len(words)-1]; len(words) > 1 && strings.HasPrefix(prev, "-") {
		if f := cmd.flag(prev); f != nil && f.HasValue {
			var out []string
			for _, c := range f.Choices {
				out = appendPrefixed(out, partial, c)
			}
			return out
		}
	}

	if !strings.HasPrefix(partial, "-") {
		return nil
	}
	var out []string
	for _, f := range cmd.Flags {
		for _, n := range f.Names() {
			out = appendPrefixed(out, partial, n)
		}
	}
	return out
}

func (c *CommandInfo) flag(token string) *FlagInfo {
	for i := range c.Flags {
		if slices.Contains(c.Flags[i].Names(), token) {
			return &c.Flags[i]
		}
	}
	return nil
}

func appendPrefixed(out []string, prefix, candidate string) []string {
	if strings.HasPrefix(candidate, prefix) {
		return append(out, candidate)
	}
	return out
}
