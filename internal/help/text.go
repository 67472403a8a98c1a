// Package help renders command documentation from the schema, either as
// text or in an interactive browser.
package help

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/cmdspec/internal/domain"
	"github.com/footprint-tools/cmdspec/internal/schema"
)

// Builtin describes a command the front-end provides itself.
type Builtin struct {
	Usage       string
	Description string
}

// Page is everything the overview lists.
type Page struct {
	Metadata schema.Metadata
	Commands []*schema.CommandSpec
	Globals  []schema.OptionSpec
	Builtins []Builtin
}

type accenter interface {
	Accent(text string) string
}

func accent(st domain.Styler, text string) string {
	if a, ok := st.(accenter); ok {
		return a.Accent(text)
	}
	return st.Info(text)
}

// Overview lists every command with its aliases and description.
func Overview(p Page, st domain.Styler) string {
	var b strings.Builder

	title := "Commands"
	if p.Metadata.Prompt != "" {
		title = p.Metadata.Prompt
		if p.Metadata.Version != "" {
			title += " " + p.Metadata.Version
		}
	}
	b.WriteString(st.Header(title))
	b.WriteString("\n\n")

	width := 0
	for _, c := range p.Commands {
		width = max(width, len(c.Name))
	}
	for _, bi := range p.Builtins {
		width = max(width, len(bi.Usage))
	}

	b.WriteString(st.Header("COMMANDS"))
	b.WriteString("\n")
	for _, c := range p.Commands {
		fmt.Fprintf(&b, "   %s  %s", accent(st, pad(c.Name, width)), c.Description)
		if len(c.Aliases) > 0 {
			b.WriteString(st.Muted(" (aliases: " + strings.Join(c.Aliases, ", ") + ")"))
		}
		b.WriteString("\n")
	}

	if len(p.Globals) > 0 {
		b.WriteString("\n")
		b.WriteString(st.Header("GLOBAL OPTIONS"))
		b.WriteString("\n")
		writeOptions(&b, p.Globals, st)
	}

	if len(p.Builtins) > 0 {
		b.WriteString("\n")
		b.WriteString(st.Header("BUILT-IN"))
		b.WriteString("\n")
		for _, bi := range p.Builtins {
			fmt.Fprintf(&b, "   %s  %s\n", accent(st, pad(bi.Usage, width)), bi.Description)
		}
	}

	return b.String()
}

// Command renders usage, arguments and options for one command.
func Command(cmd schema.CommandSpec, globals []schema.OptionSpec, st domain.Styler) string {
	var b strings.Builder

	b.WriteString(st.Header(cmd.Name))
	if cmd.Description != "" {
		b.WriteString(" - " + cmd.Description)
	}
	b.WriteString("\n\n")

	b.WriteString(st.Header("USAGE"))
	b.WriteString("\n   ")
	b.WriteString(accent(st, cmd.Usage()))
	b.WriteString("\n")

	if len(cmd.Aliases) > 0 {
		b.WriteString("\n")
		b.WriteString(st.Header("ALIASES"))
		b.WriteString("\n   ")
		b.WriteString(strings.Join(cmd.Aliases, ", "))
		b.WriteString("\n")
	}

	if len(cmd.Arguments) > 0 {
		b.WriteString("\n")
		b.WriteString(st.Header("ARGUMENTS"))
		b.WriteString("\n")
		width := 0
		for _, a := range cmd.Arguments {
			width = max(width, len(a.Name))
		}
		for _, a := range cmd.Arguments {
			fmt.Fprintf(&b, "   %s  %s\n", accent(st, pad(a.Name, width)), describe(a.Field(), a.Description, st))
		}
	}

	if len(cmd.Options) > 0 {
		b.WriteString("\n")
		b.WriteString(st.Header("OPTIONS"))
		b.WriteString("\n")
		writeOptions(&b, cmd.Options, st)
	}

	if len(globals) > 0 {
		b.WriteString("\n")
		b.WriteString(st.Header("GLOBAL OPTIONS"))
		b.WriteString("\n")
		writeOptions(&b, globals, st)
	}

	return b.String()
}

func writeOptions(b *strings.Builder, opts []schema.OptionSpec, st domain.Styler) {
	labels := make([]string, len(opts))
	width := 0
	for i, o := range opts {
		labels[i] = optionLabel(o)
		width = max(width, len(labels[i]))
	}
	for i, o := range opts {
		fmt.Fprintf(b, "   %s  %s\n", accent(st, pad(labels[i], width)), describe(o.Field(), o.Description, st))
	}
}

// optionLabel renders "--threads, -t <integer>".
func optionLabel(o schema.OptionSpec) string {
	label := strings.Join(o.Flags(), ", ")
	if o.Type != schema.TypeBool {
		label += " <" + o.Type.String() + ">"
	}
	return label
}

func describe(f schema.Field, description string, st domain.Styler) string {
	var notes []string
	if f.Type != schema.TypeBool {
		notes = append(notes, f.Type.String())
	}
	if f.Required {
		notes = append(notes, "required")
	}
	if f.Default != nil {
		notes = append(notes, "default: "+*f.Default)
	}
	if len(f.Choices) > 0 {
		notes = append(notes, "one of: "+strings.Join(f.Choices, ", "))
	}
	for _, r := range f.Rules {
		notes = append(notes, r.String())
	}

	if len(notes) == 0 {
		return description
	}
	extra := st.Muted("(" + strings.Join(notes, "; ") + ")")
	if description == "" {
		return extra
	}
	return description + " " + extra
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
