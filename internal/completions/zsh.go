package completions

import (
	"fmt"
	"strings"
)

// GenerateZsh returns a #compdef script using _describe and _arguments.
func GenerateZsh(program string, commands []CommandInfo) string {
	fn := "_" + funcName(program)

	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", program)

	fmt.Fprintf(&b, "%s_commands() {\n", fn)
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range commands {
		for _, name := range append([]string{c.Name}, c.Aliases...) {
			fmt.Fprintf(&b, "        %s\n", zshQuote(zshEscape(name)+":"+zshEscape(c.Summary)))
		}
	}
	b.WriteString("    )\n")
	b.WriteString("    _describe 'command' commands\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	fmt.Fprintf(&b, "        %s_commands\n", fn)
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${words[2]}\" in\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "        %s)\n", strings.Join(append([]string{c.Name}, c.Aliases...), "|"))
		b.WriteString("            _arguments")
		for _, f := range c.Flags {
			for _, n := range f.Names() {
				fmt.Fprintf(&b, " \\\n                %s", zshQuote(zshFlagSpec(n, f)))
			}
		}
		if c.TakesPath {
			b.WriteString(" \\\n                '*:file:_files'")
		}
		b.WriteString("\n            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "compdef %s %s\n", fn, program)
	return b.String()
}

func zshFlagSpec(name string, f FlagInfo) string {
	spec := name + "[" + zshEscape(f.Description) + "]"
	if !f.HasValue {
		return spec
	}
	switch {
	case len(f.Choices) > 0:
		escaped := make([]string, len(f.Choices))
		for i, c := range f.Choices {
			escaped[i] = zshEscape(c)
		}
		return spec + ":value:(" + strings.Join(escaped, " ") + ")"
	case f.Path:
		return spec + ":file:_files"
	default:
		return spec + ":value:"
	}
}

var zshEscaper = strings.NewReplacer(`:`, `\:`, `[`, `\[`, `]`, `\]`)

func zshEscape(s string) string {
	return zshEscaper.Replace(s)
}

func zshQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
