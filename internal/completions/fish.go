package completions

import (
	"fmt"
	"strings"
)

// GenerateFish returns a fish script of complete -c lines.
func GenerateFish(program string, commands []CommandInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s fish completion script\n\n", program)
	fmt.Fprintf(&b, "complete -c %s -f\n", program)

	for _, c := range commands {
		for _, name := range append([]string{c.Name}, c.Aliases...) {
			fmt.Fprintf(&b, "complete -c %s -n '__fish_use_subcommand' -a %s -d %s\n", program, fishQuote(name), fishQuote(c.Summary))
		}
	}

	for _, c := range commands {
		cond := fishQuote("__fish_seen_subcommand_from " + strings.Join(append([]string{c.Name}, c.Aliases...), " "))
		if c.TakesPath {
			fmt.Fprintf(&b, "complete -c %s -n %s -F\n", program, cond)
		}
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c %s -n %s", program, cond)
			if f.Long != "" {
				line += " -l " + f.Long
			}
			if f.Short != "" {
				line += " -s " + f.Short
			}
			if f.HasValue {
				line += " -r"
				if len(f.Choices) > 0 {
					line += " -a " + fishQuote(strings.Join(f.Choices, " "))
				} else if f.Path {
					line += " -F"
				}
			}
			if f.Description != "" {
				line += " -d " + fishQuote(f.Description)
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

func fishQuote(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s) + "'"
}
