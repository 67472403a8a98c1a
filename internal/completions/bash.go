package completions

import (
	"fmt"
	"strings"
)

// GenerateBash returns a bash script using complete -F.
func GenerateBash(program string, commands []CommandInfo) string {
	fn := "_" + funcName(program) + "_completions"

	var names []string
	for _, c := range commands {
		names = append(names, c.Name)
		names = append(names, c.Aliases...)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s bash completion script\n\n", program)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W %s -- \"$cur\") )\n", bashWords(names))
	b.WriteString("        return 0\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")

	for _, c := range commands {
		fmt.Fprintf(&b, "        %s)\n", strings.Join(append([]string{c.Name}, c.Aliases...), "|"))

		var valueCases []string
		var flags []string
		for _, f := range c.Flags {
			flags = append(flags, f.Names()...)
			if !f.HasValue {
				continue
			}
			pattern := strings.Join(f.Names(), "|")
			switch {
			case len(f.Choices) > 0:
				valueCases = append(valueCases, fmt.Sprintf("                %s) COMPREPLY=( $(compgen -W %s -- \"$cur\") ); return 0 ;;", pattern, bashWords(f.Choices)))
			case f.Path:
				valueCases = append(valueCases, fmt.Sprintf("                %s) COMPREPLY=( $(compgen -f -- \"$cur\") ); return 0 ;;", pattern))
			default:
				valueCases = append(valueCases, fmt.Sprintf("                %s) return 0 ;;", pattern))
			}
		}

		if len(valueCases) > 0 {
			b.WriteString("            case \"$prev\" in\n")
			b.WriteString(strings.Join(valueCases, "\n"))
			b.WriteString("\n            esac\n")
		}

		b.WriteString("            if [[ \"$cur\" == -* ]]; then\n")
		fmt.Fprintf(&b, "                COMPREPLY=( $(compgen -W %s -- \"$cur\") )\n", bashWords(flags))
		if c.TakesPath {
			b.WriteString("            else\n")
			b.WriteString("                COMPREPLY=( $(compgen -f -- \"$cur\") )\n")
		}
		b.WriteString("            fi\n")
		b.WriteString("            ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "complete -F %s %s\n", fn, program)
	return b.String()
}

// bashWords quotes a word list for compgen -W.
func bashWords(words []string) string {
	return "'" + strings.ReplaceAll(strings.Join(words, " "), "'", `'\''`) + "'"
}
