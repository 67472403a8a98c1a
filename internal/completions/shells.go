package completions

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ParseShell accepts a shell name or a path to a shell binary.
func ParseShell(s string) (Shell, error) {
	switch sh := Shell(filepath.Base(strings.TrimSpace(s))); sh {
	case ShellBash, ShellZsh, ShellFish:
		return sh, nil
	default:
		return "", fmt.Errorf("unsupported shell: %q (use bash, zsh, or fish)", s)
	}
}

// RunningShell guesses the user's shell from $SHELL.
func RunningShell() Shell {
	sh, err := ParseShell(os.Getenv("SHELL"))
	if err != nil {
		return ""
	}
	return sh
}

// Generate returns the completion script for program.
func Generate(shell Shell, program string, commands []CommandInfo) (string, error) {
	switch shell {
	case ShellBash:
		return GenerateBash(program, commands), nil
	case ShellZsh:
		return GenerateZsh(program, commands), nil
	case ShellFish:
		return GenerateFish(program, commands), nil
	default:
		return "", fmt.Errorf("unsupported shell: %q (use bash, zsh, or fish)", shell)
	}
}

// Print writes the completion script for program to w.
func Print(w io.Writer, shell Shell, program string, commands []CommandInfo) error {
	script, err := Generate(shell, program, commands)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, script)
	return err
}

// SourceInstructions returns the line that loads completions in shell.
func SourceInstructions(shell Shell, program string) string {
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s --completions %s)"`, program, shell)
	case ShellFish:
		return fmt.Sprintf(`%s --completions fish | source`, program)
	default:
		return ""
	}
}

func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}

var nonIdent = regexp.MustCompile(`[^A-Za-z0-9_]`)

// funcName turns a program name into a shell function identifier.
func funcName(program string) string {
	return nonIdent.ReplaceAllString(program, "_")
}
