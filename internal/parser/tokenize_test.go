package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdspec/internal/usage"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "plain words", line: "copy a.txt b.txt", want: []string{"copy", "a.txt", "b.txt"}},
		{name: "extra whitespace", line: "  copy \t a.txt   ", want: []string{"copy", "a.txt"}},
		{name: "double quotes", line: `copy "my file.txt" b`, want: []string{"copy", "my file.txt", "b"}},
		{name: "single quotes", line: `echo 'it is "quoted"'`, want: []string{"echo", `it is "quoted"`}},
		{name: "escaped quote", line: `echo "say \"hi\""`, want: []string{"echo", `say "hi"`}},
		{name: "backslash outside quotes kept", line: `open a\b my\ file`, want: []string{"open", `a\b`, `my\`, "file"}},
		{name: "windows path in quotes", line: `count "C:\dir\file"`, want: []string{"count", `C:\dir\file`}},
		{name: "escaped backslash in quotes", line: `echo "a\\b"`, want: []string{"echo", `a\b`}},
		{name: "other quote not escaped", line: `echo 'it\"s'`, want: []string{"echo", `it\"s`}},
		{name: "escaped single quote", line: `echo 'don\'t'`, want: []string{"echo", "don't"}},
		{name: "quotes inside word", line: `set --name=a"b c"d`, want: []string{"set", "--name=ab cd"}},
		{name: "trailing backslash", line: `echo end\`, want: []string{"echo", `end\`}},
		{name: "operators are plain text", line: `echo a;b c|d 2>x e&f <g`, want: []string{"echo", "a;b", "c|d", "2>x", "e&f", "<g"}},
		{name: "empty quoted", line: `set name ""`, want: []string{"set", "name", ""}},
		{name: "no variable expansion", line: `echo $HOME`, want: []string{"echo", "$HOME"}},
		{name: "flag with equals", line: `process --threads=8 data.csv`, want: []string{"process", "--threads=8", "data.csv"}},
		{name: "quoted operator", line: `echo "a | b"`, want: []string{"echo", "a | b"}},
		{name: "blank", line: "   ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTokenize_Errors(t *testing.T) {
	for _, line := range []string{
		`copy "unterminated`,
		`copy 'unterminated`,
		`echo "it\"`,
		`echo 'a "b`,
	} {
		_, err := Tokenize(line)
		requireUsageError(t, err, usage.ErrInvalidSyntax)
	}
}
