package parser

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/cmdspec/internal/usage"
)

// Tokenize splits an interactive line into words on spaces and tabs.
// Single or double quotes group text into one word and may sit in the middle
// of a word. Inside quotes a backslash escapes only the closing quote
// character or another backslash; everywhere else it is kept as written, so
// Windows paths survive. Shell operators have no meaning and stay in the word.
// An unterminated quote is a syntax error.
func Tokenize(line string) ([]string, error) {
	words := []string{}
	var cur strings.Builder
	inWord := false
	var quote rune
	quoteCol := 0

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case quote != 0 && r == quote:
			quote = 0
		case quote != 0 && r == '\\' && i+1 < len(runes) && (runes[i+1] == quote || runes[i+1] == '\\'):
			i++
			cur.WriteRune(runes[i])
		case quote != 0:
			cur.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			quoteCol = i + 1
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				words = append(words, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}

	if quote != 0 {
		return nil, usage.InvalidSyntax(fmt.Sprintf("unbalanced %c opened at column %d in %q", quote, quoteCol, line))
	}
	if inWord {
		words = append(words, cur.String())
	}
	return words, nil
}
