package shell

import (
	"errors"
	"strings"

	"github.com/peterh/liner"

	"github.com/footprint-tools/cmdspec/internal/completions"
)

// Liner adapts liner.State to LineReader.
type Liner struct {
	state *liner.State
}

// NewLiner puts the terminal in raw mode until Close. commands drive
// tab completion and may be nil.
func NewLiner(commands []completions.CommandInfo) *Liner {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetTabCompletionStyle(liner.TabPrints)
	if commands != nil {
		state.SetWordCompleter(WordCompleter(commands))
	}
	return &Liner{state: state}
}

func (l *Liner) Prompt(prompt string) (string, error) {
	line, err := l.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrAborted
	}
	return line, err
}

func (l *Liner) AppendHistory(line string) {
	l.state.AppendHistory(line)
}

func (l *Liner) Close() error {
	return l.state.Close()
}

// WordCompleter completes the word under the cursor: command names and
// aliases first, then flags and option choices.
func WordCompleter(commands []completions.CommandInfo) liner.WordCompleter {
	return func(line string, pos int) (string, []string, string) {
		runes := []rune(line)
		pos = min(max(pos, 0), len(runes))
		before, tail := string(runes[:pos]), string(runes[pos:])

		cut := strings.LastIndexAny(before, " \t") + 1
		head, partial := before[:cut], before[cut:]

		candidates := completions.Candidates(commands, strings.Fields(head), partial)
		for i := range candidates {
			candidates[i] += " "
		}
		return head, candidates, tail
	}
}
