package usage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/footprint-tools/cmdspec/internal/validate"
)

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnknownCommand
	ErrUnknownFlag
	ErrTooManyArguments
	ErrMissingArgument
	ErrMissingRequired
	ErrMissingFlagValue
	ErrValidationFailed
	ErrInvalidSyntax
	ErrEmptyInput
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnknownCommand:
		return "unknown_command"
	case ErrUnknownFlag:
		return "unknown_flag"
	case ErrTooManyArguments:
		return "too_many_arguments"
	case ErrMissingArgument:
		return "missing_argument"
	case ErrMissingRequired:
		return "missing_required"
	case ErrMissingFlagValue:
		return "missing_flag_value"
	case ErrValidationFailed:
		return "validation_failed"
	case ErrInvalidSyntax:
		return "invalid_syntax"
	case ErrEmptyInput:
		return "empty_input"
	default:
		return "unknown"
	}
}

// Exit codes:
//
//	Exit 1: command selection errors
//	  - Unknown errors
//	  - Unknown command
//
//	Exit 2: invocation errors
//	  - Unknown flag, missing flag value
//	  - Too many or missing arguments
//	  - Validation failures
//	  - Unbalanced quotes
var exitCodes = map[ErrorKind]int{
	ErrUnknown:          1,
	ErrUnknownCommand:   1,
	ErrUnknownFlag:      2,
	ErrTooManyArguments: 2,
	ErrMissingArgument:  2,
	ErrMissingRequired:  2,
	ErrMissingFlagValue: 2,
	ErrValidationFailed: 2,
	ErrInvalidSyntax:    2,
	ErrEmptyInput:       2,
}

// Error is a parse failure. Only the fields relevant to Kind are set.
type Error struct {
	Kind ErrorKind
	// Command is the resolved command name, empty for ErrUnknownCommand.
	Command string
	// Token is the offending command token or flag as typed.
	Token       string
	Name        string
	Suggestions []string
	Expected    int
	Got         int
	Violations  []validate.Violation
	Detail      string
	ExitCode    int
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnknownCommand:
		return fmt.Sprintf("unknown command '%s'", e.Token)
	case ErrUnknownFlag:
		return fmt.Sprintf("unknown option '%s' for '%s'", e.Token, e.Command)
	case ErrTooManyArguments:
		return fmt.Sprintf("too many arguments for '%s': expected at most %d, got %d", e.Command, e.Expected, e.Got)
	case ErrMissingArgument:
		return fmt.Sprintf("missing argument '%s' for '%s'", e.Name, e.Command)
	case ErrMissingRequired:
		return fmt.Sprintf("missing required '%s' for '%s'", e.Name, e.Command)
	case ErrMissingFlagValue:
		return fmt.Sprintf("option '%s' requires a value", e.Token)
	case ErrValidationFailed:
		msgs := make([]string, len(e.Violations))
		for i, v := range e.Violations {
			msgs[i] = v.Error()
		}
		return "validation failed: " + strings.Join(msgs, "; ")
	case ErrInvalidSyntax:
		return "invalid syntax: " + e.Detail
	case ErrEmptyInput:
		return "empty input"
	default:
		if e.Detail != "" {
			return e.Detail
		}
		return "usage error"
	}
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Is matches another *Error of the same kind, so callers can test with
// errors.Is(err, usage.ErrorOf(usage.ErrUnknownFlag)).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Token == "" && t.Name == "" && t.Command == ""
}

// ErrorOf returns a bare error of the given kind for use with errors.Is.
func ErrorOf(kind ErrorKind) *Error {
	return &Error{Kind: kind}
}

// KindOf returns the kind of a usage error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind, true
	}
	return ErrUnknown, false
}

var _ error = (*Error)(nil)
