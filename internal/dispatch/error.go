package dispatch

import "fmt"

// ErrorKind identifies a dispatch failure that is not the handler's own.
type ErrorKind int

const (
	HandlerNotRegistered ErrorKind = iota + 1
	ContextTypeMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case HandlerNotRegistered:
		return "handler_not_registered"
	case ContextTypeMismatch:
		return "context_type_mismatch"
	default:
		return "unknown"
	}
}

// Error is a wiring problem between commands, handlers and the context.
// These are programming errors, not user errors.
type Error struct {
	Kind           ErrorKind
	Command        string
	Implementation string
	// Want and Got name the context types of a ContextTypeMismatch.
	Want string
	Got  string
}

func (e *Error) Error() string {
	switch e.Kind {
	case HandlerNotRegistered:
		return fmt.Sprintf("no handler registered for implementation %q (command %q)", e.Implementation, e.Command)
	case ContextTypeMismatch:
		if e.Command == "" {
			return fmt.Sprintf("context type mismatch: handler wants %s, context is %s", e.Want, e.Got)
		}
		return fmt.Sprintf("context type mismatch in %q: handler wants %s, context is %s", e.Command, e.Want, e.Got)
	default:
		return "dispatch error"
	}
}

// GetExitCode reports configuration errors with the construction exit code.
func (e *Error) GetExitCode() int {
	return 3
}

var _ error = (*Error)(nil)
