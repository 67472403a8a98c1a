package validate

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/cmdspec/internal/schema"
)

// ViolationKind identifies a type error or a failed rule.
type ViolationKind int

const (
	InvalidBool ViolationKind = iota + 1
	InvalidNumber
	InvalidPath
	NotFound
	BadExtension
	OutOfRange
	NotAChoice
)

func (k ViolationKind) String() string {
	switch k {
	case InvalidBool:
		return "invalid_bool"
	case InvalidNumber:
		return "invalid_number"
	case InvalidPath:
		return "invalid_path"
	case NotFound:
		return "not_found"
	case BadExtension:
		return "bad_extension"
	case OutOfRange:
		return "out_of_range"
	case NotAChoice:
		return "not_a_choice"
	default:
		return "unknown"
	}
}

// TypeError reports whether the violation came from coercion rather than
// from a rule.
func (k ViolationKind) TypeError() bool {
	return k == InvalidBool || k == InvalidNumber || k == InvalidPath
}

// Violation is one failed check against one field.
type Violation struct {
	Kind  ViolationKind
	Field string
	Raw   string
	// Type is the declared type, set for type errors.
	Type schema.ArgumentType
	// Accepted lists the allowed extensions or choices.
	Accepted []string
	// Value, Min and Max describe an OutOfRange failure.
	Value float64
	Min   *float64
	Max   *float64
	Err   error
}

func (v Violation) Error() string {
	switch v.Kind {
	case InvalidBool:
		return fmt.Sprintf("invalid value for '%s': %q is not a boolean (use true/false, yes/no, 1/0, on/off)", v.Field, v.Raw)
	case InvalidNumber:
		return fmt.Sprintf("invalid value for '%s': %q is not a valid %s", v.Field, v.Raw, v.Type)
	case InvalidPath:
		return fmt.Sprintf("invalid value for '%s': %q is not a valid path", v.Field, v.Raw)
	case NotFound:
		return fmt.Sprintf("file not found for '%s': %q", v.Field, v.Raw)
	case BadExtension:
		return fmt.Sprintf("invalid file extension for '%s': %q (expected: %s)", v.Field, v.Raw, strings.Join(v.Accepted, ", "))
	case OutOfRange:
		return fmt.Sprintf("value for '%s' out of range: %s not in %s", v.Field, v.Raw, schema.FormatBounds(v.Min, v.Max))
	case NotAChoice:
		return fmt.Sprintf("invalid value for '%s': %q (expected one of: %s)", v.Field, v.Raw, strings.Join(v.Accepted, ", "))
	default:
		return fmt.Sprintf("invalid value for '%s': %q", v.Field, v.Raw)
	}
}

func (v Violation) Unwrap() error {
	return v.Err
}

var _ error = Violation{}
