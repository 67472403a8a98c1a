package usage

import "github.com/footprint-tools/cmdspec/internal/validate"

// ValidationFailed carries every violation found across all fields.
func ValidationFailed(command string, violations []validate.Violation) *Error {
	return &Error{Kind: ErrValidationFailed, Command: command, Violations: violations}
}
