package usage

// UnknownFlag is returned when a dashed token matches no option of the
// command or the global options.
func UnknownFlag(command, flag string, suggestions []string) *Error {
	return &Error{
		Kind:        ErrUnknownFlag,
		Command:     command,
		Token:       flag,
		Suggestions: suggestions,
	}
}
