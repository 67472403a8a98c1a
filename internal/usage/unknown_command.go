package usage

// UnknownCommand is returned when the first token resolves to no command.
func UnknownCommand(token string, suggestions []string) *Error {
	return &Error{
		Kind:        ErrUnknownCommand,
		Token:       token,
		Suggestions: suggestions,
	}
}
