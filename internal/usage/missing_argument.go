package usage

// MissingArgument is returned when some positionals were given but fewer
// than the command requires.
func MissingArgument(command, name string) *Error {
	return &Error{Kind: ErrMissingArgument, Command: command, Name: name}
}

// MissingRequired is returned when a required field has no value after
// defaults were applied.
func MissingRequired(command, name string) *Error {
	return &Error{Kind: ErrMissingRequired, Command: command, Name: name}
}

// MissingFlagValue is returned when a value-taking flag is the last token.
func MissingFlagValue(command, flag string) *Error {
	return &Error{Kind: ErrMissingFlagValue, Command: command, Token: flag}
}
