package usage

func TooManyArguments(command string, expected, got int) *Error {
	return &Error{Kind: ErrTooManyArguments, Command: command, Expected: expected, Got: got}
}
