package usage

// InvalidSyntax is returned when an interactive line cannot be tokenized.
func InvalidSyntax(detail string) *Error {
	return &Error{Kind: ErrInvalidSyntax, Detail: detail}
}

// EmptyInput is returned when the parser is handed no tokens. Front-ends
// skip blank input before parsing, so this signals a caller bug.
func EmptyInput() *Error {
	return &Error{Kind: ErrEmptyInput}
}
