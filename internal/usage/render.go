package usage

import (
	"errors"
	"strings"

	"github.com/footprint-tools/cmdspec/internal/domain"
)

// Render formats an error for a terminal: the message, one bullet per
// violation, and any suggestions. Errors that are not usage errors render
// as their message.
func Render(err error, s domain.Styler) string {
	if err == nil {
		return ""
	}

	var ue *Error
	if !errors.As(err, &ue) {
		return s.Error("error:") + " " + err.Error()
	}

	var b strings.Builder
	if ue.Kind == ErrValidationFailed {
		b.WriteString(s.Error("error:") + " invalid input for '" + ue.Command + "'")
		for _, v := range ue.Violations {
			b.WriteString("\n  - " + v.Error())
		}
	} else {
		b.WriteString(s.Error("error:") + " " + ue.Error())
	}

	if len(ue.Suggestions) > 0 {
		if len(ue.Suggestions) == 1 {
			b.WriteString("\n\n" + s.Info("Did you mean '"+ue.Suggestions[0]+"'?"))
		} else {
			b.WriteString("\n\n" + s.Info("Did you mean one of these?"))
			for _, sug := range ue.Suggestions {
				b.WriteString("\n    " + sug)
			}
		}
	}

	switch ue.Kind {
	case ErrUnknownCommand:
		b.WriteString("\n" + s.Muted("Type 'help' to list commands."))
	case ErrUnknownFlag, ErrTooManyArguments, ErrMissingArgument, ErrMissingRequired, ErrMissingFlagValue:
		b.WriteString("\n" + s.Muted("Type 'help "+ue.Command+"' for usage."))
	}

	return b.String()
}
