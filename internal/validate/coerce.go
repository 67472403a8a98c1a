package validate

import (
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/footprint-tools/cmdspec/internal/schema"
)

// Coerce converts raw text into a typed value. On failure the returned
// error is a Violation with a type-error kind.
func Coerce(field, raw string, t schema.ArgumentType) (Value, error) {
	switch t {
	case schema.TypeInteger:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, Violation{Kind: InvalidNumber, Field: field, Raw: raw, Type: t, Err: err}
		}
		return intValue(n), nil

	case schema.TypeFloat:
		// ParseFloat also takes hex mantissas and digit separators; only
		// plain decimal notation is a number here.
		if strings.ContainsAny(raw, "xX_") {
			return Value{}, Violation{Kind: InvalidNumber, Field: field, Raw: raw, Type: t}
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return Value{}, Violation{Kind: InvalidNumber, Field: field, Raw: raw, Type: t, Err: err}
		}
		return floatValue(f), nil

	case schema.TypeBool:
		b, ok := schema.ParseBool(raw)
		if !ok {
			return Value{}, Violation{Kind: InvalidBool, Field: field, Raw: raw, Type: t}
		}
		return boolValue(b), nil

	case schema.TypePath:
		if raw == "" || strings.ContainsRune(raw, 0) {
			return Value{}, Violation{Kind: InvalidPath, Field: field, Raw: raw, Type: t}
		}
		return Value{Type: t, Text: filepath.Clean(raw)}, nil

	default:
		return Value{Type: schema.TypeString, Text: raw}, nil
	}
}
