package validate

import (
	"strconv"

	"github.com/footprint-tools/cmdspec/internal/schema"
)

// Value is a coerced argument. Text always holds the canonical string
// form; the typed field matching Type holds the parsed value.
type Value struct {
	Type  schema.ArgumentType
	Text  string
	Int   int64
	Float float64
	Bool  bool
}

func (v Value) String() string {
	return v.Text
}

// Number returns the value as a float64 for range checks.
func (v Value) Number() (float64, bool) {
	switch v.Type {
	case schema.TypeInteger:
		return float64(v.Int), true
	case schema.TypeFloat:
		return v.Float, true
	default:
		return 0, false
	}
}

func intValue(n int64) Value {
	return Value{Type: schema.TypeInteger, Text: strconv.FormatInt(n, 10), Int: n}
}

func floatValue(f float64) Value {
	return Value{Type: schema.TypeFloat, Text: strconv.FormatFloat(f, 'g', -1, 64), Float: f}
}

func boolValue(b bool) Value {
	return Value{Type: schema.TypeBool, Text: strconv.FormatBool(b), Bool: b}
}
