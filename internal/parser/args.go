package parser

import (
	"sort"

	"github.com/footprint-tools/cmdspec/internal/validate"
)

// Args provides typed access to coerced argument and option values.
type Args struct {
	values  map[string]validate.Value
	globals map[string]validate.Value
}

// NewArgs builds Args from already coerced values.
func NewArgs(values map[string]validate.Value) Args {
	return Args{values: values}
}

// Globals returns the global options that accompanied these arguments.
func (a Args) Globals() Args {
	return Args{values: a.globals}
}

// Has returns true if the field has a value, supplied or defaulted.
func (a Args) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// Get returns the canonical string form of a field.
func (a Args) Get(name string) (string, bool) {
	v, ok := a.values[name]
	return v.Text, ok
}

// Value returns the typed value of a field.
func (a Args) Value(name string) (validate.Value, bool) {
	v, ok := a.values[name]
	return v, ok
}

// String returns the value of a field, or defaultVal if not present.
func (a Args) String(name, defaultVal string) string {
	if v, ok := a.values[name]; ok {
		return v.Text
	}
	return defaultVal
}

// Path returns a path field in its cleaned form, or defaultVal.
func (a Args) Path(name, defaultVal string) string {
	return a.String(name, defaultVal)
}

// Int returns an integer field, or defaultVal if not present.
func (a Args) Int(name string, defaultVal int64) int64 {
	if v, ok := a.values[name]; ok {
		if n, ok := v.Number(); ok {
			return int64(n)
		}
	}
	return defaultVal
}

// Float returns a numeric field as float64, or defaultVal if not present.
func (a Args) Float(name string, defaultVal float64) float64 {
	if v, ok := a.values[name]; ok {
		if n, ok := v.Number(); ok {
			return n
		}
	}
	return defaultVal
}

// Bool returns a boolean field, or false if not present.
func (a Args) Bool(name string) bool {
	return a.values[name].Bool
}

// Map returns the name to canonical string mapping.
func (a Args) Map() map[string]string {
	out := make(map[string]string, len(a.values))
	for k, v := range a.values {
		out[k] = v.Text
	}
	return out
}

// Names returns the field names that have values, sorted.
func (a Args) Names() []string {
	names := make([]string, 0, len(a.values))
	for k := range a.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (a Args) Len() int {
	return len(a.values)
}
