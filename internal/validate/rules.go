package validate

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/cmdspec/internal/schema"
)

// Validate evaluates every rule in order and returns all violations.
// An empty result means the value passed.
func Validate(field string, v Value, rules []schema.Rule) []Violation {
	var out []Violation
	for _, r := range rules {
		if violation, failed := check(field, v, r); failed {
			out = append(out, violation)
		}
	}
	return out
}

func check(field string, v Value, r schema.Rule) (Violation, bool) {
	switch r.Kind {
	case schema.RuleMustExist:
		if v.Type != schema.TypePath {
			return Violation{}, false
		}
		if _, err := os.Stat(v.Text); err != nil {
			return Violation{Kind: NotFound, Field: field, Raw: v.Text, Err: err}, true
		}

	case schema.RuleExtensions:
		if v.Type != schema.TypePath {
			return Violation{}, false
		}
		if !hasExtension(v.Text, r.Extensions) {
			return Violation{Kind: BadExtension, Field: field, Raw: v.Text, Accepted: r.Extensions}, true
		}

	case schema.RuleRange:
		n, ok := v.Number()
		if !ok {
			return Violation{}, false
		}
		if (r.Min != nil && n < *r.Min) || (r.Max != nil && n > *r.Max) {
			return Violation{Kind: OutOfRange, Field: field, Raw: v.Text, Value: n, Min: r.Min, Max: r.Max}, true
		}
	}
	return Violation{}, false
}

func hasExtension(path string, accepted []string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return false
	}
	for _, a := range accepted {
		if strings.EqualFold(ext, strings.TrimPrefix(a, ".")) {
			return true
		}
	}
	return false
}

// Choice checks a coerced value against a closed set. Each choice is
// compared in canonical form when it coerces, and verbatim otherwise.
func Choice(field string, v Value, choices []string) (Violation, bool) {
	if len(choices) == 0 {
		return Violation{}, false
	}
	if v.Type.HasChoice(v.Text, choices) {
		return Violation{}, false
	}
	return Violation{Kind: NotAChoice, Field: field, Raw: v.Text, Accepted: choices}, true
}

// Field coerces raw text for a declared field and runs its choices and
// rules. A type error stops evaluation since the rules need a typed value.
func Field(f schema.Field, raw string) (Value, []Violation) {
	v, err := Coerce(f.Name, raw, f.Type)
	if err != nil {
		return Value{}, []Violation{err.(Violation)}
	}
	var out []Violation
	if violation, failed := Choice(f.Name, v, f.Choices); failed {
		out = append(out, violation)
	}
	out = append(out, Validate(f.Name, v, f.Rules)...)
	return v, out
}
