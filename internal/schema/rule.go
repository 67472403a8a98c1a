package schema

import (
	"strconv"
	"strings"
)

// RuleKind identifies which variant a Rule holds.
type RuleKind int

const (
	RuleMustExist RuleKind = iota + 1
	RuleExtensions
	RuleRange
)

func (k RuleKind) String() string {
	switch k {
	case RuleMustExist:
		return "must_exist"
	case RuleExtensions:
		return "extensions"
	case RuleRange:
		return "range"
	default:
		return "unknown"
	}
}

// Rule is a declarative validation constraint. Only the fields that belong
// to Kind are meaningful.
type Rule struct {
	Kind       RuleKind
	Extensions []string
	Min        *float64
	Max        *float64
}

// MustExist requires a path value to exist on the filesystem.
func MustExist() Rule {
	return Rule{Kind: RuleMustExist}
}

// Extensions restricts a path value to the given suffixes, written with or
// without the leading dot.
func Extensions(exts ...string) Rule {
	return Rule{Kind: RuleExtensions, Extensions: exts}
}

// Range bounds a numeric value. Either bound may be nil.
func Range(min, max *float64) Rule {
	return Rule{Kind: RuleRange, Min: min, Max: max}
}

// Between is Range with both bounds present.
func Between(min, max float64) Rule {
	return Range(&min, &max)
}

// AtLeast is Range with only a lower bound.
func AtLeast(min float64) Rule {
	return Range(&min, nil)
}

// AtMost is Range with only an upper bound.
func AtMost(max float64) Rule {
	return Range(nil, &max)
}

func (r Rule) String() string {
	switch r.Kind {
	case RuleMustExist:
		return "must exist"
	case RuleExtensions:
		return "extension in [" + strings.Join(r.Extensions, ", ") + "]"
	case RuleRange:
		return "range " + FormatBounds(r.Min, r.Max)
	default:
		return r.Kind.String()
	}
}

// FormatBounds renders an inclusive interval, using -inf and +inf for
// missing bounds.
func FormatBounds(min, max *float64) string {
	lo, hi := "-inf", "+inf"
	if min != nil {
		lo = strconv.FormatFloat(*min, 'g', -1, 64)
	}
	if max != nil {
		hi = strconv.FormatFloat(*max, 'g', -1, 64)
	}
	return "[" + lo + ", " + hi + "]"
}
