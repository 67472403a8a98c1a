package schema

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

// ArgumentType is the declared type of an argument or option value.
type ArgumentType int

const (
	TypeString ArgumentType = iota
	TypeInteger
	TypeFloat
	TypeBool
	TypePath
)

var typeNames = map[ArgumentType]string{
	TypeString:  "string",
	TypeInteger: "integer",
	TypeFloat:   "float",
	TypeBool:    "bool",
	TypePath:    "path",
}

var typeAliases = map[string]ArgumentType{
	"string":  TypeString,
	"text":    TypeString,
	"integer": TypeInteger,
	"int":     TypeInteger,
	"float":   TypeFloat,
	"number":  TypeFloat,
	"bool":    TypeBool,
	"boolean": TypeBool,
	"path":    TypePath,
}

func (t ArgumentType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ArgumentType(%d)", int(t))
}

// Numeric reports whether range rules apply to values of this type.
func (t ArgumentType) Numeric() bool {
	return t == TypeInteger || t == TypeFloat
}

// ParseArgumentType converts a type name to an ArgumentType.
// Names are case insensitive and accept the common aliases (text, int, number, boolean).
func ParseArgumentType(s string) (ArgumentType, error) {
	if t, ok := typeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return TypeString, fmt.Errorf("unknown type %q (want string, integer, float, bool or path)", s)
}

var boolWords = map[string]bool{
	"true": true, "yes": true, "1": true, "on": true,
	"false": false, "no": false, "0": false, "off": false,
}

// ParseBool reads the accepted boolean words, case insensitive.
func ParseBool(s string) (value, ok bool) {
	value, ok = boolWords[strings.ToLower(s)]
	return value, ok
}

// Canonical returns raw in the normalized text form of t. Numbers are
// reformatted, bools become true or false and paths are cleaned. ok is
// false when raw does not read as t.
func (t ArgumentType) Canonical(raw string) (string, bool) {
	switch t {
	case TypeInteger:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return "", false
		}
		return strconv.FormatInt(n, 10), true
	case TypeFloat:
		if strings.ContainsAny(raw, "xX_") {
			return "", false
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return "", false
		}
		return strconv.FormatFloat(f, 'g', -1, 64), true
	case TypeBool:
		b, ok := ParseBool(raw)
		if !ok {
			return "", false
		}
		return strconv.FormatBool(b), true
	case TypePath:
		if raw == "" || strings.ContainsRune(raw, 0) {
			return "", false
		}
		return filepath.Clean(raw), true
	default:
		return raw, true
	}
}

// HasChoice reports whether raw matches one of choices, comparing both
// sides in canonical form so "01" matches an integer choice "1".
func (t ArgumentType) HasChoice(raw string, choices []string) bool {
	canon, ok := t.Canonical(raw)
	if !ok {
		canon = raw
	}
	for _, c := range choices {
		if c == raw || c == canon {
			return true
		}
		if cc, ok := t.Canonical(c); ok && cc == canon {
			return true
		}
	}
	return false
}
