package parser

import (
	"strconv"
	"strings"

	"github.com/footprint-tools/cmdspec/internal/schema"
)

type flagEntry struct {
	spec   *schema.OptionSpec
	global bool
}

// flagSet indexes the options a command accepts, its own and the globals.
type flagSet struct {
	long  map[string]flagEntry
	short map[string]flagEntry
	forms []string
}

func newFlagSet(local, globals []schema.OptionSpec) *flagSet {
	fs := &flagSet{
		long:  map[string]flagEntry{},
		short: map[string]flagEntry{},
	}
	// Globals first so a command's own option wins a shared flag.
	for i := range globals {
		fs.add(&globals[i], true)
	}
	for i := range local {
		fs.add(&local[i], false)
	}
	for long := range fs.long {
		fs.forms = append(fs.forms, "--"+long)
	}
	for short := range fs.short {
		fs.forms = append(fs.forms, "-"+short)
	}
	return fs
}

func (fs *flagSet) add(o *schema.OptionSpec, global bool) {
	e := flagEntry{spec: o, global: global}
	if o.Long != "" {
		fs.long[o.Long] = e
	}
	if o.Short != "" {
		fs.short[o.Short] = e
	}
}

// isNegativeNumber reports whether tok reads as a negative decimal number.
// The sign must be followed by a digit or '.', so words like -inf and -nan
// stay flags.
func isNegativeNumber(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' || strings.ContainsAny(tok, "xX_") {
		return false
	}
	if c := tok[1]; c != '.' && (c < '0' || c > '9') {
		return false
	}
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}

// isShortFlag reports whether tok should be read as one or more short
// flags. A lone "-" and negative numbers are positional unless the first
// character is a declared short flag.
func (fs *flagSet) isShortFlag(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' || tok[1] == '-' {
		return false
	}
	if isNegativeNumber(tok) {
		_, declared := fs.short[firstRune(tok[1:])]
		return declared
	}
	return true
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
