package schema

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// CheckError reports one structural problem in a document.
type CheckError struct {
	Path   string
	Reason string
}

func (e *CheckError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return e.Path + ": " + e.Reason
}

// Check validates the structure of a document and returns every problem
// found, joined. Name and alias uniqueness across commands is left to the
// registry.
func Check(doc Document) error {
	c := &checker{}

	globalFlags := map[string]string{}
	for i, o := range doc.GlobalOptions {
		path := fmt.Sprintf("global_options[%d]", i)
		c.option(path, o)
		c.claimFlags(path, o, globalFlags)
	}
	c.duplicateOptionNames("global_options", doc.GlobalOptions)

	for i, cmd := range doc.Commands {
		c.command(fmt.Sprintf("commands[%d]", i), cmd, globalFlags)
	}

	return errors.Join(c.errs...)
}

type checker struct {
	errs []error
}

func (c *checker) fail(path, format string, args ...any) {
	c.errs = append(c.errs, &CheckError{Path: path, Reason: fmt.Sprintf(format, args...)})
}

func (c *checker) command(path string, cmd CommandSpec, globalFlags map[string]string) {
	if strings.TrimSpace(cmd.Name) == "" {
		c.fail(path, "command name is empty")
	} else if strings.ContainsAny(cmd.Name, " \t\r\n") {
		c.fail(path, "command name %q contains whitespace", cmd.Name)
	} else {
		path = path + "(" + cmd.Name + ")"
	}
	if strings.TrimSpace(cmd.Implementation) == "" {
		c.fail(path, "implementation is empty")
	}
	for i, alias := range cmd.Aliases {
		if strings.TrimSpace(alias) == "" || strings.ContainsAny(alias, " \t\r\n") {
			c.fail(fmt.Sprintf("%s.aliases[%d]", path, i), "alias %q is empty or contains whitespace", alias)
		}
	}

	argNames := map[string]bool{}
	seenOptional := ""
	for i, a := range cmd.Arguments {
		apath := fmt.Sprintf("%s.arguments[%d]", path, i)
		c.field(apath, a.Field())
		if a.Name != "" && argNames[a.Name] {
			c.fail(apath, "duplicate argument name %q", a.Name)
		}
		argNames[a.Name] = true
		if a.Required && seenOptional != "" {
			c.fail(apath, "required argument %q follows optional argument %q", a.Name, seenOptional)
		}
		if !a.Required && seenOptional == "" {
			seenOptional = a.Name
		}
	}

	flags := map[string]string{}
	for k, v := range globalFlags {
		flags[k] = v
	}
	for i, o := range cmd.Options {
		opath := fmt.Sprintf("%s.options[%d]", path, i)
		c.option(opath, o)
		c.claimFlags(opath, o, flags)
		if argNames[o.Name] {
			c.fail(opath, "option name %q is also an argument name", o.Name)
		}
	}
	c.duplicateOptionNames(path+".options", cmd.Options)
}

func (c *checker) option(path string, o OptionSpec) {
	c.field(path, o.Field())
	if o.Short == "" && o.Long == "" {
		c.fail(path, "option %q needs a short or long flag", o.Name)
	}
	if o.Short != "" && (utf8.RuneCountInString(o.Short) != 1 || o.Short == "-") {
		c.fail(path, "short flag %q must be a single character", o.Short)
	}
	if o.Long != "" && (strings.HasPrefix(o.Long, "-") || strings.ContainsAny(o.Long, " \t=")) {
		c.fail(path, "long flag %q must be a bare word without dashes or '='", o.Long)
	}
}

func (c *checker) field(path string, f Field) {
	if strings.TrimSpace(f.Name) == "" {
		c.fail(path, "name is empty")
	}
	if _, ok := typeNames[f.Type]; !ok {
		c.fail(path, "unknown type %s", f.Type)
	}
	if f.Type == TypeBool && len(f.Choices) > 0 {
		c.fail(path, "bool field %q cannot declare choices", f.Name)
	}
	if f.Default != nil && len(f.Choices) > 0 && !f.Type.HasChoice(*f.Default, f.Choices) {
		c.fail(path, "default %q is not one of the choices [%s]", *f.Default, strings.Join(f.Choices, ", "))
	}
	for i, r := range f.Rules {
		rpath := fmt.Sprintf("%s.validation[%d]", path, i)
		switch r.Kind {
		case RuleMustExist, RuleExtensions:
			if f.Type != TypePath {
				c.fail(rpath, "%s only applies to path fields, %q is %s", r.Kind, f.Name, f.Type)
			}
			if r.Kind == RuleExtensions && len(r.Extensions) == 0 {
				c.fail(rpath, "extensions list is empty")
			}
		case RuleRange:
			if !f.Type.Numeric() {
				c.fail(rpath, "range only applies to numeric fields, %q is %s", f.Name, f.Type)
			}
			if r.Min == nil && r.Max == nil {
				c.fail(rpath, "range needs a min or a max")
			}
			if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
				c.fail(rpath, "range min %g is greater than max %g", *r.Min, *r.Max)
			}
		default:
			c.fail(rpath, "unknown rule kind %d", int(r.Kind))
		}
	}
}

func (c *checker) claimFlags(path string, o OptionSpec, seen map[string]string) {
	for _, flag := range o.Flags() {
		if owner, ok := seen[flag]; ok {
			c.fail(path, "flag %s already used by option %q", flag, owner)
			continue
		}
		seen[flag] = o.Name
	}
}

func (c *checker) duplicateOptionNames(path string, opts []OptionSpec) {
	seen := map[string]bool{}
	for _, o := range opts {
		if o.Name == "" {
			continue
		}
		if seen[o.Name] {
			c.fail(path, "duplicate option name %q", o.Name)
		}
		seen[o.Name] = true
	}
}
