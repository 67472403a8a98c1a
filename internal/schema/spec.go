package schema

import "strings"

// DefaultPromptSuffix is appended to the interactive prompt when the
// document does not set one.
const DefaultPromptSuffix = " > "

type Metadata struct {
	Version      string
	Prompt       string
	PromptSuffix string
}

// Document is a complete command surface: metadata, commands and the
// options every command accepts.
type Document struct {
	Metadata      Metadata
	Commands      []CommandSpec
	GlobalOptions []OptionSpec
}

// PromptLine returns the prompt text followed by its suffix.
func (m Metadata) PromptLine() string {
	suffix := m.PromptSuffix
	if suffix == "" {
		suffix = DefaultPromptSuffix
	}
	return m.Prompt + suffix
}

type CommandSpec struct {
	Name        string
	Aliases     []string
	Description string
	// Required marks commands an application must bind a handler for.
	Required       bool
	Arguments      []ArgumentSpec
	Options        []OptionSpec
	Implementation string
}

type ArgumentSpec struct {
	Name        string
	Type        ArgumentType
	Required    bool
	Description string
	Default     *string
	Choices     []string
	Rules       []Rule
}

type OptionSpec struct {
	Name        string
	Short       string
	Long        string
	Type        ArgumentType
	Required    bool
	Description string
	Default     *string
	Choices     []string
	Rules       []Rule
}

// Field is the part of an argument or option that coercion and validation
// care about.
type Field struct {
	Name     string
	Type     ArgumentType
	Required bool
	Default  *string
	Choices  []string
	Rules    []Rule
}

func (a ArgumentSpec) Field() Field {
	return Field{Name: a.Name, Type: a.Type, Required: a.Required, Default: a.Default, Choices: a.Choices, Rules: a.Rules}
}

func (o OptionSpec) Field() Field {
	return Field{Name: o.Name, Type: o.Type, Required: o.Required, Default: o.Default, Choices: o.Choices, Rules: o.Rules}
}

// Flags returns the dashed forms of the option, long form first.
func (o OptionSpec) Flags() []string {
	var flags []string
	if o.Long != "" {
		flags = append(flags, "--"+o.Long)
	}
	if o.Short != "" {
		flags = append(flags, "-"+o.Short)
	}
	return flags
}

// Usage renders the command's synopsis, e.g. "copy <source> [dest] [options]".
func (c CommandSpec) Usage() string {
	var b strings.Builder
	b.WriteString(c.Name)
	for _, a := range c.Arguments {
		if a.Required {
			b.WriteString(" <" + a.Name + ">")
		} else {
			b.WriteString(" [" + a.Name + "]")
		}
	}
	if len(c.Options) > 0 {
		b.WriteString(" [options]")
	}
	return b.String()
}

// Default returns a pointer to s, for filling ArgumentSpec.Default and
// OptionSpec.Default in literals.
func Default(s string) *string {
	return &s
}

// Clone returns a deep copy of the command so later edits to the source
// slices cannot reach a built registry.
func (c CommandSpec) Clone() CommandSpec {
	out := c
	out.Aliases = append([]string(nil), c.Aliases...)
	out.Arguments = make([]ArgumentSpec, len(c.Arguments))
	for i, a := range c.Arguments {
		a.Choices = append([]string(nil), a.Choices...)
		a.Rules = cloneRules(a.Rules)
		a.Default = cloneDefault(a.Default)
		out.Arguments[i] = a
	}
	out.Options = CloneOptions(c.Options)
	return out
}

// CloneOptions deep-copies a list of option specs.
func CloneOptions(opts []OptionSpec) []OptionSpec {
	if opts == nil {
		return nil
	}
	out := make([]OptionSpec, len(opts))
	for i, o := range opts {
		o.Choices = append([]string(nil), o.Choices...)
		o.Rules = cloneRules(o.Rules)
		o.Default = cloneDefault(o.Default)
		out[i] = o
	}
	return out
}

func cloneRules(rules []Rule) []Rule {
	if rules == nil {
		return nil
	}
	out := make([]Rule, len(rules))
	for i, r := range rules {
		r.Extensions = append([]string(nil), r.Extensions...)
		if r.Min != nil {
			v := *r.Min
			r.Min = &v
		}
		if r.Max != nil {
			v := *r.Max
			r.Max = &v
		}
		out[i] = r
	}
	return out
}

func cloneDefault(d *string) *string {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
