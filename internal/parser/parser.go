package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/footprint-tools/cmdspec/internal/log"
	"github.com/footprint-tools/cmdspec/internal/registry"
	"github.com/footprint-tools/cmdspec/internal/schema"
	"github.com/footprint-tools/cmdspec/internal/suggest"
	"github.com/footprint-tools/cmdspec/internal/usage"
	"github.com/footprint-tools/cmdspec/internal/validate"
)

// Invocation is a fully parsed and validated command line.
type Invocation struct {
	Command *schema.CommandSpec
	Args    Args
	// Globals holds the global options that were supplied or defaulted.
	Globals Args
}

type Option func(*Parser)

// WithSuggestions overrides the bounds used for "did you mean" hints.
func WithSuggestions(o suggest.Options) Option {
	return func(p *Parser) {
		p.suggest = o
	}
}

// Parser turns tokens into invocations against one registry. It holds no
// per-call state and is safe for concurrent use.
type Parser struct {
	reg     *registry.Registry
	globals []schema.OptionSpec
	suggest suggest.Options
}

func New(reg *registry.Registry, globals []schema.OptionSpec, opts ...Option) *Parser {
	p := &Parser{
		reg:     reg,
		globals: schema.CloneOptions(globals),
		suggest: suggest.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) Registry() *registry.Registry {
	return p.reg
}

func (p *Parser) Globals() []schema.OptionSpec {
	return p.globals
}

// ParseLine tokenizes an interactive input line and parses it. Callers
// skip blank lines before calling.
func (p *Parser) ParseLine(line string) (*Invocation, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	return p.Parse(tokens)
}

// Parse resolves tokens[0] to a command and binds the remaining tokens to
// its options and arguments. Either the whole invocation is valid or an
// *usage.Error is returned.
func (p *Parser) Parse(tokens []string) (*Invocation, error) {
	if len(tokens) == 0 {
		return nil, usage.EmptyInput()
	}

	cmd, ok := p.reg.Resolve(tokens[0])
	if !ok {
		log.Debug("parser: unknown command %q", tokens[0])
		return nil, usage.UnknownCommand(tokens[0], p.suggest.Suggest(tokens[0], p.reg.Names()))
	}

	s := &scan{
		p:       p,
		cmd:     cmd,
		flags:   newFlagSet(cmd.Options, p.globals),
		local:   map[string]string{},
		globals: map[string]string{},
	}
	if err := s.run(tokens[1:]); err != nil {
		log.Debug("parser: %s: %v", cmd.Name, err)
		return nil, err
	}

	inv, err := s.bind()
	if err != nil {
		log.Debug("parser: %s: %v", cmd.Name, err)
		return nil, err
	}

	log.Debug("parser: %s resolved with %d fields", cmd.Name, inv.Args.Len())
	return inv, nil
}

// scan holds the state of one Parse call.
type scan struct {
	p           *Parser
	cmd         *schema.CommandSpec
	flags       *flagSet
	local       map[string]string
	globals     map[string]string
	positionals []string
}

func (s *scan) run(tokens []string) error {
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch {
		case tok == "--":
			s.positionals = append(s.positionals, tokens[i+1:]...)
			return nil

		case strings.HasPrefix(tok, "--"):
			name, value, hasValue := strings.Cut(tok[2:], "=")
			e, ok := s.flags.long[name]
			if !ok {
				return s.unknownFlag("--" + name)
			}
			if !hasValue && e.spec.Type != schema.TypeBool {
				if i+1 >= len(tokens) {
					return usage.MissingFlagValue(s.cmd.Name, "--"+name)
				}
				i++
				value, hasValue = tokens[i], true
			}
			s.set(e, value, hasValue)

		case s.flags.isShortFlag(tok):
			consumed, err := s.shortCluster(tok, tokens[i+1:])
			if err != nil {
				return err
			}
			i += consumed

		default:
			s.positionals = append(s.positionals, tok)
		}
	}
	return nil
}

// shortCluster handles "-v", "-vq", "-t8", "-t=8" and "-t 8". It returns
// how many following tokens were consumed as a value.
func (s *scan) shortCluster(tok string, next []string) (int, error) {
	body := tok[1:]
	for len(body) > 0 {
		r, size := utf8.DecodeRuneInString(body)
		flag := string(r)
		body = body[size:]

		e, ok := s.flags.short[flag]
		if !ok {
			return 0, s.unknownFlag("-" + flag)
		}

		if e.spec.Type == schema.TypeBool {
			if strings.HasPrefix(body, "=") {
				s.set(e, body[1:], true)
				return 0, nil
			}
			s.set(e, "", false)
			continue
		}

		if body != "" {
			s.set(e, strings.TrimPrefix(body, "="), true)
			return 0, nil
		}
		if len(next) == 0 {
			return 0, usage.MissingFlagValue(s.cmd.Name, "-"+flag)
		}
		s.set(e, next[0], true)
		return 1, nil
	}
	return 0, nil
}

// set records a flag value. Presence alone sets a bool to true. The last
// occurrence wins.
func (s *scan) set(e flagEntry, value string, hasValue bool) {
	if !hasValue {
		value = "true"
	}
	if e.global {
		s.globals[e.spec.Name] = value
	} else {
		s.local[e.spec.Name] = value
	}
}

func (s *scan) unknownFlag(flag string) error {
	return usage.UnknownFlag(s.cmd.Name, flag, s.p.suggest.Suggest(flag, s.flags.forms))
}

type boundField struct {
	field  schema.Field
	raw    string
	global bool
}

// bind assigns positionals, applies defaults, checks required fields and
// validates every value.
func (s *scan) bind() (*Invocation, error) {
	args := s.cmd.Arguments
	if len(s.positionals) > len(args) {
		return nil, usage.TooManyArguments(s.cmd.Name, len(args), len(s.positionals))
	}

	var fields []boundField
	for i, a := range args {
		f := a.Field()
		switch {
		case i < len(s.positionals):
			fields = append(fields, boundField{field: f, raw: s.positionals[i]})
		case f.Default != nil:
			fields = append(fields, boundField{field: f, raw: *f.Default})
		case f.Required && len(s.positionals) == 0:
			return nil, usage.MissingRequired(s.cmd.Name, f.Name)
		case f.Required:
			return nil, usage.MissingArgument(s.cmd.Name, f.Name)
		}
	}

	local, err := s.options(s.cmd.Options, s.local, false)
	if err != nil {
		return nil, err
	}
	fields = append(fields, local...)

	globals, err := s.options(s.p.globals, s.globals, true)
	if err != nil {
		return nil, err
	}
	fields = append(fields, globals...)

	values := map[string]validate.Value{}
	globalValues := map[string]validate.Value{}
	var violations []validate.Violation
	for _, b := range fields {
		v, vs := validate.Field(b.field, b.raw)
		violations = append(violations, vs...)
		if b.global {
			globalValues[b.field.Name] = v
		} else {
			values[b.field.Name] = v
		}
	}
	if len(violations) > 0 {
		return nil, usage.ValidationFailed(s.cmd.Name, violations)
	}

	return &Invocation{
		Command: s.cmd,
		Args:    Args{values: values, globals: globalValues},
		Globals: NewArgs(globalValues),
	}, nil
}

func (s *scan) options(opts []schema.OptionSpec, supplied map[string]string, global bool) ([]boundField, error) {
	var out []boundField
	for _, o := range opts {
		f := o.Field()
		if raw, ok := supplied[f.Name]; ok {
			out = append(out, boundField{field: f, raw: raw, global: global})
			continue
		}
		if f.Default != nil {
			out = append(out, boundField{field: f, raw: *f.Default, global: global})
			continue
		}
		if f.Required {
			return nil, usage.MissingRequired(s.cmd.Name, f.Name)
		}
	}
	return out, nil
}
