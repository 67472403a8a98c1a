package schemafile

import (
	"errors"
	"fmt"

	"github.com/footprint-tools/cmdspec/internal/schema"
)

// fileDocument mirrors the on-disk layout shared by the YAML, JSON and
// TOML decoders. HCL is decoded separately and converted into it.
type fileDocument struct {
	Metadata      fileMetadata  `yaml:"metadata" json:"metadata" toml:"metadata"`
	Commands      []fileCommand `yaml:"commands" json:"commands" toml:"commands"`
	GlobalOptions []fileOption  `yaml:"global_options" json:"global_options" toml:"global_options"`
}

type fileMetadata struct {
	Version      string  `yaml:"version" json:"version" toml:"version"`
	Prompt       string  `yaml:"prompt" json:"prompt" toml:"prompt"`
	PromptSuffix *string `yaml:"prompt_suffix" json:"prompt_suffix" toml:"prompt_suffix"`
}

type fileCommand struct {
	Name           string         `yaml:"name" json:"name" toml:"name"`
	Aliases        []string       `yaml:"aliases" json:"aliases" toml:"aliases"`
	Description    string         `yaml:"description" json:"description" toml:"description"`
	Required       bool           `yaml:"required" json:"required" toml:"required"`
	Arguments      []fileArgument `yaml:"arguments" json:"arguments" toml:"arguments"`
	Options        []fileOption   `yaml:"options" json:"options" toml:"options"`
	Implementation string         `yaml:"implementation" json:"implementation" toml:"implementation"`
}

type fileArgument struct {
	Name        string       `yaml:"name" json:"name" toml:"name"`
	Type        string       `yaml:"type" json:"type" toml:"type"`
	ArgType     string       `yaml:"arg_type" json:"arg_type" toml:"arg_type"`
	Required    bool         `yaml:"required" json:"required" toml:"required"`
	Description string       `yaml:"description" json:"description" toml:"description"`
	Default     *scalarText  `yaml:"default" json:"default" toml:"default"`
	Choices     []scalarText `yaml:"choices" json:"choices" toml:"choices"`
	Validation  []fileRule   `yaml:"validation" json:"validation" toml:"validation"`
}

type fileOption struct {
	Name        string       `yaml:"name" json:"name" toml:"name"`
	Short       string       `yaml:"short" json:"short" toml:"short"`
	Long        string       `yaml:"long" json:"long" toml:"long"`
	Type        string       `yaml:"type" json:"type" toml:"type"`
	OptionType  string       `yaml:"option_type" json:"option_type" toml:"option_type"`
	Required    bool         `yaml:"required" json:"required" toml:"required"`
	Description string       `yaml:"description" json:"description" toml:"description"`
	Default     *scalarText  `yaml:"default" json:"default" toml:"default"`
	Choices     []scalarText `yaml:"choices" json:"choices" toml:"choices"`
	Validation  []fileRule   `yaml:"validation" json:"validation" toml:"validation"`
}

// fileRule holds one validation entry. Exactly one variant may be set.
type fileRule struct {
	MustExist  *bool    `yaml:"must_exist" json:"must_exist" toml:"must_exist"`
	Extensions []string `yaml:"extensions" json:"extensions" toml:"extensions"`
	Min        *float64 `yaml:"min" json:"min" toml:"min"`
	Max        *float64 `yaml:"max" json:"max" toml:"max"`
}

func (d *fileDocument) document() (schema.Document, error) {
	doc := schema.Document{
		Metadata: schema.Metadata{
			Version:      d.Metadata.Version,
			Prompt:       d.Metadata.Prompt,
			PromptSuffix: schema.DefaultPromptSuffix,
		},
	}
	if d.Metadata.PromptSuffix != nil {
		doc.Metadata.PromptSuffix = *d.Metadata.PromptSuffix
	}

	var errs []error
	for i, o := range d.GlobalOptions {
		opt, err := o.spec()
		if err != nil {
			errs = append(errs, fmt.Errorf("global_options[%d]: %w", i, err))
			continue
		}
		doc.GlobalOptions = append(doc.GlobalOptions, opt)
	}

	for i, c := range d.Commands {
		cmd := schema.CommandSpec{
			Name:           c.Name,
			Aliases:        c.Aliases,
			Description:    c.Description,
			Required:       c.Required,
			Implementation: c.Implementation,
		}
		for j, a := range c.Arguments {
			arg, err := a.spec()
			if err != nil {
				errs = append(errs, fmt.Errorf("commands[%d].arguments[%d]: %w", i, j, err))
				continue
			}
			cmd.Arguments = append(cmd.Arguments, arg)
		}
		for j, o := range c.Options {
			opt, err := o.spec()
			if err != nil {
				errs = append(errs, fmt.Errorf("commands[%d].options[%d]: %w", i, j, err))
				continue
			}
			cmd.Options = append(cmd.Options, opt)
		}
		doc.Commands = append(doc.Commands, cmd)
	}

	return doc, errors.Join(errs...)
}

func (a fileArgument) spec() (schema.ArgumentSpec, error) {
	typ, err := fieldType(a.Type, a.ArgType)
	if err != nil {
		return schema.ArgumentSpec{}, err
	}
	rules, err := convertRules(a.Validation)
	if err != nil {
		return schema.ArgumentSpec{}, err
	}
	return schema.ArgumentSpec{
		Name:        a.Name,
		Type:        typ,
		Required:    a.Required,
		Description: a.Description,
		Default:     a.Default.ptr(),
		Choices:     texts(a.Choices),
		Rules:       rules,
	}, nil
}

func (o fileOption) spec() (schema.OptionSpec, error) {
	typ, err := fieldType(o.Type, o.OptionType)
	if err != nil {
		return schema.OptionSpec{}, err
	}
	rules, err := convertRules(o.Validation)
	if err != nil {
		return schema.OptionSpec{}, err
	}
	return schema.OptionSpec{
		Name:        o.Name,
		Short:       o.Short,
		Long:        o.Long,
		Type:        typ,
		Required:    o.Required,
		Description: o.Description,
		Default:     o.Default.ptr(),
		Choices:     texts(o.Choices),
		Rules:       rules,
	}, nil
}

// fieldType accepts "type" and its older spelling; a missing type is a
// string.
func fieldType(primary, legacy string) (schema.ArgumentType, error) {
	switch {
	case primary != "" && legacy != "" && primary != legacy:
		return schema.TypeString, fmt.Errorf("conflicting types %q and %q", primary, legacy)
	case primary != "":
		return schema.ParseArgumentType(primary)
	case legacy != "":
		return schema.ParseArgumentType(legacy)
	default:
		return schema.TypeString, nil
	}
}

func convertRules(in []fileRule) ([]schema.Rule, error) {
	var out []schema.Rule
	for i, r := range in {
		set := 0
		if r.MustExist != nil {
			set++
		}
		if r.Extensions != nil {
			set++
		}
		if r.Min != nil || r.Max != nil {
			set++
		}

		switch {
		case set == 0:
			return nil, fmt.Errorf("validation[%d]: empty rule (want must_exist, extensions or min/max)", i)
		case set > 1:
			return nil, fmt.Errorf("validation[%d]: a rule sets exactly one of must_exist, extensions or min/max", i)
		case r.MustExist != nil:
			if *r.MustExist {
				out = append(out, schema.MustExist())
			}
		case r.Extensions != nil:
			out = append(out, schema.Extensions(r.Extensions...))
		default:
			out = append(out, schema.Range(r.Min, r.Max))
		}
	}
	return out, nil
}

func texts(in []scalarText) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}
