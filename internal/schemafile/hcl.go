package schemafile

import (
	"github.com/hashicorp/hcl/v2/hclsimple"
)

// HCL documents use labelled blocks instead of lists:
//
//	metadata { prompt = "calc" }
//	global_option "verbose" { short = "v" type = "bool" }
//	command "add" {
//	  implementation = "add"
//	  argument "a" { type = "float" required = true }
//	  option "precision" {
//	    long = "precision"
//	    type = "integer"
//	    validation { min = 0 }
//	  }
//	}
type hclDocument struct {
	Metadata      *hclMetadata `hcl:"metadata,block"`
	Commands      []hclCommand `hcl:"command,block"`
	GlobalOptions []hclOption  `hcl:"global_option,block"`
}

type hclMetadata struct {
	Version      string  `hcl:"version,optional"`
	Prompt       string  `hcl:"prompt,optional"`
	PromptSuffix *string `hcl:"prompt_suffix,optional"`
}

type hclCommand struct {
	Name           string        `hcl:"name,label"`
	Aliases        []string      `hcl:"aliases,optional"`
	Description    string        `hcl:"description,optional"`
	Required       bool          `hcl:"required,optional"`
	Implementation string        `hcl:"implementation"`
	Arguments      []hclArgument `hcl:"argument,block"`
	Options        []hclOption   `hcl:"option,block"`
}

type hclArgument struct {
	Name        string    `hcl:"name,label"`
	Type        string    `hcl:"type,optional"`
	Required    bool      `hcl:"required,optional"`
	Description string    `hcl:"description,optional"`
	Default     *string   `hcl:"default,optional"`
	Choices     []string  `hcl:"choices,optional"`
	Validation  []hclRule `hcl:"validation,block"`
}

type hclOption struct {
	Name        string    `hcl:"name,label"`
	Short       string    `hcl:"short,optional"`
	Long        string    `hcl:"long,optional"`
	Type        string    `hcl:"type,optional"`
	Required    bool      `hcl:"required,optional"`
	Description string    `hcl:"description,optional"`
	Default     *string   `hcl:"default,optional"`
	Choices     []string  `hcl:"choices,optional"`
	Validation  []hclRule `hcl:"validation,block"`
}

type hclRule struct {
	MustExist  *bool    `hcl:"must_exist,optional"`
	Extensions []string `hcl:"extensions,optional"`
	Min        *float64 `hcl:"min,optional"`
	Max        *float64 `hcl:"max,optional"`
}

func decodeHCL(data []byte, name string) (*fileDocument, error) {
	var h hclDocument
	if err := hclsimple.Decode(hclFilename(name), data, nil, &h); err != nil {
		return nil, err
	}

	doc := &fileDocument{}
	if h.Metadata != nil {
		doc.Metadata = fileMetadata{
			Version:      h.Metadata.Version,
			Prompt:       h.Metadata.Prompt,
			PromptSuffix: h.Metadata.PromptSuffix,
		}
	}
	for _, o := range h.GlobalOptions {
		doc.GlobalOptions = append(doc.GlobalOptions, o.file())
	}
	for _, c := range h.Commands {
		fc := fileCommand{
			Name:           c.Name,
			Aliases:        c.Aliases,
			Description:    c.Description,
			Required:       c.Required,
			Implementation: c.Implementation,
		}
		for _, a := range c.Arguments {
			fc.Arguments = append(fc.Arguments, fileArgument{
				Name:        a.Name,
				Type:        a.Type,
				Required:    a.Required,
				Description: a.Description,
				Default:     scalarPtr(a.Default),
				Choices:     scalars(a.Choices),
				Validation:  fileRules(a.Validation),
			})
		}
		for _, o := range c.Options {
			fc.Options = append(fc.Options, o.file())
		}
		doc.Commands = append(doc.Commands, fc)
	}
	return doc, nil
}

// hclsimple picks native or JSON syntax from the file suffix.
func hclFilename(name string) string {
	if len(name) >= 4 && name[len(name)-4:] == ".hcl" {
		return name
	}
	return name + ".hcl"
}

func (o hclOption) file() fileOption {
	return fileOption{
		Name:        o.Name,
		Short:       o.Short,
		Long:        o.Long,
		Type:        o.Type,
		Required:    o.Required,
		Description: o.Description,
		Default:     scalarPtr(o.Default),
		Choices:     scalars(o.Choices),
		Validation:  fileRules(o.Validation),
	}
}

func fileRules(in []hclRule) []fileRule {
	var out []fileRule
	for _, r := range in {
		out = append(out, fileRule(r))
	}
	return out
}

func scalarPtr(s *string) *scalarText {
	if s == nil {
		return nil
	}
	v := scalarText(*s)
	return &v
}

func scalars(in []string) []scalarText {
	if in == nil {
		return nil
	}
	out := make([]scalarText, len(in))
	for i, s := range in {
		out[i] = scalarText(s)
	}
	return out
}
