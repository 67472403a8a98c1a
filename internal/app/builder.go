package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/footprint-tools/cmdspec/internal/dispatch"
	"github.com/footprint-tools/cmdspec/internal/log"
	"github.com/footprint-tools/cmdspec/internal/parser"
	"github.com/footprint-tools/cmdspec/internal/registry"
	"github.com/footprint-tools/cmdspec/internal/schema"
	"github.com/footprint-tools/cmdspec/internal/schemafile"
	"github.com/footprint-tools/cmdspec/internal/suggest"
	"github.com/footprint-tools/cmdspec/internal/ui"
)

// ErrNoSchema is returned by Build when neither Schema nor SchemaFile was
// called.
var ErrNoSchema = errors.New("app: no schema")

// Builder assembles an App. Methods record the first problem and Build
// reports every one of them.
type Builder[C any] struct {
	ctx      C
	doc      *schema.Document
	handlers dispatch.Handlers[C]
	services *Services
	program  string
	errs     []error
}

// NewBuilder starts an App around the application context ctx.
func NewBuilder[C any](ctx C) *Builder[C] {
	return &Builder[C]{
		ctx:      ctx,
		handlers: dispatch.Handlers[C]{},
		program:  "cmdspec",
	}
}

// Schema uses an in-memory document.
func (b *Builder[C]) Schema(doc schema.Document) *Builder[C] {
	b.doc = &doc
	return b
}

// SchemaFile loads the document from path, picking the format from its
// extension.
func (b *Builder[C]) SchemaFile(path string) *Builder[C] {
	doc, err := schemafile.Load(path)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.doc = &doc
	return b
}

// SchemaBytes parses an embedded document.
func (b *Builder[C]) SchemaBytes(data []byte, format schemafile.Format, name string) *Builder[C] {
	doc, err := schemafile.Parse(data, format, name)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.doc = &doc
	return b
}

// Handler binds an implementation identifier. Binding the same identifier
// twice is an error.
func (b *Builder[C]) Handler(implementation string, h dispatch.HandlerFunc[C]) *Builder[C] {
	if _, ok := b.handlers[implementation]; ok {
		b.errs = append(b.errs, fmt.Errorf("app: handler %q bound twice", implementation))
		return b
	}
	b.handlers[implementation] = h
	return b
}

func (b *Builder[C]) Handlers(handlers dispatch.Handlers[C]) *Builder[C] {
	for impl, h := range handlers {
		b.Handler(impl, h)
	}
	return b
}

// Services sets logging, history, styling, output and settings. Without
// it Build uses NewTestServices on stdout.
func (b *Builder[C]) Services(s *Services) *Builder[C] {
	b.services = s
	return b
}

// Program names the binary in completion scripts.
func (b *Builder[C]) Program(name string) *Builder[C] {
	b.program = name
	return b
}

// Build checks the document, builds the registry and verifies handler
// bindings. Any failure here is a construction error.
func (b *Builder[C]) Build() (*App[C], error) {
	if b.doc == nil && len(b.errs) == 0 {
		b.errs = append(b.errs, ErrNoSchema)
	}
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}

	doc := *b.doc
	if err := schema.Check(doc); err != nil {
		return nil, err
	}

	reg, err := registry.Build(doc.Commands)
	if err != nil {
		return nil, err
	}

	services := b.services
	if services == nil {
		services = NewTestServices(ui.NewWriter(ui.WithPagerDisabled()), os.Stderr)
	}

	suggestions := suggest.Options{
		MaxDistance: services.Settings.SuggestMaxDistance,
		Limit:       services.Settings.SuggestLimit,
	}
	p := parser.New(reg, doc.GlobalOptions, parser.WithSuggestions(suggestions))

	d, err := dispatch.New(b.ctx, b.handlers, reg)
	if err != nil {
		return nil, err
	}

	a := &App[C]{
		doc:        doc,
		reg:        reg,
		parser:     p,
		dispatcher: d,
		services:   services,
		suggest:    suggestions,
		program:    b.program,
	}
	_, a.schemaHelp = reg.Resolve(helpCommand)

	log.Debug("app: built %q with %d commands", doc.Metadata.Prompt, reg.Len())
	return a, nil
}
