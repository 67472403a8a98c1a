package dispatch

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/footprint-tools/cmdspec/internal/log"
	"github.com/footprint-tools/cmdspec/internal/parser"
	"github.com/footprint-tools/cmdspec/internal/registry"
)

// HandlerFunc runs one command against the application context.
type HandlerFunc[C any] func(ctx C, args parser.Args) error

// Handlers maps implementation identifiers to handlers.
type Handlers[C any] map[string]HandlerFunc[C]

// Dispatcher owns the application context and serialises every handler
// call against it.
type Dispatcher[C any] struct {
	mu       sync.Mutex
	ctx      C
	handlers Handlers[C]
}

// New checks that every command the registry marks required has a handler
// and takes ownership of ctx. Commands that are not required may stay
// unbound; dispatching them fails with HandlerNotRegistered.
func New[C any](ctx C, handlers Handlers[C], reg *registry.Registry) (*Dispatcher[C], error) {
	table := make(Handlers[C], len(handlers))
	for impl, h := range handlers {
		if h == nil {
			return nil, fmt.Errorf("dispatch: nil handler for implementation %q", impl)
		}
		table[impl] = h
	}

	var errs []error
	for _, cmd := range reg.Commands() {
		if _, ok := table[cmd.Implementation]; ok {
			continue
		}
		if cmd.Required {
			errs = append(errs, &Error{Kind: HandlerNotRegistered, Command: cmd.Name, Implementation: cmd.Implementation})
			continue
		}
		log.Warn("dispatch: command %q has no handler for %q", cmd.Name, cmd.Implementation)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &Dispatcher[C]{ctx: ctx, handlers: table}, nil
}

// Dispatch runs the invocation's handler while holding the context lock.
func (d *Dispatcher[C]) Dispatch(inv *parser.Invocation) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return Dispatch(inv, d.ctx, d.handlers)
}

// With runs fn against the context under the same lock handlers use.
func (d *Dispatcher[C]) With(fn func(ctx C) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return fn(d.ctx)
}

// Bound reports whether an implementation has a handler.
func (d *Dispatcher[C]) Bound(implementation string) bool {
	_, ok := d.handlers[implementation]
	return ok
}

// Dispatch looks up and runs the handler for inv. The caller guarantees
// exclusive access to ctx. Handler errors are returned unchanged and any
// state the handler changed before failing is kept.
func Dispatch[C any](inv *parser.Invocation, ctx C, handlers Handlers[C]) error {
	cmd := inv.Command
	h, ok := handlers[cmd.Implementation]
	if !ok {
		return &Error{Kind: HandlerNotRegistered, Command: cmd.Name, Implementation: cmd.Implementation}
	}

	log.Debug("dispatch: %s -> %s", cmd.Name, cmd.Implementation)
	err := h(ctx, inv.Args)

	var de *Error
	if errors.As(err, &de) && de.Kind == ContextTypeMismatch && de.Command == "" {
		de.Command = cmd.Name
		de.Implementation = cmd.Implementation
	}
	if err != nil {
		log.Debug("dispatch: %s failed: %v", cmd.Name, err)
	}
	return err
}

// As recovers a concrete view of a dynamically typed context.
func As[T any](ctx any) (T, error) {
	if t, ok := ctx.(T); ok {
		return t, nil
	}
	var zero T
	return zero, &Error{
		Kind: ContextTypeMismatch,
		Want: reflect.TypeOf((*T)(nil)).Elem().String(),
		Got:  fmt.Sprintf("%T", ctx),
	}
}

// Typed adapts a handler for a concrete context type to a table over any.
func Typed[T any](h HandlerFunc[T]) HandlerFunc[any] {
	return func(ctx any, args parser.Args) error {
		t, err := As[T](ctx)
		if err != nil {
			return err
		}
		return h(t, args)
	}
}
