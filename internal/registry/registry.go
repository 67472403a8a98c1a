package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/footprint-tools/cmdspec/internal/log"
	"github.com/footprint-tools/cmdspec/internal/schema"
)

// Registry resolves command names and aliases to their specs. It is
// immutable once built and safe for concurrent reads.
type Registry struct {
	commands map[string]*schema.CommandSpec
	aliases  map[string]string
	order    []string
}

// DuplicateAliasError is returned by Build when a name or alias is
// claimed twice. First and Second name the commands that collide; they are
// equal when a command repeats its own alias.
type DuplicateAliasError struct {
	Alias  string
	First  string
	Second string
}

func (e *DuplicateAliasError) Error() string {
	if e.First == e.Second {
		return fmt.Sprintf("duplicate alias %q in command %q", e.Alias, e.First)
	}
	return fmt.Sprintf("duplicate alias %q: claimed by both %q and %q", e.Alias, e.First, e.Second)
}

// InvalidNameError is returned by Build for an empty name or alias, or one
// containing whitespace.
type InvalidNameError struct {
	Command string
	Name    string
}

func (e *InvalidNameError) Error() string {
	if e.Command == "" || e.Command == e.Name {
		return fmt.Sprintf("invalid command name %q", e.Name)
	}
	return fmt.Sprintf("invalid alias %q for command %q", e.Name, e.Command)
}

// Build indexes commands by name and alias. The specs are copied, so later
// changes to the input never reach the registry.
func Build(commands []schema.CommandSpec) (*Registry, error) {
	r := &Registry{
		commands: make(map[string]*schema.CommandSpec, len(commands)),
		aliases:  make(map[string]string, len(commands)),
		order:    make([]string, 0, len(commands)),
	}

	for _, c := range commands {
		if !validName(c.Name) {
			return nil, &InvalidNameError{Name: c.Name}
		}
		if err := r.claim(c.Name, c.Name); err != nil {
			return nil, err
		}
		for _, alias := range c.Aliases {
			if !validName(alias) {
				return nil, &InvalidNameError{Command: c.Name, Name: alias}
			}
			if err := r.claim(alias, c.Name); err != nil {
				return nil, err
			}
		}

		spec := c.Clone()
		r.commands[c.Name] = &spec
		r.order = append(r.order, c.Name)
	}

	log.Debug("registry: built with %d commands and %d names", len(r.commands), len(r.aliases))
	return r, nil
}

func (r *Registry) claim(alias, command string) error {
	if owner, ok := r.aliases[alias]; ok {
		return &DuplicateAliasError{Alias: alias, First: owner, Second: command}
	}
	r.aliases[alias] = command
	return nil
}

func validName(s string) bool {
	return s != "" && !strings.ContainsAny(s, " \t\r\n")
}

// Resolve returns the command a name or alias refers to.
func (r *Registry) Resolve(token string) (*schema.CommandSpec, bool) {
	name, ok := r.aliases[token]
	if !ok {
		return nil, false
	}
	spec, ok := r.commands[name]
	return spec, ok
}

// Lookup returns a command by its primary name only.
func (r *Registry) Lookup(name string) (*schema.CommandSpec, bool) {
	spec, ok := r.commands[name]
	return spec, ok
}

// Names returns every resolvable token, names and aliases, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.aliases))
	for alias := range r.aliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}

// Commands returns the specs in declaration order.
func (r *Registry) Commands() []*schema.CommandSpec {
	out := make([]*schema.CommandSpec, len(r.order))
	for i, name := range r.order {
		out[i] = r.commands[name]
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.commands)
}
