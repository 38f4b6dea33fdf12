// Package registry holds the immutable persona registry. Personas are
// validated once at construction (account references, amount ranges,
// probabilities), so generation runs never start on a broken profile and
// concurrent generation across personas needs no locking.
package registry

import (
	"fmt"
	"sort"

	"github.com/finpersona/seedgen/internal/domain"
)

// Registry is a read-only mapping from persona name to persona.
type Registry struct {
	personas map[string]*domain.Persona
}

// New builds a registry from the given personas, validating each and
// rejecting duplicate names.
func New(personas ...*domain.Persona) (*Registry, error) {
	byName := make(map[string]*domain.Persona, len(personas))
	for _, p := range personas {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("register persona: %w", err)
		}
		if _, exists := byName[p.Name]; exists {
			return nil, fmt.Errorf("duplicate persona name %q", p.Name)
		}
		byName[p.Name] = p
	}
	return &Registry{personas: byName}, nil
}

// Lookup returns the persona registered under name.
// Returns ErrUnknownPersona when no such persona exists.
func (r *Registry) Lookup(name string) (*domain.Persona, error) {
	p, ok := r.personas[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPersona, name)
	}
	return p, nil
}

// Names returns all registered persona names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.personas))
	for name := range r.personas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns a registry preloaded with the shipped persona
// definitions.
func Builtin() (*Registry, error) {
	return New(bikeshStudent(), rohanSoftwareDev(), priyaBankManager())
}
