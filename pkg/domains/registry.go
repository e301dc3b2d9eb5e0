package domains

import (
	"context"
	"fmt"
	"slices"

	"github.com/boundkit/boundkit/pkg/bounded"
)

// Registry resolves domain names to validated bounded domains. Definitions are
// loaded and validated once at construction; lookups afterwards are read-only
// and safe for concurrent use.
type Registry struct {
	domains map[string]bounded.Domain[int64]
}

// NewRegistry loads all definitions from the source and validates them.
// A definition with an empty name or min > max fails construction with
// ErrInvalidDefinition, so a registry in circulation only hands out domains
// that can construct valid values.
func NewRegistry(ctx context.Context, source Source) (*Registry, error) {
	defs, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}

	domains := make(map[string]bounded.Domain[int64], len(defs))
	for name, def := range defs {
		if name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrInvalidDefinition)
		}
		d, err := bounded.NewDomain(def.Min, def.Max)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidDefinition, name, err)
		}
		domains[name] = d
	}

	return &Registry{domains: domains}, nil
}

// Get returns the domain registered under name.
func (r *Registry) Get(name string) (bounded.Domain[int64], error) {
	d, ok := r.domains[name]
	if !ok {
		return bounded.Domain[int64]{}, fmt.Errorf("%w: %q", ErrDomainNotFound, name)
	}
	return d, nil
}

// New validates raw against the named domain and returns the resulting value.
func (r *Registry) New(name string, raw int64) (bounded.Value[int64], error) {
	d, err := r.Get(name)
	if err != nil {
		return bounded.Value[int64]{}, err
	}
	return d.New(raw)
}

// Names returns the sorted names of all registered domains.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.domains))
	for name := range r.domains {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
