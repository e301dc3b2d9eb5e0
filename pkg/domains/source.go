package domains

import (
	"context"
	"fmt"
	"io"
	"maps"
	"sync"

	"gopkg.in/yaml.v3"
)

// Source provides domain definitions keyed by name. Implementations must be
// safe for concurrent use.
type Source interface {
	Load(ctx context.Context) (map[string]Def, error)
}

// inMemSource implements Source using an in-memory definition map.
type inMemSource struct {
	mu   sync.RWMutex
	defs map[string]Def
}

// NewInMemSource returns an in-memory Source with a copy of the given definitions.
func NewInMemSource(defs map[string]Def) Source {
	return &inMemSource{
		defs: maps.Clone(defs),
	}
}

// Load returns a copy of all definitions from memory.
func (s *inMemSource) Load(ctx context.Context) (map[string]Def, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.defs), nil
}

// yamlSource implements Source by decoding a YAML document once and serving
// the decoded definitions from memory afterwards.
type yamlSource struct {
	once sync.Once
	r    io.Reader
	defs map[string]Def
	err  error
}

// NewYAMLSource returns a Source that decodes definitions from a YAML document:
//
//	guess:
//	  min: 1
//	  max: 100
//	  description: guessing game range
//	percentage:
//	  min: 0
//	  max: 100
//
// The reader is consumed on the first Load call; later calls return the same
// decoded definitions.
func NewYAMLSource(r io.Reader) Source {
	return &yamlSource{r: r}
}

// Load decodes the YAML document on first use and returns a copy of the definitions.
func (s *yamlSource) Load(ctx context.Context) (map[string]Def, error) {
	s.once.Do(func() {
		data, err := io.ReadAll(s.r)
		if err != nil {
			s.err = fmt.Errorf("%w: %w", ErrFailedToLoadDefinitions, err)
			return
		}

		var defs map[string]Def
		if err := yaml.Unmarshal(data, &defs); err != nil {
			s.err = fmt.Errorf("%w: %w", ErrFailedToLoadDefinitions, err)
			return
		}
		s.defs = defs
	})

	if s.err != nil {
		return nil, s.err
	}
	return maps.Clone(s.defs), nil
}
