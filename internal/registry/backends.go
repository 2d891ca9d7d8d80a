// Package registry holds the name-keyed stores of the system: backend
// strategy pairs, experimental setups and robots. All three enforce strict
// insert-if-absent semantics; silently overwriting a registered entry is a
// likely source of hard-to-diagnose experiment pollution.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/kinesra/simscene/api/schemas"
)

// Backend bundles the two strategy implementations a simulation package
// contributes. Both must be non-nil.
type Backend struct {
	Construction schemas.ConstructionStrategy
	Manipulation schemas.ManipulationStrategy
}

// Backends maps package names to their strategy pair. Registration happens
// once at startup; this replaces the original design of loading strategy
// classes from file paths at runtime.
type Backends struct {
	mu     sync.Mutex
	byName map[string]Backend
}

// NewBackends returns an empty backend registry.
func NewBackends() *Backends {
	return &Backends{byName: make(map[string]Backend)}
}

// Register adds a backend under the given package name. Re-registering a
// name fails.
func (r *Backends) Register(name string, backend Backend) error {
	if backend.Construction == nil || backend.Manipulation == nil {
		return fmt.Errorf("%w: backend %q must provide both construction and manipulation strategies", schemas.ErrValidation, name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("%w: a backend is already registered under %q", schemas.ErrValidation, name)
	}
	r.byName[name] = backend
	return nil
}

// Lookup returns the backend registered under name.
func (r *Backends) Lookup(name string) (Backend, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	backend, ok := r.byName[name]
	if !ok {
		return Backend{}, fmt.Errorf("%w: no backend registered under %q", schemas.ErrNotFound, name)
	}
	return backend, nil
}

// Names lists the registered package names, sorted.
func (r *Backends) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
