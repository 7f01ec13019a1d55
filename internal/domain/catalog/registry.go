package catalog

import (
	"fmt"
	"sort"

	"github.com/pcobb/galvan/internal/domain/component"
)

// Factory produces a fresh component instance. Factories must be
// independently callable any number of times, each call yielding an
// instance that shares no mutable state with any other, and must be safe
// to invoke concurrently.
type Factory func() component.Component

// entry pairs the shared metadata of a component type with its factory.
type entry struct {
	metadata *Metadata
	factory  Factory
}

// MissingComponentError reports a Create call with an unregistered id.
type MissingComponentError struct {
	ID string
}

func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("unknown component type %q", e.ID)
}

// Registry is an identifier-keyed table of component types. The zero value
// is not usable; construct with NewRegistry.
type Registry struct {
	entries map[string]entry
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]entry),
	}
}

// Add registers one component type keyed by its metadata id, overwriting any
// existing entry with the same id. The factory's components must not declare
// a property named "orientation": the placement wrapper injects that key, and
// a colliding declaration is a programmer contract violation, so Add probes
// one instance and panics on collision rather than failing at editing time.
func (r *Registry) Add(metadata *Metadata, factory Factory) {
	probe := factory()
	if _, ok := probe.Schema()[orientationKey]; ok {
		panic(fmt.Sprintf("catalog: component %q declares reserved property %q", metadata.ID, orientationKey))
	}
	r.entries[metadata.ID] = entry{metadata: metadata, factory: factory}
}

// Extend merges another registry's entries into this one. On id collision
// the incoming entry wins.
func (r *Registry) Extend(other *Registry) {
	for id, e := range other.entries {
		r.entries[id] = e
	}
}

// List returns the metadata of every registered component type in id-sorted
// order. The returned values are the shared metadata references.
func (r *Registry) List() []*Metadata {
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*Metadata, len(ids))
	for i, id := range ids {
		out[i] = r.entries[id].metadata
	}
	return out
}

// Create instantiates the component type registered under id and wraps it in
// a new placement at (0,0) facing North, bound to the entry's shared
// metadata. Returns a *MissingComponentError when id is not registered.
func (r *Registry) Create(id string) (*Placement, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, &MissingComponentError{ID: id}
	}
	return newPlacement(e.factory(), e.metadata), nil
}
