// Package catalog implements the domain layer for the component catalog.
//
// A Registry maps stable string identifiers to component factories plus
// static Metadata, so a host editor can list the available component types
// and instantiate them by id. Instantiation yields a Placement: one owned
// component instance with a position and a four-way orientation layered on
// top of the component's raw geometry.
//
// Registries are built once, sequentially, with Add and Extend, and are
// read-only afterward; List and Create may then be called concurrently.
package catalog

// Metadata is the static catalog description of a registered component type.
// It is created once at registration time and shared read-only by every
// placement instantiated from that entry; it is never mutated afterward.
type Metadata struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// NewMetadata creates the catalog description for one component type.
func NewMetadata(id, name, category, description string) *Metadata {
	return &Metadata{
		ID:          id,
		Name:        name,
		Category:    category,
		Description: description,
	}
}
