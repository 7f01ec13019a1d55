// Package component implements the domain layer for pluggable circuit
// component types.
//
// A component type is anything that can describe its own properties at
// runtime: it reports a Schema of typed value domains, answers property
// reads and writes with generic JSON values, exposes a raw geometric
// footprint, and can duplicate itself. The package also defines the value
// domains (bounded text, bounded integer, closed enumeration) and the
// recoverable PropertyError taxonomy shared by every implementation.
//
// The schema is state-dependent: a multi-input gate grows one
// "invert_input_N" entry per input, so implementations recompute it from
// current state on every call rather than caching it.
package component

import (
	"encoding/json"

	"github.com/pcobb/galvan/internal/domain/geometry"
)

// Component is the capability set every concrete circuit component type
// implements. Instances are single-writer: the surrounding editor serializes
// mutating calls, so implementations need no internal locking.
type Component interface {
	// Schema returns every property applicable in the current state.
	// It must be recomputed on each call, never cached.
	Schema() Schema

	// GetProperty returns the property's current value as generic JSON.
	// The second result is false when the name is not in the current schema.
	GetProperty(name string) (json.RawMessage, bool)

	// SetProperty validates, in order, that the name exists in the current
	// schema, is writable, and that value decodes into the domain's valid
	// representation. Any failure returns a *PropertyError and leaves the
	// instance's observable state exactly as before the call.
	SetProperty(name string, value json.RawMessage) error

	// Shape returns the raw, unoriented footprint as a pure function of
	// current state.
	Shape() geometry.Shape

	// Duplicate returns an independent deep copy. The copy and the original
	// share no mutable state.
	Duplicate() Component
}
