package catalog

import (
	"encoding/json"

	"github.com/pcobb/galvan/internal/domain/component"
	"github.com/pcobb/galvan/internal/domain/geometry"
)

// orientationKey is the synthetic property the placement injects into every
// wrapped component's schema. Registry.Add rejects components that declare
// it themselves.
const orientationKey = "orientation"

// Placement is an instantiated, positioned-and-oriented wrapper around one
// component instance. It owns the component exclusively, carries a mutable
// position and orientation, and shares the immutable metadata of the
// registry entry it was created from.
//
// Property calls delegate to the wrapped component except for the synthetic
// "orientation" key, which the placement handles itself. Shape always
// returns oriented geometry.
type Placement struct {
	component   component.Component
	orientation geometry.Orientation
	x, y        int
	metadata    *Metadata
}

func newPlacement(c component.Component, metadata *Metadata) *Placement {
	return &Placement{
		component:   c,
		orientation: geometry.North,
		metadata:    metadata,
	}
}

// Metadata returns the shared catalog description of this placement's type.
func (p *Placement) Metadata() *Metadata {
	return p.metadata
}

// Position returns the placement's current position.
func (p *Placement) Position() (x, y int) {
	return p.x, p.y
}

// MoveTo sets the placement's position.
func (p *Placement) MoveTo(x, y int) {
	p.x = x
	p.y = y
}

// Orientation returns the placement's current orientation.
func (p *Placement) Orientation() geometry.Orientation {
	return p.orientation
}

// Schema returns the wrapped component's current schema plus the synthetic
// "orientation" entry: writable, a four-value enumeration of the rotation
// states, displayed as "Orientation".
func (p *Placement) Schema() component.Schema {
	s := p.component.Schema()
	out := make(component.Schema, len(s)+1)
	for k, d := range s {
		out[k] = d
	}
	out[orientationKey] = component.Descriptor{
		ReadOnly: false,
		Type:     component.EnumOf(geometry.Orientations()...),
		Name:     "Orientation",
	}
	return out
}

// SetProperty stores the orientation when name is "orientation", decoding
// value as one of the four states; a decode failure yields InvalidValue
// carrying the failure description. Every other name delegates verbatim to
// the wrapped component, returning its result unchanged.
func (p *Placement) SetProperty(name string, value json.RawMessage) error {
	if name != orientationKey {
		return p.component.SetProperty(name, value)
	}

	var o geometry.Orientation
	if err := json.Unmarshal(value, &o); err != nil {
		return component.ErrDecode(name, err)
	}
	if !o.IsValid() {
		return component.ErrInvalid(name, "expected one of North, East, South, West")
	}
	p.orientation = o
	return nil
}

// GetProperty encodes the current orientation for "orientation" and
// delegates every other name to the wrapped component.
func (p *Placement) GetProperty(name string) (json.RawMessage, bool) {
	if name != orientationKey {
		return p.component.GetProperty(name)
	}
	raw, err := json.Marshal(p.orientation)
	if err != nil {
		return nil, false
	}
	return raw, true
}

// Shape returns the wrapped component's raw shape passed through the
// rotation transform for the current orientation. Callers always observe
// oriented geometry.
func (p *Placement) Shape() geometry.Shape {
	return p.orientation.Rotate(p.component.Shape())
}

// Clone returns an independent copy of the placement: the component is
// deep-copied via Duplicate, position and orientation are copied, and the
// immutable metadata is shared. Supports editor copy/paste.
func (p *Placement) Clone() *Placement {
	return &Placement{
		component:   p.component.Duplicate(),
		orientation: p.orientation,
		x:           p.x,
		y:           p.y,
		metadata:    p.metadata,
	}
}
