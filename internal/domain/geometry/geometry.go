// Package geometry implements the domain layer for component footprints.
//
// A Shape is the raw, unoriented 2D extent of a component plus its ordered
// connection points (pins). Orientation layers four-way rotation on top of
// any shape as a pure post-transform, so every component type gets rotation
// without shape-specific logic.
package geometry

// Pin is a named connection point, positioned relative to the shape origin
// before any orientation transform is applied.
type Pin struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Name string `json:"name"`
	Bits uint32 `json:"bits"`
}

// Shape is the raw footprint of a component: extent, pins, and the image
// used to draw it.
type Shape struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Pins   []Pin  `json:"pins"`
	Image  string `json:"image_name"`
}

// clonePins copies the pin slice so rotated shapes never alias the source.
func clonePins(pins []Pin) []Pin {
	if pins == nil {
		return nil
	}
	out := make([]Pin, len(pins))
	copy(out, pins)
	return out
}
