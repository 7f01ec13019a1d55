package geometry

import "fmt"

// Orientation is one of the four 90-degree rotation states. North is the
// identity and the default for newly placed components. Orientation is set
// directly rather than rotated incrementally.
type Orientation string

const (
	North Orientation = "North"
	East  Orientation = "East"
	South Orientation = "South"
	West  Orientation = "West"
)

// Orientations returns the four states in their canonical order.
func Orientations() []Orientation {
	return []Orientation{North, East, South, West}
}

// IsValid checks whether o is one of the four states.
func (o Orientation) IsValid() bool {
	switch o {
	case North, East, South, West:
		return true
	}
	return false
}

// String returns the string representation of the orientation.
func (o Orientation) String() string {
	return string(o)
}

// Next returns the orientation one quarter turn clockwise. Used by editors
// that cycle orientation with a single key.
func (o Orientation) Next() Orientation {
	switch o {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	default:
		return North
	}
}

// ParseOrientation converts a string to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	o := Orientation(s)
	if !o.IsValid() {
		return "", fmt.Errorf("invalid orientation %q, expected one of North, East, South, West", s)
	}
	return o, nil
}

// mapPoint remaps a pin coordinate into the rotated frame, where w and h are
// the extents of the already-swapped shape.
func (o Orientation) mapPoint(x, y, w, h int) (int, int) {
	switch o {
	case East:
		return w - y, x
	case South:
		return w - x, h - y
	case West:
		return y, h - x
	default:
		return x, y
	}
}

// Rotate returns shape transformed into this orientation. A quarter turn
// (East or West) swaps the footprint extents before pins are remapped.
// Pin names, bit widths, and the image reference pass through unchanged.
// The input shape is not modified.
func (o Orientation) Rotate(shape Shape) Shape {
	out := shape
	out.Pins = clonePins(shape.Pins)

	switch o {
	case East, West:
		out.Width, out.Height = shape.Height, shape.Width
	}

	for i := range out.Pins {
		out.Pins[i].X, out.Pins[i].Y = o.mapPoint(out.Pins[i].X, out.Pins[i].Y, out.Width, out.Height)
	}

	return out
}
