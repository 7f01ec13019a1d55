// Package gates implements the built-in logic gate component library.
//
// All gates share one n-ary implementation parameterized by kind (And, Or,
// Xor, Parity). The property schema is structural: the number of
// invert_input_N entries tracks the current input count, so shrinking
// num_inputs removes trailing entries from the schema.
package gates

import (
	"encoding/json"
	"fmt"

	"github.com/pcobb/galvan/internal/domain/component"
	"github.com/pcobb/galvan/internal/domain/geometry"
)

// Category is the catalog category every gate registers under.
const Category = "Gates"

const (
	minInputs = 2
	maxInputs = 32
	minBits   = 1
	maxBits   = 256
)

type gateKind int

const (
	kindAnd gateKind = iota
	kindOr
	kindXor
	kindParity
)

// imageName returns the image drawn for the gate; inverting the output
// selects the negated variant.
func (k gateKind) imageName(inverted bool) string {
	switch k {
	case kindAnd:
		if inverted {
			return "nand_gate"
		}
		return "and_gate"
	case kindOr:
		if inverted {
			return "nor_gate"
		}
		return "or_gate"
	case kindXor:
		if inverted {
			return "xnor_gate"
		}
		return "xor_gate"
	default:
		if inverted {
			return "even_parity"
		}
		return "odd_parity"
	}
}

// yesNo is the boolean-valued enumeration surfaced to property editors.
type yesNo string

const (
	no  yesNo = "No"
	yes yesNo = "Yes"
)

func yesNoOf(v bool) yesNo {
	if v {
		return yes
	}
	return no
}

func (v yesNo) bool() bool {
	return v == yes
}

func yesNoDomain() component.EnumDomain {
	return component.EnumOf(no, yes)
}

// NaryGate is a logic gate with a configurable number of inputs, data width,
// and per-input inversion.
type NaryGate struct {
	kind         gateKind
	invertOutput bool
	numInputs    uint32
	numBits      uint32
	invertInputs []bool
}

func newNary(kind gateKind) *NaryGate {
	return &NaryGate{
		kind:         kind,
		numInputs:    minInputs,
		numBits:      minBits,
		invertInputs: make([]bool, minInputs),
	}
}

// NewAnd returns an AND gate with default configuration.
func NewAnd() *NaryGate { return newNary(kindAnd) }

// NewOr returns an OR gate with default configuration.
func NewOr() *NaryGate { return newNary(kindOr) }

// NewXor returns an XOR gate with default configuration.
func NewXor() *NaryGate { return newNary(kindXor) }

// NewParity returns an odd-parity gate with default configuration.
func NewParity() *NaryGate { return newNary(kindParity) }

func invertInputKey(i uint32) string {
	return fmt.Sprintf("invert_input_%d", i)
}

// Schema reports the gate's current properties. One invert_input_N entry
// exists per current input.
func (g *NaryGate) Schema() component.Schema {
	s := component.Schema{
		"invert_output": {
			Type: yesNoDomain(),
			Name: "Invert output",
		},
		"num_inputs": {
			Type: component.IntegerDomain{Min: minInputs, Max: maxInputs},
			Name: "Number of inputs",
		},
		"num_bits": {
			Type: component.IntegerDomain{Min: minBits, Max: maxBits},
			Name: "Data bits",
		},
	}

	for i := uint32(0); i < g.numInputs; i++ {
		s[invertInputKey(i)] = component.Descriptor{
			Type: yesNoDomain(),
			Name: fmt.Sprintf("Invert input %d", i),
		}
	}

	return s
}

// SetProperty validates against the current schema and applies the change.
// Resizing num_inputs preserves existing inversion flags and zero-fills new
// inputs; properties for removed inputs become unknown.
func (g *NaryGate) SetProperty(name string, value json.RawMessage) error {
	desc, ok := g.Schema()[name]
	if !ok {
		return component.ErrUnknown(name)
	}
	if desc.ReadOnly {
		return component.ErrReadOnly(name)
	}
	if err := desc.Type.Check(value); err != nil {
		return component.ErrInvalid(name, err.Error())
	}

	switch name {
	case "invert_output":
		var v yesNo
		if err := json.Unmarshal(value, &v); err != nil {
			return component.ErrDecode(name, err)
		}
		g.invertOutput = v.bool()
	case "num_inputs":
		var n uint32
		if err := json.Unmarshal(value, &n); err != nil {
			return component.ErrDecode(name, err)
		}
		g.numInputs = n
		resized := make([]bool, n)
		copy(resized, g.invertInputs)
		g.invertInputs = resized
	case "num_bits":
		var n uint32
		if err := json.Unmarshal(value, &n); err != nil {
			return component.ErrDecode(name, err)
		}
		g.numBits = n
	default:
		var i uint32
		if _, err := fmt.Sscanf(name, "invert_input_%d", &i); err != nil || i >= g.numInputs {
			return component.ErrUnknown(name)
		}
		var v yesNo
		if err := json.Unmarshal(value, &v); err != nil {
			return component.ErrDecode(name, err)
		}
		g.invertInputs[i] = v.bool()
	}

	return nil
}

// GetProperty returns the current value of a property, or false when the
// name is not in the current schema.
func (g *NaryGate) GetProperty(name string) (json.RawMessage, bool) {
	switch name {
	case "invert_output":
		return mustJSON(yesNoOf(g.invertOutput)), true
	case "num_inputs":
		return mustJSON(g.numInputs), true
	case "num_bits":
		return mustJSON(g.numBits), true
	default:
		var i uint32
		if _, err := fmt.Sscanf(name, "invert_input_%d", &i); err != nil || i >= g.numInputs {
			return nil, false
		}
		if name != invertInputKey(i) {
			return nil, false
		}
		return mustJSON(yesNoOf(g.invertInputs[i])), true
	}
}

// Shape returns the gate's raw footprint: a 3x3 extent drawn with the
// kind-and-inversion image, with no pins of its own.
func (g *NaryGate) Shape() geometry.Shape {
	return geometry.Shape{
		Width:  3,
		Height: 3,
		Pins:   []geometry.Pin{},
		Image:  g.kind.imageName(g.invertOutput),
	}
}

// Duplicate returns an independent deep copy of the gate.
func (g *NaryGate) Duplicate() component.Component {
	cp := *g
	cp.invertInputs = make([]bool, len(g.invertInputs))
	copy(cp.invertInputs, g.invertInputs)
	return &cp
}

// mustJSON marshals values that cannot fail (strings and integers).
func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
