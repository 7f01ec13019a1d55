package component

import (
	"encoding/json"
	"fmt"
	"sort"
)

// ValueDomain describes the permissible value space of a single property.
// Exactly three kinds exist: bounded text, bounded integer, and closed
// enumeration. Domains are immutable once constructed.
//
// Each kind serializes as a tagged object keyed by its variant name
// ("Text", "Integer", "Enum") so a front-end property editor can render
// the right input widget without compile-time knowledge of the component.
type ValueDomain interface {
	// Check validates a raw JSON value against the domain. A non-nil error
	// carries a human-readable explanation suitable for InvalidValue.
	Check(raw json.RawMessage) error

	json.Marshaler

	isValueDomain()
}

// TextDomain bounds the length of a string property (inclusive).
type TextDomain struct {
	MinLen uint32 `json:"min_len"`
	MaxLen uint32 `json:"max_len"`
}

func (TextDomain) isValueDomain() {}

// MarshalJSON encodes the domain as {"Text": {"min_len": ..., "max_len": ...}}.
func (d TextDomain) MarshalJSON() ([]byte, error) {
	type plain TextDomain
	return json.Marshal(map[string]plain{"Text": plain(d)})
}

// Check verifies the raw value is a string within the length bounds.
func (d TextDomain) Check(raw json.RawMessage) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return fmt.Errorf("expected a string: %w", err)
	}
	n := uint32(len([]rune(s)))
	if n < d.MinLen || n > d.MaxLen {
		return fmt.Errorf("text length %d outside range [%d, %d]", n, d.MinLen, d.MaxLen)
	}
	return nil
}

// IntegerDomain bounds an unsigned integer property (inclusive).
type IntegerDomain struct {
	Min uint32 `json:"min"`
	Max uint32 `json:"max"`
}

func (IntegerDomain) isValueDomain() {}

// MarshalJSON encodes the domain as {"Integer": {"min": ..., "max": ...}}.
func (d IntegerDomain) MarshalJSON() ([]byte, error) {
	type plain IntegerDomain
	return json.Marshal(map[string]plain{"Integer": plain(d)})
}

// Check verifies the raw value is an unsigned integer within bounds.
func (d IntegerDomain) Check(raw json.RawMessage) error {
	var n uint32
	if err := json.Unmarshal(raw, &n); err != nil {
		return fmt.Errorf("expected an unsigned integer: %w", err)
	}
	if n < d.Min || n > d.Max {
		return fmt.Errorf("value %d outside range [%d, %d]", n, d.Min, d.Max)
	}
	return nil
}

// EnumDomain restricts a property to an ordered, closed set of string tokens.
type EnumDomain struct {
	Options []string `json:"options"`
}

func (EnumDomain) isValueDomain() {}

// MarshalJSON encodes the domain as {"Enum": {"options": [...]}}.
func (d EnumDomain) MarshalJSON() ([]byte, error) {
	type plain EnumDomain
	return json.Marshal(map[string]plain{"Enum": plain(d)})
}

// Check verifies the raw value is one of the allowed tokens.
func (d EnumDomain) Check(raw json.RawMessage) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return fmt.Errorf("expected a string token: %w", err)
	}
	for _, opt := range d.Options {
		if s == opt {
			return nil
		}
	}
	return fmt.Errorf("%q is not one of %v", s, d.Options)
}

// EnumOf builds an EnumDomain from an ordered list of values, each of which
// must JSON-serialize to a plain string token. A value that does not is a
// mis-declared closed value set on the caller's side and panics: this cannot
// be reached from user input and is caught by tests, not handled at runtime.
func EnumOf[T any](values ...T) EnumDomain {
	options := make([]string, len(values))
	for i, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			panic(fmt.Sprintf("component: enum value %v does not serialize: %v", v, err))
		}
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			panic(fmt.Sprintf("component: enum value %s did not serialize to a string", b))
		}
		options[i] = s
	}
	return EnumDomain{Options: options}
}

// Descriptor describes one property: its value domain, mutability, and the
// human-facing name shown by a property editor. Description is nil when the
// property has none; the interchange encoding always carries the key, as null.
type Descriptor struct {
	ReadOnly    bool        `json:"read_only"`
	Type        ValueDomain `json:"type_"`
	Name        string      `json:"name"`
	Description *string     `json:"description"`
}

// Schema maps property keys to their descriptors. Iteration order is the
// sorted key order; use Keys for deterministic traversal. JSON marshaling of
// a Go map already emits keys sorted, matching the interchange encoding.
type Schema map[string]Descriptor

// Keys returns the schema's property keys in sorted order.
func (s Schema) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
