package component

import (
	"encoding/json"
	"fmt"
)

// ReasonKind discriminates the ways a property access can fail.
type ReasonKind int

const (
	// ReasonUnknown means the name is not in the current schema.
	ReasonUnknown ReasonKind = iota
	// ReasonReadOnly means the property exists but cannot be written.
	ReasonReadOnly
	// ReasonInvalid means the value did not decode into the property's domain.
	ReasonInvalid
)

// Reason is the tagged failure reason carried by a PropertyError.
// Explanation is set only for ReasonInvalid.
type Reason struct {
	Kind        ReasonKind
	Explanation string
}

// MarshalJSON encodes the reason as a tagged value: "UnknownProperty",
// "ReadOnlyProperty", or {"InvalidValue": {"explanation": ...}}.
func (r Reason) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case ReasonUnknown:
		return json.Marshal("UnknownProperty")
	case ReasonReadOnly:
		return json.Marshal("ReadOnlyProperty")
	case ReasonInvalid:
		return json.Marshal(map[string]map[string]string{
			"InvalidValue": {"explanation": r.Explanation},
		})
	}
	return nil, fmt.Errorf("component: unknown reason kind %d", r.Kind)
}

// PropertyError reports a failed property access. It is an ordinary result
// value returned to the immediate caller, never a panic.
type PropertyError struct {
	Property string `json:"name"`
	Reason   Reason `json:"reason"`
}

func (e *PropertyError) Error() string {
	switch e.Reason.Kind {
	case ReasonReadOnly:
		return fmt.Sprintf("property %q is read-only", e.Property)
	case ReasonInvalid:
		return fmt.Sprintf("invalid value for property %q: %s", e.Property, e.Reason.Explanation)
	default:
		return fmt.Sprintf("unknown property %q", e.Property)
	}
}

// ErrUnknown reports a name absent from the current schema.
func ErrUnknown(name string) *PropertyError {
	return &PropertyError{Property: name, Reason: Reason{Kind: ReasonUnknown}}
}

// ErrReadOnly reports a write to a read-only property.
func ErrReadOnly(name string) *PropertyError {
	return &PropertyError{Property: name, Reason: Reason{Kind: ReasonReadOnly}}
}

// ErrInvalid reports a value rejected by the property's domain.
func ErrInvalid(name, explanation string) *PropertyError {
	return &PropertyError{Property: name, Reason: Reason{Kind: ReasonInvalid, Explanation: explanation}}
}

// ErrDecode wraps a JSON decode failure as an InvalidValue error.
func ErrDecode(name string, err error) *PropertyError {
	return ErrInvalid(name, err.Error())
}
