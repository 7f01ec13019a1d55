package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pcobb/galvan/internal/domain/component"
	"github.com/pcobb/galvan/internal/domain/geometry"
)

// probe is a minimal component used to exercise the registry and placement.
type probe struct {
	label string
	width uint32
}

func newProbe() *probe {
	return &probe{label: "probe", width: 1}
}

func (p *probe) Schema() component.Schema {
	return component.Schema{
		"label": {
			Type: component.TextDomain{MinLen: 1, MaxLen: 16},
			Name: "Label",
		},
		"width": {
			Type: component.IntegerDomain{Min: 1, Max: 8},
			Name: "Width",
		},
		"kind": {
			ReadOnly: true,
			Type:     component.EnumOf("probe"),
			Name:     "Kind",
		},
	}
}

func (p *probe) GetProperty(name string) (json.RawMessage, bool) {
	switch name {
	case "label":
		b, _ := json.Marshal(p.label)
		return b, true
	case "width":
		b, _ := json.Marshal(p.width)
		return b, true
	case "kind":
		return json.RawMessage(`"probe"`), true
	}
	return nil, false
}

func (p *probe) SetProperty(name string, value json.RawMessage) error {
	desc, ok := p.Schema()[name]
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
	case "label":
		return json.Unmarshal(value, &p.label)
	case "width":
		return json.Unmarshal(value, &p.width)
	}
	return nil
}

func (p *probe) Shape() geometry.Shape {
	return geometry.Shape{
		Width:  2,
		Height: 1,
		Pins:   []geometry.Pin{{X: 0, Y: 0, Name: "in", Bits: p.width}},
		Image:  "probe",
	}
}

func (p *probe) Duplicate() component.Component {
	cp := *p
	return &cp
}

func probeRegistry(ids ...string) *Registry {
	r := NewRegistry()
	for _, id := range ids {
		r.Add(
			NewMetadata(id, "Probe "+id, "Test", "A probe"),
			func() component.Component { return newProbe() },
		)
	}
	return r
}

func TestRegistry_ListSortedByID(t *testing.T) {
	r := probeRegistry("zeta", "alpha", "mid")

	list := r.List()
	require.Len(t, list, 3)
	require.Equal(t, "alpha", list[0].ID)
	require.Equal(t, "mid", list[1].ID)
	require.Equal(t, "zeta", list[2].ID)
}

func TestRegistry_AddOverwritesSameID(t *testing.T) {
	r := probeRegistry("x")
	r.Add(
		NewMetadata("x", "Replacement", "Test", "newer"),
		func() component.Component { return newProbe() },
	)

	list := r.List()
	require.Len(t, list, 1)
	require.Equal(t, "Replacement", list[0].Name)
}

func TestRegistry_ExtendIncomingWins(t *testing.T) {
	a := probeRegistry("x", "only-a")
	b := NewRegistry()
	winner := NewMetadata("x", "From B", "Test", "b wins")
	b.Add(winner, func() component.Component { return newProbe() })

	a.Extend(b)

	list := a.List()
	require.Len(t, list, 2)

	p, err := a.Create("x")
	require.NoError(t, err)
	require.Same(t, winner, p.Metadata())
}

func TestRegistry_CreateUnknownID(t *testing.T) {
	r := probeRegistry("known")

	p, err := r.Create("missing_id")
	require.Nil(t, p)

	var missing *MissingComponentError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "missing_id", missing.ID)
	require.EqualError(t, err, `unknown component type "missing_id"`)
}

func TestRegistry_CreateDefaults(t *testing.T) {
	r := probeRegistry("p")

	placement, err := r.Create("p")
	require.NoError(t, err)

	x, y := placement.Position()
	require.Equal(t, 0, x)
	require.Equal(t, 0, y)
	require.Equal(t, geometry.North, placement.Orientation())
}

func TestRegistry_CreateSharesMetadata(t *testing.T) {
	r := probeRegistry("p")

	a, err := r.Create("p")
	require.NoError(t, err)
	b, err := r.Create("p")
	require.NoError(t, err)

	require.Same(t, a.Metadata(), b.Metadata(), "metadata is shared, not copied")
}

func TestRegistry_FactoriesProduceIndependentInstances(t *testing.T) {
	r := probeRegistry("p")

	a, err := r.Create("p")
	require.NoError(t, err)
	b, err := r.Create("p")
	require.NoError(t, err)

	require.NoError(t, a.SetProperty("label", json.RawMessage(`"changed"`)))

	got, ok := b.GetProperty("label")
	require.True(t, ok)
	require.JSONEq(t, `"probe"`, string(got), "instances must not share state")
}

func TestRegistry_OrientationKeyPresentForEveryID(t *testing.T) {
	r := probeRegistry("a", "b", "c")

	for _, meta := range r.List() {
		placement, err := r.Create(meta.ID)
		require.NoError(t, err)

		schema := placement.Schema()
		desc, ok := schema["orientation"]
		require.True(t, ok, "schema for %s must contain orientation", meta.ID)

		enum, ok := desc.Type.(component.EnumDomain)
		require.True(t, ok)
		require.Equal(t, []string{"North", "East", "South", "West"}, enum.Options)
	}
}

// reservedComponent declares the synthetic orientation key itself.
type reservedComponent struct{ probe }

func (c *reservedComponent) Schema() component.Schema {
	s := c.probe.Schema()
	s["orientation"] = component.Descriptor{Type: component.EnumOf("North"), Name: "Mine"}
	return s
}

func TestRegistry_AddRejectsReservedOrientationProperty(t *testing.T) {
	r := NewRegistry()

	require.Panics(t, func() {
		r.Add(
			NewMetadata("bad", "Bad", "Test", "collides with orientation"),
			func() component.Component { return &reservedComponent{} },
		)
	})
}
