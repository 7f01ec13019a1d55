package presentation

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pcobb/galvan/internal/domain/gates"
)

func TestFromCatalog_PreservesIDOrder(t *testing.T) {
	entries := FromCatalog(gates.Catalog())

	require.Len(t, entries, 4)
	require.Equal(t, "and_gate", entries[0].ID)
	require.Equal(t, "AND Gate", entries[0].Name)
	require.Equal(t, "Gates", entries[0].Category)
}

func TestFormatCatalog_Encoding(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)

	require.NoError(t, f.FormatCatalog([]CatalogEntry{{
		ID:          "or_gate",
		Name:        "OR Gate",
		Category:    "Gates",
		Description: "Logical OR gate",
	}}))

	require.JSONEq(t,
		`[{"id":"or_gate","name":"OR Gate","category":"Gates","description":"Logical OR gate"}]`,
		buf.String())
}

func TestFromPlacement_Detail(t *testing.T) {
	placement, err := gates.Catalog().Create("or_gate")
	require.NoError(t, err)
	require.NoError(t, placement.SetProperty("orientation", json.RawMessage(`"East"`)))

	detail := FromPlacement(placement)

	require.Equal(t, "or_gate", detail.Metadata.ID)
	require.JSONEq(t, `"East"`, string(detail.Values["orientation"]))
	require.JSONEq(t, `2`, string(detail.Values["num_inputs"]))
	require.Contains(t, detail.Schema, "invert_input_0")
	require.Equal(t, "or_gate", detail.Shape.Image)
}

func TestFormatDetail_SchemaInterchange(t *testing.T) {
	placement, err := gates.Catalog().Create("or_gate")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf).FormatDetail(FromPlacement(placement)))

	var decoded struct {
		Schema map[string]struct {
			ReadOnly bool                       `json:"read_only"`
			Type     map[string]json.RawMessage `json:"type_"`
			Name     string                     `json:"name"`
		} `json:"schema"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	num := decoded.Schema["num_inputs"]
	require.False(t, num.ReadOnly)
	require.Equal(t, "Number of inputs", num.Name)
	require.JSONEq(t, `{"min":2,"max":32}`, string(num.Type["Integer"]))

	orient := decoded.Schema["orientation"]
	require.JSONEq(t, `{"options":["North","East","South","West"]}`, string(orient.Type["Enum"]))
}
