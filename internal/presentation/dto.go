package presentation

import (
	"encoding/json"

	"github.com/pcobb/galvan/internal/domain/catalog"
	"github.com/pcobb/galvan/internal/domain/component"
	"github.com/pcobb/galvan/internal/domain/geometry"
)

// CatalogEntry represents one registered component type for presentation.
type CatalogEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// FromMetadata converts catalog metadata to a DTO.
func FromMetadata(meta *catalog.Metadata) CatalogEntry {
	return CatalogEntry{
		ID:          meta.ID,
		Name:        meta.Name,
		Category:    meta.Category,
		Description: meta.Description,
	}
}

// FromCatalog converts a registry listing to DTOs, preserving its id order.
func FromCatalog(reg *catalog.Registry) []CatalogEntry {
	list := reg.List()
	out := make([]CatalogEntry, len(list))
	for i, meta := range list {
		out[i] = FromMetadata(meta)
	}
	return out
}

// ComponentDetail is the full interchange view of one placement: its type
// metadata, the current property schema, every current value, and the
// oriented shape.
type ComponentDetail struct {
	Metadata CatalogEntry               `json:"metadata"`
	Schema   component.Schema           `json:"schema"`
	Values   map[string]json.RawMessage `json:"values"`
	Shape    geometry.Shape             `json:"shape"`
}

// FromPlacement assembles the detail view of a placement. Values are read
// through the placement so the synthetic orientation property is included.
func FromPlacement(p *catalog.Placement) ComponentDetail {
	schema := p.Schema()
	values := make(map[string]json.RawMessage, len(schema))
	for _, key := range schema.Keys() {
		if raw, ok := p.GetProperty(key); ok {
			values[key] = raw
		}
	}
	return ComponentDetail{
		Metadata: FromMetadata(p.Metadata()),
		Schema:   schema,
		Values:   values,
		Shape:    p.Shape(),
	}
}
