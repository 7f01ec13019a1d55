package presentation

import (
	"encoding/json"
	"io"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatCatalog formats a catalog listing as JSON
func (f *Formatter) FormatCatalog(entries []CatalogEntry) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(entries)
}

// FormatDetail formats a component detail view as JSON
func (f *Formatter) FormatDetail(detail ComponentDetail) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(detail)
}
