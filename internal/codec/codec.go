// Package codec renders generated batches to interchange formats and parses
// externally supplied record files back into the domain model. The
// generator itself has no awareness of serialization; everything
// format-specific lives here.
package codec

import (
	"fmt"
	"io"

	"netsynth/internal/domain"
)

// Exporter writes a batch to an output stream in one format.
type Exporter interface {
	Export(batch *domain.Batch, w io.Writer) error
	Format() string
}

// Importer parses externally supplied record data into a batch.
type Importer interface {
	Parse(r io.Reader) (*domain.Batch, error)
	Format() string
}

// Formats lists the supported export format identifiers.
func Formats() []string {
	return []string{"csv", "json", "yaml", "xml"}
}

// NewExporter returns the exporter for a format identifier.
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "csv":
		return NewCSVCodec(), nil
	case "json":
		return NewJSONCodec(), nil
	case "yaml":
		return NewYAMLCodec(), nil
	case "xml":
		return NewXMLCodec(), nil
	}
	return nil, fmt.Errorf("unknown export format %q (supported: csv, json, yaml, xml)", format)
}
