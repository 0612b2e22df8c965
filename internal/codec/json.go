package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"netsynth/internal/domain"
)

// JSONCodec handles JSON import/export of batch envelopes.
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier.
func (c *JSONCodec) Format() string {
	return "json"
}

// Export writes the batch envelope as indented JSON.
func (c *JSONCodec) Export(batch *domain.Batch, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(batch); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// Parse reads a batch envelope from JSON.
func (c *JSONCodec) Parse(r io.Reader) (*domain.Batch, error) {
	var batch domain.Batch
	if err := json.NewDecoder(r).Decode(&batch); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return &batch, nil
}
