package codec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"netsynth/internal/domain"
)

// YAMLCodec handles YAML import/export of batch envelopes.
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier.
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// Export writes the batch envelope as YAML.
func (c *YAMLCodec) Export(batch *domain.Batch, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(batch); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// Parse reads a batch envelope from YAML.
func (c *YAMLCodec) Parse(r io.Reader) (*domain.Batch, error) {
	var batch domain.Batch
	if err := yaml.NewDecoder(r).Decode(&batch); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &batch, nil
}
