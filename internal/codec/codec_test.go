package codec

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestNewExporter(t *testing.T) {
	for _, format := range Formats() {
		exp, err := NewExporter(format)
		if err != nil {
			t.Errorf("NewExporter(%q) failed: %v", format, err)
			continue
		}
		if exp.Format() != format {
			t.Errorf("NewExporter(%q).Format() = %q", format, exp.Format())
		}
	}

	if _, err := NewExporter("toml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	batch := vlanBatch(t)
	codec := NewJSONCodec()

	var buf bytes.Buffer
	if err := codec.Export(batch, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"egress_assignment": 1`) {
		t.Errorf("unexpected output:\n%s", buf.String())
	}

	parsed, err := codec.Parse(&buf)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !reflect.DeepEqual(batch, parsed) {
		t.Errorf("round-trip mismatch:\nwant %+v\ngot  %+v", batch, parsed)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	batch := vlanBatch(t)
	codec := NewYAMLCodec()

	var buf bytes.Buffer
	if err := codec.Export(batch, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.Contains(buf.String(), "kind: vlan") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}

	parsed, err := codec.Parse(&buf)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !reflect.DeepEqual(batch, parsed) {
		t.Errorf("round-trip mismatch:\nwant %+v\ngot  %+v", batch, parsed)
	}
}
