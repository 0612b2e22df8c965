package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"netsynth/internal/domain"
)

func TestXMLExportVLANs(t *testing.T) {
	batch := vlanBatch(t)

	var buf bytes.Buffer
	if err := NewXMLCodec().Export(batch, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	out := buf.String()

	// The XML view carries the derived addressing, not just raw fields.
	for _, want := range []string{
		`<network-config kind="vlan">`,
		`<vlan id="100">`,
		"<network>10.1.2.0/24</network>",
		"<gateway>10.1.2.1</gateway>",
		`<dhcp-range start="10.1.2.100" end="10.1.2.200"/>`,
		"<gateway>192.168.50.1</gateway>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestXMLExportFailsOnUnderivableNetwork(t *testing.T) {
	v, err := domain.NewVLAN(100, "legacy-segment", "Imported VLAN", 1)
	if err != nil {
		t.Fatalf("NewVLAN failed: %v", err)
	}
	batch := &domain.Batch{Kind: domain.KindVLAN, VLANs: []*domain.VLAN{v}}

	err = NewXMLCodec().Export(batch, &bytes.Buffer{})
	var derr *domain.NetworkDerivationError
	if !errors.As(err, &derr) {
		t.Fatalf("expected NetworkDerivationError, got %v", err)
	}
}

func TestXMLExportOtherKinds(t *testing.T) {
	mapping, err := domain.NewNATMapping("Web-Forward", domain.ProtocolTCP, 8080, "192.168.1.50", 80)
	if err != nil {
		t.Fatalf("NewNATMapping failed: %v", err)
	}
	tunnel, err := domain.NewVPNTunnel("Branch-East", "10.1.0.0/24", "10.2.0.0/24", "203.0.113.7", "tun0")
	if err != nil {
		t.Fatalf("NewVPNTunnel failed: %v", err)
	}

	t.Run("nat", func(t *testing.T) {
		var buf bytes.Buffer
		batch := &domain.Batch{Kind: domain.KindNAT, NATs: []*domain.NATMapping{mapping}}
		if err := NewXMLCodec().Export(batch, &buf); err != nil {
			t.Fatalf("Export failed: %v", err)
		}
		if !strings.Contains(buf.String(), `<target addr="192.168.1.50" port="80"/>`) {
			t.Errorf("unexpected output:\n%s", buf.String())
		}
	})

	t.Run("vpn", func(t *testing.T) {
		var buf bytes.Buffer
		batch := &domain.Batch{Kind: domain.KindVPN, VPNs: []*domain.VPNTunnel{tunnel}}
		if err := NewXMLCodec().Export(batch, &buf); err != nil {
			t.Fatalf("Export failed: %v", err)
		}
		if !strings.Contains(buf.String(), "<peer>203.0.113.7</peer>") {
			t.Errorf("unexpected output:\n%s", buf.String())
		}
	})
}
