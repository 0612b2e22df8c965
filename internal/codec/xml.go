package codec

import (
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"

	"netsynth/internal/domain"
)

// XMLCodec exports batches as router-config-style XML. VLAN elements carry
// the derived gateway and DHCP range, so this is the one consumer that
// invokes derived-field accessors; a record with an unrecognized network
// suffix fails the export with a NetworkDerivationError.
type XMLCodec struct{}

// NewXMLCodec creates a new XML codec.
func NewXMLCodec() *XMLCodec {
	return &XMLCodec{}
}

// Format returns the codec format identifier.
func (c *XMLCodec) Format() string {
	return "xml"
}

// Export writes the batch as an XML document.
func (c *XMLCodec) Export(batch *domain.Batch, w io.Writer) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("network-config")
	root.CreateAttr("kind", string(batch.Kind))

	var err error
	switch batch.Kind {
	case domain.KindVLAN:
		err = appendVLANs(root, batch.VLANs)
	case domain.KindFirewall:
		appendFirewallRules(root, batch.Rules)
	case domain.KindNAT:
		appendNATMappings(root, batch.NATs)
	case domain.KindVPN:
		appendVPNTunnels(root, batch.VPNs)
	default:
		return fmt.Errorf("unsupported batch kind %q", batch.Kind)
	}
	if err != nil {
		return err
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write xml: %w", err)
	}
	return nil
}

func appendVLANs(root *etree.Element, records []*domain.VLAN) error {
	for _, r := range records {
		gateway, err := r.Gateway()
		if err != nil {
			return err
		}
		dhcpStart, err := r.DHCPStart()
		if err != nil {
			return err
		}
		dhcpEnd, err := r.DHCPEnd()
		if err != nil {
			return err
		}
		cidr, err := r.CIDR()
		if err != nil {
			return err
		}

		e := root.CreateElement("vlan")
		e.CreateAttr("id", strconv.Itoa(r.ID))
		e.CreateElement("label").SetText(r.Label)
		e.CreateElement("network").SetText(cidr)
		e.CreateElement("gateway").SetText(gateway)
		dhcp := e.CreateElement("dhcp-range")
		dhcp.CreateAttr("start", dhcpStart)
		dhcp.CreateAttr("end", dhcpEnd)
		e.CreateElement("egress").SetText(strconv.Itoa(r.Egress))
	}
	return nil
}

func appendFirewallRules(root *etree.Element, records []*domain.FirewallRule) {
	for _, r := range records {
		e := root.CreateElement("rule")
		e.CreateAttr("name", r.Name)
		e.CreateElement("protocol").SetText(string(r.Protocol))
		e.CreateElement("source").SetText(r.Source)
		e.CreateElement("destination").SetText(r.Destination)
		if r.Port != 0 {
			e.CreateElement("port").SetText(strconv.Itoa(r.Port))
		}
		e.CreateElement("action").SetText(string(r.Action))
	}
}

func appendNATMappings(root *etree.Element, records []*domain.NATMapping) {
	for _, r := range records {
		e := root.CreateElement("mapping")
		e.CreateAttr("name", r.Name)
		e.CreateElement("protocol").SetText(string(r.Protocol))
		e.CreateElement("external-port").SetText(strconv.Itoa(r.ExternalPort))
		target := e.CreateElement("target")
		target.CreateAttr("addr", r.InternalAddr)
		target.CreateAttr("port", strconv.Itoa(r.InternalPort))
	}
}

func appendVPNTunnels(root *etree.Element, records []*domain.VPNTunnel) {
	for _, r := range records {
		e := root.CreateElement("tunnel")
		e.CreateAttr("name", r.Name)
		e.CreateElement("interface").SetText(r.Interface)
		e.CreateElement("local-network").SetText(r.LocalNetwork)
		e.CreateElement("remote-network").SetText(r.RemoteNetwork)
		e.CreateElement("peer").SetText(r.PeerAddr)
	}
}
