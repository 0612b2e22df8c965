package codec

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"netsynth/internal/domain"
)

// CSVCodec handles CSV export for every record kind and import of
// externally supplied VLAN files.
type CSVCodec struct{}

// NewCSVCodec creates a new CSV codec.
func NewCSVCodec() *CSVCodec {
	return &CSVCodec{}
}

// Format returns the codec format identifier.
func (c *CSVCodec) Format() string {
	return "csv"
}

// Export writes the batch as a header row plus one row per record.
func (c *CSVCodec) Export(batch *domain.Batch, w io.Writer) error {
	cw := csv.NewWriter(w)

	var err error
	switch batch.Kind {
	case domain.KindVLAN:
		err = exportVLANRows(cw, batch.VLANs)
	case domain.KindFirewall:
		err = exportFirewallRows(cw, batch.Rules)
	case domain.KindNAT:
		err = exportNATRows(cw, batch.NATs)
	case domain.KindVPN:
		err = exportVPNRows(cw, batch.VPNs)
	default:
		return fmt.Errorf("unsupported batch kind %q", batch.Kind)
	}
	if err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

func exportVLANRows(cw *csv.Writer, records []*domain.VLAN) error {
	if err := cw.Write([]string{"id", "network", "label", "egress_assignment"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{strconv.Itoa(r.ID), r.Network, r.Label, strconv.Itoa(r.Egress)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportFirewallRows(cw *csv.Writer, records []*domain.FirewallRule) error {
	if err := cw.Write([]string{"name", "protocol", "source", "destination", "port", "action"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{r.Name, string(r.Protocol), r.Source, r.Destination, strconv.Itoa(r.Port), string(r.Action)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportNATRows(cw *csv.Writer, records []*domain.NATMapping) error {
	if err := cw.Write([]string{"name", "protocol", "external_port", "internal_addr", "internal_port"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{r.Name, string(r.Protocol), strconv.Itoa(r.ExternalPort), r.InternalAddr, strconv.Itoa(r.InternalPort)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportVPNRows(cw *csv.Writer, records []*domain.VPNTunnel) error {
	if err := cw.Write([]string{"name", "local_network", "remote_network", "peer_addr", "interface"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{r.Name, r.LocalNetwork, r.RemoteNetwork, r.PeerAddr, r.Interface}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Parse reads an externally supplied VLAN CSV file (in Export's column
// order). Records validate ranges as usual, but non-standard network
// suffixes are tolerated here and only fail at derived-field access.
func (c *CSVCodec) Parse(r io.Reader) (*domain.Batch, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty csv input")
	}

	batch := &domain.Batch{Kind: domain.KindVLAN}
	for i, row := range rows[1:] {
		if len(row) != 4 {
			return nil, fmt.Errorf("row %d: expected 4 columns, got %d", i+2, len(row))
		}
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: parse id: %w", i+2, err)
		}
		egress, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: parse egress: %w", i+2, err)
		}
		record, err := domain.NewVLAN(id, row[1], row[2], egress)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		batch.VLANs = append(batch.VLANs, record)
	}
	return batch, nil
}
