package domain

// Batch is an ordered sequence of records of one kind, as produced by a
// single generation call. Exactly one of the record slices is populated,
// matching Kind.
type Batch struct {
	Kind  RecordKind      `json:"kind" yaml:"kind"`
	Seed  *int64          `json:"seed,omitempty" yaml:"seed,omitempty"`
	VLANs []*VLAN         `json:"vlans,omitempty" yaml:"vlans,omitempty"`
	Rules []*FirewallRule `json:"firewall_rules,omitempty" yaml:"firewall_rules,omitempty"`
	NATs  []*NATMapping   `json:"nat_mappings,omitempty" yaml:"nat_mappings,omitempty"`
	VPNs  []*VPNTunnel    `json:"vpn_tunnels,omitempty" yaml:"vpn_tunnels,omitempty"`
}

// Len returns the number of records in the batch.
func (b *Batch) Len() int {
	switch b.Kind {
	case KindVLAN:
		return len(b.VLANs)
	case KindFirewall:
		return len(b.Rules)
	case KindNAT:
		return len(b.NATs)
	case KindVPN:
		return len(b.VPNs)
	}
	return 0
}
