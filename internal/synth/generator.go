package synth

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"netsynth/internal/domain"
)

// ProgressFunc receives the position of the record just produced (1-based)
// and the batch total. It is invoked synchronously, once per record.
type ProgressFunc func(position, total int)

// Generator is the standard batch driver. It owns the pseudorandom stream
// and one occupancy set per scarce value kind. A Generator is single-caller
// state: it must not be used from multiple goroutines without external
// synchronization.
type Generator struct {
	rng         *rand.Rand
	departments []string

	vlanIDs  map[int]struct{}
	networks map[string]struct{}
	names    map[string]struct{}
	ports    map[int]struct{}
}

// NewGenerator creates a generator seeded from system entropy. Its output
// is not reproducible.
func NewGenerator() *Generator {
	return newGenerator(NewEntropyStream())
}

// NewSeededGenerator creates a fully deterministic generator: the same seed
// yields the same batches for a fixed sequence of calls.
func NewSeededGenerator(seed int64) *Generator {
	return newGenerator(NewStream(seed))
}

func newGenerator(rng *rand.Rand) *Generator {
	return &Generator{
		rng:         rng,
		departments: defaultDepartments,
		vlanIDs:     make(map[int]struct{}),
		networks:    make(map[string]struct{}),
		names:       make(map[string]struct{}),
		ports:       make(map[int]struct{}),
	}
}

// SetDepartments replaces the department table used for VLAN labels.
func (g *Generator) SetDepartments(names []string) {
	if len(names) > 0 {
		g.departments = names
	}
}

// Reset clears all occupancy sets without discarding the stream position.
// Idempotent.
func (g *Generator) Reset() {
	clear(g.vlanIDs)
	clear(g.networks)
	clear(g.names)
	clear(g.ports)
}

// GenerateBatch produces count VLAN records with batch-unique IDs and
// networks. On the first allocation or assembly error the whole call fails
// and partial output is discarded.
func (g *Generator) GenerateBatch(count int, progress ProgressFunc) ([]*domain.VLAN, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}

	var records []*domain.VLAN
	for i := 0; i < count; i++ {
		id, err := AllocateUnique(resourceVLANIDs, standardIDAttempts, func() int {
			return randomVLANID(g.rng)
		}, g.vlanIDs)
		if err != nil {
			return nil, err
		}

		network, err := AllocateUnique(resourceNetworks, networkAttempts, func() string {
			return randomNetwork(g.rng)
		}, g.networks)
		if err != nil {
			return nil, err
		}

		dept := g.departments[g.rng.IntN(len(g.departments))]
		label := fmt.Sprintf("%s VLAN %d", dept, id)

		record, err := domain.NewVLAN(id, network, label, randomEgress(g.rng))
		if err != nil {
			return nil, err
		}
		records = append(records, record)

		if progress != nil {
			progress(i+1, count)
		}
	}
	return records, nil
}

// GenerateFirewallRules produces count rules with batch-unique names.
func (g *Generator) GenerateFirewallRules(count int, progress ProgressFunc) ([]*domain.FirewallRule, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}

	protocols := []domain.Protocol{domain.ProtocolTCP, domain.ProtocolUDP, domain.ProtocolICMP, domain.ProtocolAny}

	var records []*domain.FirewallRule
	for i := 0; i < count; i++ {
		name, err := g.uniqueName(domain.KindFirewall)
		if err != nil {
			return nil, err
		}

		proto := protocols[g.rng.IntN(len(protocols))]
		source := "any"
		if g.rng.IntN(2) == 0 {
			source = randomNetworkCIDR(g.rng)
		}
		port := 0
		if proto == domain.ProtocolTCP || proto == domain.ProtocolUDP {
			port = commonPorts[g.rng.IntN(len(commonPorts))]
		}
		action := domain.ActionAllow
		if g.rng.IntN(100) < 30 {
			action = domain.ActionDeny
		}

		record, err := domain.NewFirewallRule(name, proto, source, randomNetworkCIDR(g.rng), port, action)
		if err != nil {
			return nil, err
		}
		records = append(records, record)

		if progress != nil {
			progress(i+1, count)
		}
	}
	return records, nil
}

// GenerateNATMappings produces count port-forwards with batch-unique
// external ports, preferring well-known ports first.
func (g *Generator) GenerateNATMappings(count int, progress ProgressFunc) ([]*domain.NATMapping, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}

	protocols := []domain.Protocol{domain.ProtocolTCP, domain.ProtocolUDP}

	var records []*domain.NATMapping
	for i := 0; i < count; i++ {
		name, err := g.uniqueName(domain.KindNAT)
		if err != nil {
			return nil, err
		}

		externalPort, err := allocatePort(g.rng, g.ports)
		if err != nil {
			return nil, err
		}

		record, err := domain.NewNATMapping(
			name,
			protocols[g.rng.IntN(len(protocols))],
			externalPort,
			randomHostAddress(g.rng),
			commonPorts[g.rng.IntN(len(commonPorts))],
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)

		if progress != nil {
			progress(i+1, count)
		}
	}
	return records, nil
}

// GenerateVPNTunnels produces count tunnels with batch-unique names and
// networks. Peer endpoints come from the TEST-NET-3 documentation range so
// the output never names a routable host.
func (g *Generator) GenerateVPNTunnels(count int, progress ProgressFunc) ([]*domain.VPNTunnel, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}

	var records []*domain.VPNTunnel
	for i := 0; i < count; i++ {
		name, err := g.uniqueName(domain.KindVPN)
		if err != nil {
			return nil, err
		}

		local, err := AllocateUnique(resourceNetworks, networkAttempts, func() string {
			return randomNetworkCIDR(g.rng)
		}, g.networks)
		if err != nil {
			return nil, err
		}
		remote, err := AllocateUnique(resourceNetworks, networkAttempts, func() string {
			return randomNetworkCIDR(g.rng)
		}, g.networks)
		if err != nil {
			return nil, err
		}

		record, err := domain.NewVPNTunnel(
			name,
			local,
			remote,
			fmt.Sprintf("203.0.113.%d", 1+g.rng.IntN(254)),
			fmt.Sprintf("tun%d", i),
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)

		if progress != nil {
			progress(i+1, count)
		}
	}
	return records, nil
}

// Generate produces a batch of the given kind through the matching driver
// method and wraps it in a Batch envelope.
func (g *Generator) Generate(kind domain.RecordKind, count int, progress ProgressFunc) (*domain.Batch, error) {
	batch := &domain.Batch{Kind: kind}
	var err error
	switch kind {
	case domain.KindVLAN:
		batch.VLANs, err = g.GenerateBatch(count, progress)
	case domain.KindFirewall:
		batch.Rules, err = g.GenerateFirewallRules(count, progress)
	case domain.KindNAT:
		batch.NATs, err = g.GenerateNATMappings(count, progress)
	case domain.KindVPN:
		batch.VPNs, err = g.GenerateVPNTunnels(count, progress)
	default:
		return nil, &domain.ValidationError{Field: "record kind", Value: string(kind), Constraint: "not one of vlan, firewall, nat, vpn"}
	}
	if err != nil {
		return nil, err
	}
	return batch, nil
}

// uniqueName allocates a batch-unique name, falling back to a structurally
// unique token when the retry budget is spent.
func (g *Generator) uniqueName(kind domain.RecordKind) (string, error) {
	name, err := AllocateUnique(resourceNames, nameAttempts, func() string {
		return randomName(g.rng, kind)
	}, g.names)
	if err == nil {
		return name, nil
	}
	var exhausted *ResourceExhaustedError
	if errors.As(err, &exhausted) {
		return fallbackName(g.rng, kind), nil
	}
	return "", err
}

func validateCount(count int) error {
	if count < 1 {
		return &domain.ValidationError{Field: "batch size", Value: count, Constraint: "below minimum 1"}
	}
	return nil
}
