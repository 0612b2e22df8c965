package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// VLAN ID and egress bounds. The ID range is the 802.1Q tag space minus
// reserved values at both ends.
const (
	VLANIDMin = 10
	VLANIDMax = 4094

	EgressMin = 1
	EgressMax = 3
)

// Derived host offsets within a /24.
const (
	gatewayHost   = 1
	dhcpStartHost = 100
	dhcpEndHost   = 200
)

// VLAN is one synthesized VLAN configuration record.
//
// Network encodes a /24 private network in either the "A.B.C.x" placeholder
// form or the canonical "A.B.C.0/24" form. A network in neither form is
// tolerated at construction so externally supplied records can round-trip,
// but derived-field accessors fail on it.
type VLAN struct {
	ID      int    `json:"id" yaml:"id"`
	Network string `json:"network" yaml:"network"`
	Label   string `json:"label" yaml:"label"`
	Egress  int    `json:"egress_assignment" yaml:"egress_assignment"`
}

// NewVLAN validates the given fields and constructs a record.
func NewVLAN(id int, network, label string, egress int) (*VLAN, error) {
	if id < VLANIDMin || id > VLANIDMax {
		return nil, &ValidationError{
			Field:      "VLAN ID",
			Value:      id,
			Constraint: fmt.Sprintf("outside valid range %d-%d", VLANIDMin, VLANIDMax),
		}
	}
	if egress < EgressMin || egress > EgressMax {
		return nil, &ValidationError{
			Field:      "egress assignment",
			Value:      egress,
			Constraint: fmt.Sprintf("outside valid range %d-%d", EgressMin, EgressMax),
		}
	}
	if label == "" {
		return nil, &ValidationError{Field: "label", Value: label, Constraint: "empty"}
	}
	// Recognized network forms must be private; unrecognized forms pass
	// through and fail later at derivation.
	if base, ok := networkBase(network); ok && !isRFC1918Base(base) {
		return nil, &ValidationError{Field: "network", Value: network, Constraint: "not an RFC1918 private network"}
	}
	return &VLAN{ID: id, Network: network, Label: label, Egress: egress}, nil
}

// Gateway returns the first host address of the network (".1").
func (v *VLAN) Gateway() (string, error) {
	return v.hostAddress(gatewayHost)
}

// DHCPStart returns the first address of the DHCP range (".100").
func (v *VLAN) DHCPStart() (string, error) {
	return v.hostAddress(dhcpStartHost)
}

// DHCPEnd returns the last address of the DHCP range (".200").
func (v *VLAN) DHCPEnd() (string, error) {
	return v.hostAddress(dhcpEndHost)
}

// CIDR returns the network in canonical "A.B.C.0/24" form.
func (v *VLAN) CIDR() (string, error) {
	base, ok := networkBase(v.Network)
	if !ok {
		return "", &NetworkDerivationError{Network: v.Network}
	}
	return base + ".0/24", nil
}

func (v *VLAN) hostAddress(host int) (string, error) {
	base, ok := networkBase(v.Network)
	if !ok {
		return "", &NetworkDerivationError{Network: v.Network}
	}
	return fmt.Sprintf("%s.%d", base, host), nil
}

// ValidateNetwork strictly checks an externally supplied network string:
// it must match one of the two accepted suffix forms and lie inside an
// RFC1918 private range. Generated networks satisfy this by construction.
func ValidateNetwork(network string) error {
	base, ok := networkBase(network)
	if !ok {
		return &ValidationError{Field: "network", Value: network, Constraint: "not in A.B.C.x or A.B.C.0/24 form"}
	}
	if !isRFC1918Base(base) {
		return &ValidationError{Field: "network", Value: network, Constraint: "not an RFC1918 private network"}
	}
	return nil
}

// IsRFC1918 reports whether the dotted-quad address lies in 10.0.0.0/8,
// 172.16.0.0/12, or 192.168.0.0/16.
func IsRFC1918(addr string) bool {
	octets, ok := parseOctets(addr, 4)
	if !ok {
		return false
	}
	return privateOctets(octets[0], octets[1])
}

// networkBase strips a recognized suffix and returns the "A.B.C" prefix.
func networkBase(network string) (string, bool) {
	var base string
	switch {
	case strings.HasSuffix(network, ".x"):
		base = strings.TrimSuffix(network, ".x")
	case strings.HasSuffix(network, ".0/24"):
		base = strings.TrimSuffix(network, ".0/24")
	default:
		return "", false
	}
	if _, ok := parseOctets(base, 3); !ok {
		return "", false
	}
	return base, true
}

func isRFC1918Base(base string) bool {
	octets, ok := parseOctets(base, 3)
	if !ok {
		return false
	}
	return privateOctets(octets[0], octets[1])
}

func privateOctets(first, second int) bool {
	return first == 10 ||
		(first == 172 && second >= 16 && second <= 31) ||
		(first == 192 && second == 168)
}

func parseOctets(s string, n int) ([]int, bool) {
	parts := strings.Split(s, ".")
	if len(parts) != n {
		return nil, false
	}
	octets := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || v > 255 || p != strconv.Itoa(v) {
			return nil, false
		}
		octets[i] = v
	}
	return octets, true
}
