// Package domain defines the synthesized network-configuration records and
// their validation rules. Records are immutable once constructed; derived
// values (gateway, DHCP range) are computed on demand, never stored.
package domain

import "fmt"

// RecordKind identifies one of the closed set of record types the
// synthesizer can produce.
type RecordKind string

const (
	KindVLAN     RecordKind = "vlan"
	KindFirewall RecordKind = "firewall"
	KindNAT      RecordKind = "nat"
	KindVPN      RecordKind = "vpn"
)

// Kinds lists every supported record kind.
func Kinds() []RecordKind {
	return []RecordKind{KindVLAN, KindFirewall, KindNAT, KindVPN}
}

// ParseKind converts a user-supplied string into a RecordKind.
func ParseKind(s string) (RecordKind, error) {
	switch RecordKind(s) {
	case KindVLAN, KindFirewall, KindNAT, KindVPN:
		return RecordKind(s), nil
	}
	return "", &ValidationError{Field: "record kind", Value: s, Constraint: "not one of vlan, firewall, nat, vpn"}
}

// Protocol is an IP protocol selector on firewall and NAT records.
type Protocol string

const (
	ProtocolTCP  Protocol = "tcp"
	ProtocolUDP  Protocol = "udp"
	ProtocolICMP Protocol = "icmp"
	ProtocolAny  Protocol = "any"
)

func validateProtocol(p Protocol) error {
	switch p {
	case ProtocolTCP, ProtocolUDP, ProtocolICMP, ProtocolAny:
		return nil
	}
	return &ValidationError{Field: "protocol", Value: string(p), Constraint: "not one of tcp, udp, icmp, any"}
}

// Action is the verdict of a firewall rule.
type Action string

const (
	ActionAllow Action = "allow"
	ActionDeny  Action = "deny"
)

func validateAction(a Action) error {
	switch a {
	case ActionAllow, ActionDeny:
		return nil
	}
	return &ValidationError{Field: "action", Value: string(a), Constraint: "not one of allow, deny"}
}

func validatePort(field string, port int) error {
	if port < 1 || port > 65535 {
		return &ValidationError{Field: field, Value: port, Constraint: fmt.Sprintf("outside valid range %d-%d", 1, 65535)}
	}
	return nil
}
