package domain

// VPNTunnel is one synthesized site-to-site tunnel record. LocalNetwork and
// RemoteNetwork are RFC1918 /24 networks; PeerAddr is the remote endpoint
// address; Interface is the local tunnel interface name.
type VPNTunnel struct {
	Name          string `json:"name" yaml:"name"`
	LocalNetwork  string `json:"local_network" yaml:"local_network"`
	RemoteNetwork string `json:"remote_network" yaml:"remote_network"`
	PeerAddr      string `json:"peer_addr" yaml:"peer_addr"`
	Interface     string `json:"interface" yaml:"interface"`
}

// NewVPNTunnel validates the given fields and constructs a tunnel.
func NewVPNTunnel(name, local, remote, peerAddr, iface string) (*VPNTunnel, error) {
	if name == "" {
		return nil, &ValidationError{Field: "tunnel name", Value: name, Constraint: "empty"}
	}
	if base, ok := networkBase(local); !ok || !isRFC1918Base(base) {
		return nil, &ValidationError{Field: "local network", Value: local, Constraint: "not an RFC1918 /24 network"}
	}
	if base, ok := networkBase(remote); !ok || !isRFC1918Base(base) {
		return nil, &ValidationError{Field: "remote network", Value: remote, Constraint: "not an RFC1918 /24 network"}
	}
	if local == remote {
		return nil, &ValidationError{Field: "remote network", Value: remote, Constraint: "identical to local network"}
	}
	if peerAddr == "" {
		return nil, &ValidationError{Field: "peer address", Value: peerAddr, Constraint: "empty"}
	}
	if iface == "" {
		return nil, &ValidationError{Field: "interface", Value: iface, Constraint: "empty"}
	}
	return &VPNTunnel{
		Name:          name,
		LocalNetwork:  local,
		RemoteNetwork: remote,
		PeerAddr:      peerAddr,
		Interface:     iface,
	}, nil
}
