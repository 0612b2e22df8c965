package domain

// NATMapping is one synthesized port-forward record. ExternalPort is the
// scarce, batch-unique value; InternalAddr is a single host address inside
// an RFC1918 network.
type NATMapping struct {
	Name         string   `json:"name" yaml:"name"`
	Protocol     Protocol `json:"protocol" yaml:"protocol"`
	ExternalPort int      `json:"external_port" yaml:"external_port"`
	InternalAddr string   `json:"internal_addr" yaml:"internal_addr"`
	InternalPort int      `json:"internal_port" yaml:"internal_port"`
}

// NewNATMapping validates the given fields and constructs a mapping.
func NewNATMapping(name string, proto Protocol, externalPort int, internalAddr string, internalPort int) (*NATMapping, error) {
	if name == "" {
		return nil, &ValidationError{Field: "mapping name", Value: name, Constraint: "empty"}
	}
	if err := validateProtocol(proto); err != nil {
		return nil, err
	}
	if err := validatePort("external port", externalPort); err != nil {
		return nil, err
	}
	if err := validatePort("internal port", internalPort); err != nil {
		return nil, err
	}
	if !IsRFC1918(internalAddr) {
		return nil, &ValidationError{Field: "internal address", Value: internalAddr, Constraint: "not an RFC1918 private address"}
	}
	return &NATMapping{
		Name:         name,
		Protocol:     proto,
		ExternalPort: externalPort,
		InternalAddr: internalAddr,
		InternalPort: internalPort,
	}, nil
}
