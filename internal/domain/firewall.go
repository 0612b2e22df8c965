package domain

// FirewallRule is one synthesized filtering rule. Source and Destination are
// network strings in either accepted suffix form, or the literal "any".
// Port 0 means "any port".
type FirewallRule struct {
	Name        string   `json:"name" yaml:"name"`
	Protocol    Protocol `json:"protocol" yaml:"protocol"`
	Source      string   `json:"source" yaml:"source"`
	Destination string   `json:"destination" yaml:"destination"`
	Port        int      `json:"port" yaml:"port"`
	Action      Action   `json:"action" yaml:"action"`
}

// NewFirewallRule validates the given fields and constructs a rule.
func NewFirewallRule(name string, proto Protocol, source, destination string, port int, action Action) (*FirewallRule, error) {
	if name == "" {
		return nil, &ValidationError{Field: "rule name", Value: name, Constraint: "empty"}
	}
	if err := validateProtocol(proto); err != nil {
		return nil, err
	}
	if err := validateAction(action); err != nil {
		return nil, err
	}
	if err := validateEndpoint("source", source); err != nil {
		return nil, err
	}
	if err := validateEndpoint("destination", destination); err != nil {
		return nil, err
	}
	if port != 0 {
		if err := validatePort("port", port); err != nil {
			return nil, err
		}
	}
	return &FirewallRule{
		Name:        name,
		Protocol:    proto,
		Source:      source,
		Destination: destination,
		Port:        port,
		Action:      action,
	}, nil
}

func validateEndpoint(field, network string) error {
	if network == "any" {
		return nil
	}
	if base, ok := networkBase(network); !ok || !isRFC1918Base(base) {
		return &ValidationError{Field: field, Value: network, Constraint: `not "any" or an RFC1918 /24 network`}
	}
	return nil
}
