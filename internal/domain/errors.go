package domain

import "fmt"

// ValidationError reports a field whose value violates a domain constraint.
// The message reads "<field> <value> is <constraint>".
type ValidationError struct {
	Field      string
	Value      any
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %v is %s", e.Field, e.Value, e.Constraint)
}

// NetworkDerivationError reports a derived-field access on a record whose
// network string matches neither the "A.B.C.x" nor the "A.B.C.0/24" form.
// The record itself may still be valid; only derivation fails.
type NetworkDerivationError struct {
	Network string
}

func (e *NetworkDerivationError) Error() string {
	return fmt.Sprintf("cannot derive addresses from network %q: expected A.B.C.x or A.B.C.0/24 form", e.Network)
}
