package synth

import "fmt"

// Attempt budgets per value kind. The standard driver spends more attempts
// on VLAN IDs because its occupancy can approach the full tag space.
const (
	standardIDAttempts  = 1000
	optimizedIDAttempts = 100
	networkAttempts     = 1000
	nameAttempts        = 100
	portAttempts        = 100
)

// ResourceExhaustedError reports that no unoccupied value of a kind could be
// found within the attempt budget. It is fatal to the in-progress batch;
// the caller can recover with Reset or a smaller batch size.
type ResourceExhaustedError struct {
	Resource string
	Attempts int
}

func (e *ResourceExhaustedError) Error() string {
	return fmt.Sprintf("%s exhausted: no unoccupied value found in %d attempts", e.Resource, e.Attempts)
}

// AllocateUnique draws candidates from next until one is absent from
// occupied, inserts it, and returns it. Rejection sampling stays cheap while
// the occupied fraction of the value space is small; near exhaustion it
// fails fast instead of looping forever.
func AllocateUnique[T comparable](resource string, maxAttempts int, next func() T, occupied map[T]struct{}) (T, error) {
	for range maxAttempts {
		candidate := next()
		if _, taken := occupied[candidate]; taken {
			continue
		}
		occupied[candidate] = struct{}{}
		return candidate, nil
	}
	var zero T
	return zero, &ResourceExhaustedError{Resource: resource, Attempts: maxAttempts}
}
