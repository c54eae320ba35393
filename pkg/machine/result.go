package machine

import "github.com/veldt-labs/detent/pkg/machine/internal/states"

// Result subset types: each transition method returns a type listing only
// the states it can actually reach, rather than the full union. The State
// methods below are the total conversions back into the union; every subset
// variant maps to exactly one union variant.

// StoredReadyResult is the outcome of the ready operation on a stored
// machine. The only reachable state is ready.
type StoredReadyResult struct {
	ready states.Ready
}

// State converts the narrowed result into the full union.
func (r StoredReadyResult) State() State {
	return State{kind: KindReady, ready: r.ready}
}

// ReadyStoreResult is the outcome of the store operation on a ready
// machine. The only reachable state is stored.
type ReadyStoreResult struct {
	stored states.Stored
}

// State converts the narrowed result into the full union.
func (r ReadyStoreResult) State() State {
	return State{kind: KindStored, stored: r.stored}
}
