package machine

import (
	"github.com/veldt-labs/detent/pkg/domain"
	"github.com/veldt-labs/detent/pkg/machine/internal/states"
)

// Transition methods. They live outside the states boundary, so the only way
// to take a variant apart is its Exit hook and the only way to build the
// next one is its Enter hook; the bookkeeping in those hooks therefore runs
// exactly once per occupancy, whichever operation drives the change.

// storedReady moves a stored record into the ready state.
func storedReady(env *domain.Env, s states.Stored) StoredReadyResult {
	out := s.Exit(env)
	return StoredReadyResult{
		ready: states.EnterReady(env, states.ReadyInputs{ReadyCount: out.ReadyCount}),
	}
}

// readyStore moves a ready record back into the stored state.
func readyStore(env *domain.Env, r states.Ready) ReadyStoreResult {
	out := r.Exit(env)
	return ReadyStoreResult{
		stored: states.EnterStored(env, states.StoredInputs{ReadyCount: out.ReadyCount}),
	}
}
