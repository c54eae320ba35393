package machine

import (
	"fmt"
	"time"

	"github.com/veldt-labs/detent/pkg/domain"
)

// Transition is the sole entry point of the core. It takes exclusive
// ownership of s for the duration of the call and returns exactly one of:
//
//   - a new State and a nil error (the operation succeeded), or
//   - the original State, value-identical, and a *domain.RejectionError
//     (the operation is not legal from the current state).
//
// The switch below enumerates the full product of kinds and operations.
// Every pair is either delegated to exactly one transition method or
// explicitly rejected; a pair reaching the final branch means the
// enumeration itself is broken, which is a programming defect and panics.
func Transition(env *domain.Env, s State, op domain.Op) (State, error) {
	if !op.Valid() {
		return s, fmt.Errorf("%w: %q", domain.ErrUnknownOp, op)
	}
	if s.kind == KindInvalid {
		return s, fmt.Errorf("%w: zero state", domain.ErrBadSnapshot)
	}

	switch {
	case s.kind == KindStored && op == domain.OpReady:
		return storedReady(env, s.stored).State(), nil

	case s.kind == KindReady && op == domain.OpStore:
		return readyStore(env, s.ready).State(), nil

	case s.kind == KindStored && op == domain.OpStore,
		s.kind == KindReady && op == domain.OpReady:
		return reject(env, s, op)

	default:
		panic(fmt.Sprintf("machine: unhandled pair %s/%s in dispatcher", s.Name(), op))
	}
}

// reject reports an illegal (state, operation) pair. The state passes
// through untouched; no hook runs, so the occupancy continues as if the
// call never happened.
func reject(env *domain.Env, s State, op domain.Op) (State, error) {
	env.Log().Warn("transition rejected", "state", s.Name(), "op", string(op))
	env.Observe().EmitReject(&domain.RejectEvent{
		Timestamp: time.Now(),
		State:     s.Name(),
		Op:        op,
	})
	return s, &domain.RejectionError{From: s.Name(), Op: op}
}
