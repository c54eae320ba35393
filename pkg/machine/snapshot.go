package machine

import (
	"fmt"

	"github.com/veldt-labs/detent/pkg/domain"
	"github.com/veldt-labs/detent/pkg/machine/internal/states"
)

// Snapshot is the externally visible form of a State, fit for persistence by
// an outside collaborator. The core assumes nothing about how it is encoded;
// the struct tags are a convenience for drivers that pick JSON or YAML.
type Snapshot struct {
	State      string `json:"state" yaml:"state"`
	ReadyCount uint64 `json:"ready_count" yaml:"ready_count"`
}

// Snapshot captures the observable fields of the state without consuming it.
func (s State) Snapshot() Snapshot {
	return Snapshot{State: s.Name(), ReadyCount: s.ReadyCount()}
}

// Restore rebuilds a State from a persisted snapshot. It goes through the
// enter hooks, so restoring counts as a fresh occupancy: the dwell clock
// restarts and the enter event fires. For the ready state the hook is handed
// the pre-entry count, so the restored counter matches the snapshot exactly.
func Restore(env *domain.Env, snap Snapshot) (State, error) {
	switch snap.State {
	case domain.StateStored:
		return State{
			kind:   KindStored,
			stored: states.EnterStored(env, states.StoredInputs{ReadyCount: snap.ReadyCount}),
		}, nil

	case domain.StateReady:
		if snap.ReadyCount == 0 {
			// A machine cannot be ready without having entered ready.
			return State{}, fmt.Errorf("%w: ready state with zero ready count", domain.ErrBadSnapshot)
		}
		return State{
			kind:  KindReady,
			ready: states.EnterReady(env, states.ReadyInputs{ReadyCount: snap.ReadyCount - 1}),
		}, nil

	default:
		return State{}, fmt.Errorf("%w: unknown state %q", domain.ErrBadSnapshot, snap.State)
	}
}
