package states

import (
	"time"

	"github.com/veldt-labs/detent/pkg/domain"
)

// StoredInputs defines what is required to enter the stored state.
type StoredInputs struct {
	ReadyCount uint64
}

// StoredOutputs defines what the stored state hands onward when it is left.
type StoredOutputs struct {
	ReadyCount uint64
}

// Stored is the variant for a record at rest.
type Stored struct {
	readyCount  uint64
	storedStart time.Time
}

// EnterStored is the only sanctioned constructor for Stored. It records the
// entry instant and carries the ready counter forward unchanged.
func EnterStored(env *domain.Env, in StoredInputs) Stored {
	s := Stored{
		readyCount:  in.ReadyCount,
		storedStart: time.Now(),
	}
	env.Observe().EmitEnter(&domain.EnterEvent{
		Timestamp:  s.storedStart,
		State:      domain.StateStored,
		ReadyCount: s.readyCount,
	})
	return s
}

// Exit is the only sanctioned destructor for Stored. It logs the dwell time
// spent in the state and returns the fields the next transition needs.
func (s Stored) Exit(env *domain.Env) StoredOutputs {
	now := time.Now()
	dwell := now.Sub(s.storedStart)
	env.Log().Info("leaving state", "state", domain.StateStored, "dwell", dwell)
	env.Observe().EmitExit(&domain.ExitEvent{
		Timestamp: now,
		State:     domain.StateStored,
		Dwell:     dwell,
	})
	return StoredOutputs{ReadyCount: s.readyCount}
}

// ReadyCount exposes the counter without consuming the variant.
func (s Stored) ReadyCount() uint64 {
	return s.readyCount
}
