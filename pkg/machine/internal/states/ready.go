package states

import (
	"time"

	"github.com/veldt-labs/detent/pkg/domain"
)

// ReadyInputs defines what is required to enter the ready state.
// ReadyCount is the count as seen before this entry; the hook increments it.
type ReadyInputs struct {
	ReadyCount uint64
}

// ReadyOutputs defines what the ready state hands onward when it is left.
type ReadyOutputs struct {
	ReadyCount uint64
}

// Ready is the variant for a record prepared for consumption.
type Ready struct {
	readyCount uint64
	readyStart time.Time
}

// EnterReady is the only sanctioned constructor for Ready. It increments the
// ready counter by exactly one, regardless of which state led here, and
// records the entry instant. The counter is assumed to stay well below the
// uint64 ceiling; wraparound is out of contract.
func EnterReady(env *domain.Env, in ReadyInputs) Ready {
	r := Ready{
		readyCount: in.ReadyCount + 1,
		readyStart: time.Now(),
	}
	env.Observe().EmitEnter(&domain.EnterEvent{
		Timestamp:  r.readyStart,
		State:      domain.StateReady,
		ReadyCount: r.readyCount,
	})
	return r
}

// Exit is the only sanctioned destructor for Ready. It logs the dwell time
// spent in the state and returns the fields the next transition needs.
func (r Ready) Exit(env *domain.Env) ReadyOutputs {
	now := time.Now()
	dwell := now.Sub(r.readyStart)
	env.Log().Info("leaving state", "state", domain.StateReady, "dwell", dwell)
	env.Observe().EmitExit(&domain.ExitEvent{
		Timestamp: now,
		State:     domain.StateReady,
		Dwell:     dwell,
	})
	return ReadyOutputs{ReadyCount: r.readyCount}
}

// ReadyCount exposes the counter without consuming the variant.
func (r Ready) ReadyCount() uint64 {
	return r.readyCount
}
