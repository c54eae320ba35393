package machine

import (
	"github.com/veldt-labs/detent/pkg/domain"
	"github.com/veldt-labs/detent/pkg/machine/internal/states"
)

// Kind tags the active variant of the State union.
type Kind uint8

const (
	// KindInvalid is the tag of a zero State. The dispatcher refuses it;
	// no transition ever produces it.
	KindInvalid Kind = iota
	KindStored
	KindReady
)

// Kinds lists every valid kind, in a stable order.
func Kinds() []Kind {
	return []Kind{KindStored, KindReady}
}

func (k Kind) String() string {
	switch k {
	case KindStored:
		return domain.StateStored
	case KindReady:
		return domain.StateReady
	}
	return "invalid"
}

// State is the closed union over the machine's states: exactly one variant
// is active at any time. The only public origins of a State are Initial,
// Restore and the dispatcher itself.
type State struct {
	kind   Kind
	stored states.Stored
	ready  states.Ready
}

// Initial produces the genesis state: stored, with a ready count of zero.
func Initial(env *domain.Env) State {
	return State{
		kind:   KindStored,
		stored: states.EnterStored(env, states.StoredInputs{ReadyCount: 0}),
	}
}

// Kind returns the tag of the active variant.
func (s State) Kind() Kind {
	return s.kind
}

// Name returns the active variant's name as used in logs and snapshots.
func (s State) Name() string {
	return s.kind.String()
}

// ReadyCount returns how many times the machine has entered the ready state.
// It is monotonically non-decreasing over the machine's lifetime.
func (s State) ReadyCount() uint64 {
	switch s.kind {
	case KindStored:
		return s.stored.ReadyCount()
	case KindReady:
		return s.ready.ReadyCount()
	}
	return 0
}
