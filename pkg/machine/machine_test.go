package machine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/detent/pkg/domain"
	"github.com/veldt-labs/detent/pkg/machine"
)

// hookRecorder tallies lifecycle events per state.
type hookRecorder struct {
	enters  map[string]int
	exits   map[string]int
	rejects int
}

func newHookRecorder() *hookRecorder {
	return &hookRecorder{enters: map[string]int{}, exits: map[string]int{}}
}

func (r *hookRecorder) hooks() domain.Hooks {
	return domain.Hooks{
		OnEnter:  func(e *domain.EnterEvent) { r.enters[e.State]++ },
		OnExit:   func(e *domain.ExitEvent) { r.exits[e.State]++ },
		OnReject: func(*domain.RejectEvent) { r.rejects++ },
	}
}

func TestInitial(t *testing.T) {
	s := machine.Initial(nil)
	assert.Equal(t, machine.KindStored, s.Kind())
	assert.Equal(t, domain.StateStored, s.Name())
	assert.Equal(t, uint64(0), s.ReadyCount())
}

func TestTransition_StoredToReady(t *testing.T) {
	rec := newHookRecorder()
	env := &domain.Env{Hooks: rec.hooks()}

	s := machine.Initial(env)
	next, err := machine.Transition(env, s, domain.OpReady)
	require.NoError(t, err)

	assert.Equal(t, machine.KindReady, next.Kind())
	assert.Equal(t, uint64(1), next.ReadyCount())
	assert.Equal(t, 1, rec.exits[domain.StateStored], "one dwell record for the stored occupancy")
	assert.Equal(t, 1, rec.enters[domain.StateReady])
}

func TestTransition_RejectionPreservesState(t *testing.T) {
	env := &domain.Env{}

	s := machine.Initial(env)
	ready, err := machine.Transition(env, s, domain.OpReady)
	require.NoError(t, err)

	// Applying ready again is illegal; the state must come back untouched.
	same, err := machine.Transition(env, ready, domain.OpReady)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRejected)

	var rej *domain.RejectionError
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, domain.StateReady, rej.From)
	assert.Equal(t, domain.OpReady, rej.Op)

	assert.Equal(t, ready, same, "rejected transition must return the value-identical input state")
}

func TestTransition_FullCycleIncrementsCount(t *testing.T) {
	env := &domain.Env{}

	s := machine.Initial(env)
	s, err := machine.Transition(env, s, domain.OpReady)
	require.NoError(t, err)
	s, err = machine.Transition(env, s, domain.OpStore)
	require.NoError(t, err)
	require.Equal(t, uint64(1), s.ReadyCount(), "store must carry the count forward unchanged")

	s, err = machine.Transition(env, s, domain.OpReady)
	require.NoError(t, err)
	assert.Equal(t, domain.StateReady, s.Name())
	assert.Equal(t, uint64(2), s.ReadyCount())
}

func TestTransition_RepeatedRejectionsNeverMutate(t *testing.T) {
	rec := newHookRecorder()
	env := &domain.Env{Hooks: rec.hooks()}

	s := machine.Initial(env)
	s, err := machine.Transition(env, s, domain.OpReady)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		var rejected machine.State
		rejected, err = machine.Transition(env, s, domain.OpReady)
		require.ErrorIs(t, err, domain.ErrRejected)
		assert.Equal(t, s, rejected)
	}

	assert.Equal(t, uint64(1), s.ReadyCount())
	assert.Equal(t, 5, rec.rejects)
	assert.Equal(t, 1, rec.enters[domain.StateReady], "rejections must not re-run hooks")
	assert.Zero(t, rec.exits[domain.StateReady])
}

// TestTransition_Exhaustive walks the whole kind x op product: every pair
// must yield either a new state or an explicit rejection carrying the
// original state, never a panic and never a corrupted value.
func TestTransition_Exhaustive(t *testing.T) {
	env := &domain.Env{}

	stateFor := func(k machine.Kind) machine.State {
		s := machine.Initial(env)
		if k == machine.KindReady {
			var err error
			s, err = machine.Transition(env, s, domain.OpReady)
			require.NoError(t, err)
		}
		return s
	}

	for _, kind := range machine.Kinds() {
		for _, op := range domain.Ops() {
			s := stateFor(kind)
			before := s.Snapshot()

			next, err := machine.Transition(env, s, op)
			if err != nil {
				assert.ErrorIs(t, err, domain.ErrRejected, "%s/%s", kind, op)
				assert.Equal(t, before, next.Snapshot(), "%s/%s must preserve state on rejection", kind, op)
				continue
			}
			assert.NotEqual(t, machine.KindInvalid, next.Kind(), "%s/%s", kind, op)
		}
	}
}

// TestHookPairing verifies that over any transition sequence the number of
// enter events for a state equals the number of exit events, give or take
// the occupancy still held at the end.
func TestHookPairing(t *testing.T) {
	rec := newHookRecorder()
	env := &domain.Env{Hooks: rec.hooks()}

	s := machine.Initial(env)
	seq := []domain.Op{
		domain.OpReady, domain.OpReady, domain.OpStore,
		domain.OpStore, domain.OpReady, domain.OpStore, domain.OpReady,
	}
	for _, op := range seq {
		s, _ = machine.Transition(env, s, op)
	}

	for _, name := range domain.StateNames() {
		delta := rec.enters[name] - rec.exits[name]
		held := 0
		if s.Name() == name {
			held = 1
		}
		assert.Equal(t, held, delta, "enter/exit pairing for %s", name)
	}
}

func TestTransition_UnknownOp(t *testing.T) {
	env := &domain.Env{}
	s := machine.Initial(env)

	same, err := machine.Transition(env, s, domain.Op("frobnicate"))
	require.ErrorIs(t, err, domain.ErrUnknownOp)
	assert.Equal(t, s, same)
}

func TestTransition_ZeroStateRefused(t *testing.T) {
	var zero machine.State
	_, err := machine.Transition(nil, zero, domain.OpReady)
	assert.Error(t, err)
}

func TestCounterMonotonicity(t *testing.T) {
	env := &domain.Env{}
	s := machine.Initial(env)

	last := s.ReadyCount()
	ops := []domain.Op{
		domain.OpReady, domain.OpStore, domain.OpReady, domain.OpReady,
		domain.OpStore, domain.OpStore, domain.OpReady,
	}
	for _, op := range ops {
		next, err := machine.Transition(env, s, op)
		if err == nil && next.Name() == domain.StateReady && s.Name() == domain.StateStored {
			assert.Equal(t, last+1, next.ReadyCount(), "fresh ready entry increments by exactly one")
		} else {
			assert.Equal(t, last, next.ReadyCount())
		}
		s = next
		require.GreaterOrEqual(t, s.ReadyCount(), last)
		last = s.ReadyCount()
	}
}
