package detent

import (
	"log/slog"
	"sync"

	"github.com/veldt-labs/detent/pkg/domain"
	"github.com/veldt-labs/detent/pkg/machine"
)

// Re-exported operation symbols, so simple embedders only import this package.
const (
	OpStore = domain.OpStore
	OpReady = domain.OpReady
)

// Machine is the high-level handle for a single state machine. It owns the
// State value between transition calls and serializes access to it, which
// is the driver-side half of the core's single-owner contract.
type Machine struct {
	mu    sync.Mutex
	env   *domain.Env
	state machine.State
}

// Option defines a functional option for configuring a Machine.
type Option func(*domain.Env)

// WithLogger sets the structured logger that receives dwell-time records.
func WithLogger(logger *slog.Logger) Option {
	return func(env *domain.Env) {
		env.Logger = logger
	}
}

// WithHooks registers lifecycle observers (see pkg/telemetry for
// ready-made Prometheus and logging observers).
func WithHooks(hooks domain.Hooks) Option {
	return func(env *domain.Env) {
		env.Hooks = hooks
	}
}

// New creates a Machine in its genesis state (stored, ready count zero).
func New(opts ...Option) *Machine {
	env := &domain.Env{}
	for _, opt := range opts {
		opt(env)
	}
	return &Machine{
		env:   env,
		state: machine.Initial(env),
	}
}

// Apply requests one operation. A nil return means the machine moved; a
// *domain.RejectionError (wrapping domain.ErrRejected) means the operation
// was illegal from the current state and the machine is unchanged.
func (m *Machine) Apply(op domain.Op) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next, err := machine.Transition(m.env, m.state, op)
	m.state = next
	return err
}

// StateName returns the name of the current state.
func (m *Machine) StateName() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Name()
}

// ReadyCount returns how many times the machine has entered ready.
func (m *Machine) ReadyCount() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.ReadyCount()
}

// Snapshot captures the machine's observable state for persistence.
func (m *Machine) Snapshot() machine.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Snapshot()
}

// RestoreMachine rebuilds a Machine from a persisted snapshot.
func RestoreMachine(snap machine.Snapshot, opts ...Option) (*Machine, error) {
	env := &domain.Env{}
	for _, opt := range opts {
		opt(env)
	}
	state, err := machine.Restore(env, snap)
	if err != nil {
		return nil, err
	}
	return &Machine{env: env, state: state}, nil
}
