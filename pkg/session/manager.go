package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/veldt-labs/detent/internal/logging"
	"github.com/veldt-labs/detent/pkg/domain"
	"github.com/veldt-labs/detent/pkg/machine"
	"github.com/veldt-labs/detent/pkg/ports"
)

// entry holds one resident machine and the mutex serializing access to it.
type entry struct {
	mu     sync.Mutex
	loaded bool
	state  machine.State
}

// Manager orchestrates access to many machines: one mutual-exclusion guard
// per machine ID (the driver-level serialization the core requires), an
// optional distributed locker for multi-replica setups, and snapshot
// persistence after every successful transition.
type Manager struct {
	store ports.SnapshotStore
	env   *domain.Env

	mu       sync.Mutex // guards the machines map
	machines map[string]*entry

	locker  ports.DistributedLocker
	logger  *slog.Logger
	lockTTL time.Duration
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLogger configures a logger for the Manager's own events.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithEnv sets the Env handed to the core on every transition call
// (structured logging and lifecycle hooks).
func WithEnv(env *domain.Env) Option {
	return func(m *Manager) {
		m.env = env
	}
}

// WithLockTTL overrides the distributed lock TTL (default 30s).
func WithLockTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.lockTTL = ttl
	}
}

// NewManager creates a new machine Manager backed by the given store.
func NewManager(store ports.SnapshotStore, opts ...Option) *Manager {
	m := &Manager{
		store:    store,
		machines: make(map[string]*entry),
		logger:   logging.NewNop(),
		lockTTL:  30 * time.Second,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.env == nil {
		m.env = &domain.Env{Logger: m.logger}
	}
	return m
}

// Create starts a new machine in its genesis state, persists it, and
// returns its generated ID.
func (m *Manager) Create(ctx context.Context) (string, machine.Snapshot, error) {
	id := uuid.NewString()

	e := m.entryFor(id)
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = machine.Initial(m.env)
	e.loaded = true

	snap := e.state.Snapshot()
	if err := m.persist(ctx, id, snap); err != nil {
		return "", machine.Snapshot{}, fmt.Errorf("failed to initialize machine: %w", err)
	}
	return id, snap, nil
}

// Apply runs one transition on the identified machine while holding its
// lock. On rejection the machine is untouched and the current snapshot is
// returned together with the rejection error, so callers keep full
// information either way.
func (m *Manager) Apply(ctx context.Context, machineID string, op domain.Op) (machine.Snapshot, error) {
	var snap machine.Snapshot
	err := m.withMachine(ctx, machineID, func(e *entry) error {
		next, err := machine.Transition(m.env, e.state, op)
		if err != nil {
			// Rejection or unknown op: the original state came back with it.
			e.state = next
			snap = next.Snapshot()
			return err
		}

		e.state = next
		snap = next.Snapshot()

		if err := m.persist(ctx, machineID, snap); err != nil {
			// The transition itself is complete; hooks ran and the resident
			// state moved. Only persistence failed.
			return fmt.Errorf("transition applied but snapshot not persisted: %w", err)
		}
		return nil
	})
	return snap, err
}

// Get returns the current snapshot of the identified machine.
func (m *Manager) Get(ctx context.Context, machineID string) (machine.Snapshot, error) {
	var snap machine.Snapshot
	err := m.withMachine(ctx, machineID, func(e *entry) error {
		snap = e.state.Snapshot()
		return nil
	})
	return snap, err
}

// Delete removes the machine from the store and from memory.
func (m *Manager) Delete(ctx context.Context, machineID string) error {
	if err := m.store.Delete(ctx, machineID); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.machines, machineID)
	m.mu.Unlock()
	return nil
}

// List returns the IDs of all persisted machines.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying snapshot store.
func (m *Manager) Store() ports.SnapshotStore {
	return m.store
}

// entryFor gets or creates the lock entry for a machine ID. Entries stay
// resident so dwell clocks keep running between calls; the map is bounded
// by the number of live machines.
func (m *Manager) entryFor(machineID string) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.machines[machineID]
	if !ok {
		e = &entry{}
		m.machines[machineID] = e
	}
	return e
}

// withMachine runs fn while holding the per-machine mutex (and the
// distributed lock, if configured), loading the machine from the store on
// first touch.
func (m *Manager) withMachine(ctx context.Context, machineID string, fn func(*entry) error) error {
	e := m.entryFor(machineID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, machineID, m.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.logger.Warn("failed to release distributed lock (will expire via TTL)",
					"machine_id", machineID,
					"err", err,
				)
			}
		}()
	}

	if !e.loaded {
		if err := m.hydrate(ctx, machineID, e); err != nil {
			return err
		}
	}

	return fn(e)
}

// hydrate restores the resident state from the store.
func (m *Manager) hydrate(ctx context.Context, machineID string, e *entry) error {
	data, err := m.store.Load(ctx, machineID)
	if err != nil {
		if errors.Is(err, domain.ErrMachineNotFound) {
			return err
		}
		return fmt.Errorf("failed to load machine %s: %w", machineID, err)
	}

	var snap machine.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBadSnapshot, err)
	}

	state, err := machine.Restore(m.env, snap)
	if err != nil {
		return err
	}

	e.state = state
	e.loaded = true
	return nil
}

// persist writes the snapshot to the store as JSON. The encoding is this
// driver's choice; the core assumes none.
func (m *Manager) persist(ctx context.Context, machineID string, snap machine.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return m.store.Save(ctx, machineID, data)
}
