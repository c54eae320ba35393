package ports

import "context"

// SnapshotStore persists encoded machine snapshots by machine ID.
// Implementations must treat the payload as opaque bytes.
type SnapshotStore interface {
	// Save persists the snapshot for a given machine ID.
	Save(ctx context.Context, machineID string, data []byte) error

	// Load retrieves the snapshot for a given machine ID.
	// Returns domain.ErrMachineNotFound if the machine does not exist.
	Load(ctx context.Context, machineID string) ([]byte, error)

	// Delete removes the snapshot for a given machine ID.
	Delete(ctx context.Context, machineID string) error

	// List returns the IDs of all persisted machines.
	List(ctx context.Context) ([]string, error)
}
