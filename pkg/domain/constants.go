package domain

// State names as they appear in logs, snapshots and diagrams.
const (
	StateStored = "stored"
	StateReady  = "ready"
)

// StateNames lists every state name, in a stable order.
func StateNames() []string {
	return []string{StateStored, StateReady}
}
