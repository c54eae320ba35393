package machine

import "github.com/veldt-labs/detent/pkg/domain"

// Edge describes one declared transition method: which operation it handles,
// which state it starts from, and the set of states its return type can
// produce.
type Edge struct {
	From     string
	Op       domain.Op
	Outcomes []string
}

// Table returns the statically declared transition table of the machine.
// It mirrors the return types of the transition methods in transitions.go,
// one row per method, so a new method and its row land in the same review.
// Diagram tooling consumes this table without running the machine.
func Table() []Edge {
	return []Edge{
		{From: domain.StateStored, Op: domain.OpReady, Outcomes: []string{domain.StateReady}},
		{From: domain.StateReady, Op: domain.OpStore, Outcomes: []string{domain.StateStored}},
	}
}
