package domain

import "fmt"

// Op is a request symbol expressing the caller's intent for one transition.
// The set is closed; the dispatcher treats anything outside it as a caller
// error, never as a programming defect.
type Op string

const (
	// OpStore asks the machine to move the record into the stored state.
	OpStore Op = "store"

	// OpReady asks the machine to move the record into the ready state.
	OpReady Op = "ready"
)

// Ops lists every known operation, in a stable order.
func Ops() []Op {
	return []Op{OpStore, OpReady}
}

// Valid reports whether o is one of the known operations.
func (o Op) Valid() bool {
	switch o {
	case OpStore, OpReady:
		return true
	}
	return false
}

// ParseOp converts free-form input (CLI words, JSON fields) into an Op.
func ParseOp(s string) (Op, error) {
	op := Op(s)
	if !op.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownOp, s)
	}
	return op, nil
}
