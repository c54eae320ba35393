package domain

import "time"

// EventType defines the category of a lifecycle event.
type EventType string

const (
	EventStateEnter EventType = "state_enter"
	EventStateExit  EventType = "state_exit"
	EventRejection  EventType = "rejection"
)

// EnterEvent is emitted exactly once per state occupancy, when the enter
// hook constructs the variant.
type EnterEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	State      string    `json:"state"`
	ReadyCount uint64    `json:"ready_count"`
}

// ExitEvent is emitted exactly once per state occupancy, when the exit hook
// destroys the variant. Dwell is the elapsed time since the matching enter.
type ExitEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	State     string        `json:"state"`
	Dwell     time.Duration `json:"dwell"`
}

// RejectEvent is emitted when the dispatcher refuses an operation.
type RejectEvent struct {
	Timestamp time.Time `json:"timestamp"`
	State     string    `json:"state"`
	Op        Op        `json:"op"`
}

// Hooks defines observability callbacks for the machine lifecycle.
// All fields are optional; a zero Hooks is valid and emits nothing.
type Hooks struct {
	OnEnter  func(*EnterEvent)
	OnExit   func(*ExitEvent)
	OnReject func(*RejectEvent)
}

// EmitEnter invokes OnEnter if set. A panicking observer is swallowed:
// telemetry failure must never abort the transition that triggered it.
func (h Hooks) EmitEnter(e *EnterEvent) {
	if h.OnEnter == nil {
		return
	}
	defer func() { _ = recover() }()
	h.OnEnter(e)
}

// EmitExit invokes OnExit if set, isolating observer panics.
func (h Hooks) EmitExit(e *ExitEvent) {
	if h.OnExit == nil {
		return
	}
	defer func() { _ = recover() }()
	h.OnExit(e)
}

// EmitReject invokes OnReject if set, isolating observer panics.
func (h Hooks) EmitReject(e *RejectEvent) {
	if h.OnReject == nil {
		return
	}
	defer func() { _ = recover() }()
	h.OnReject(e)
}

// Merge fans one event out to several hook sets, e.g. structured logging
// plus Prometheus metrics.
func Merge(hooks ...Hooks) Hooks {
	list := hooks
	return Hooks{
		OnEnter: func(e *EnterEvent) {
			for _, h := range list {
				h.EmitEnter(e)
			}
		},
		OnExit: func(e *ExitEvent) {
			for _, h := range list {
				h.EmitExit(e)
			}
		},
		OnReject: func(e *RejectEvent) {
			for _, h := range list {
				h.EmitReject(e)
			}
		},
	}
}
