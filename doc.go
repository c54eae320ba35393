/*
Package detent is a small, explicit finite-state-machine kit built around
one idea: encode states, transitions and lifecycle bookkeeping as types and
contracts instead of ad-hoc conditionals.

The reference machine models a record cycling between "stored" and "ready".
Each state is a distinct type whose fields only its enter/exit hooks can
touch, so timing and counting side effects run exactly once per occupancy.
Transitions consume the old state and produce the next one through those
hooks; their return types declare exactly which states they can reach. The
dispatcher covers the full product of states and operations, and an illegal
pair comes back as a regular rejection carrying the caller's state
untouched.

# Usage

	m := detent.New(detent.WithLogger(logger))

	if err := m.Apply(detent.OpReady); err != nil {
		// rejected; the machine is unchanged
	}
	fmt.Println(m.StateName(), m.ReadyCount())

The Machine handle owns one state value and serializes access to it; for
many durable machines behind stores and locks, see the session package.
Adapters under pkg/adapters expose machines over HTTP and persist snapshots
to memory or Redis.
*/
package detent

// Version is the library version, overridable at build time via ldflags.
var Version = "0.3.0"
