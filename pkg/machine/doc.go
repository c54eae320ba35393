/*
Package machine is the reference state machine core: a closed union over the
stored and ready states, a dispatcher that applies operation symbols to it,
and the transition methods connecting the two.

The state graph is fixed at build time. Each transition method's return type
is the single source of truth for which states it can reach; widening that
type is the only way to add an outcome, which keeps every reachability change
explicit and reviewable. Table exposes the same information as data for
external tooling such as diagram renderers.

A State value has exactly one owner at any time: the driver between calls,
the core during a call. The core holds nothing across calls and needs no
locking; serializing concurrent access to one logical machine is the
driver's job (see the session package).
*/
package machine
