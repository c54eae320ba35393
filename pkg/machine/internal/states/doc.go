/*
Package states holds the concrete state variants of the reference machine.

The variant fields are unexported and the package sits behind an internal
boundary, so the only sanctioned way to construct a variant is its Enter
hook and the only way to destructure one is its Exit hook. Transition
methods live in the parent machine package, outside this boundary, which
guarantees the hooks run exactly once per state occupancy no matter which
operation caused the entry or the exit.

Go cannot forbid an empty composite literal the way a private constructor
would, so a zero-value variant is representable; it is not a sanctioned
state and the machine package never produces one.
*/
package states
