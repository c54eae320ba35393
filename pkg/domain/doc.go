/*
Package domain holds the shared vocabulary of the detent state machine:
operation symbols, rejection errors, lifecycle events and the Env handle
that drivers lend to the core for the duration of one transition call.

It has no dependencies on the machine core or any adapter, so every other
package can import it freely.
*/
package domain
