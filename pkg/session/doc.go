/*
Package session is the driver layer that owns machine states between
transition calls. The core itself never locks; serializing concurrent
access to one logical machine is this package's job, via one ref-counted
mutex per machine ID plus an optional distributed locker for multi-replica
deployments.

The Manager keeps each State resident in memory for the life of the process
(so dwell times span occupancies correctly) and writes a JSON-encoded
snapshot to the configured SnapshotStore after every successful transition.
*/
package session
