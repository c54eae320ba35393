/*
Package ports defines the driven-side interfaces of detent: snapshot
persistence and distributed locking. The core itself never touches these;
they exist for drivers that want durable machines or need to serialize
access across replicas.

Stores deal in opaque bytes. The encoding of a snapshot is the driver's
choice (the session package uses JSON); the core assumes none.
*/
package ports
