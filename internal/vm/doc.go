// Package vm models quill's execution contexts.
//
// An execution context is the unit (thread or worker) that owns one
// thread-local storage table. The package provides the two lifecycle
// hooks the embedding runtime calls: NewRoot for the primordial context
// and Context.Spawn for every other one. Spawn snapshots the parent's
// table synchronously in the parent, so the child never observes a
// half-copied table and no locking is needed on table access.
//
// Scheduling itself is out of scope: contexts here are passive owners
// of storage, and whatever the embedding runtime uses to run them is
// its own business.
package vm
