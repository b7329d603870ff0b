// Package tlocal implements quill's indexed thread-local storage.
//
// Every declared thread-local is assigned a process-unique slot index by
// a single Allocator. Every execution context owns one Table, a growable
// vector addressed by those indices. A Local descriptor (name, index,
// initial value, flags) is the immutable join key between the two: the
// same descriptor reads and writes a different slot in every context.
//
// INHERITANCE: copy-on-spawn. When a context spawns another, the parent
// snapshots its table element-wise before the child starts running;
// afterwards the two tables are fully independent. The alternative,
// copy-on-write, would make spawning cheaper but puts a lock on every
// read, which is the wrong trade for a runtime that reads thread-locals
// far more often than it spawns contexts.
//
// CONCURRENCY: the only shared state is the allocator's counter, held
// under its mutex for the duration of a read-increment and nothing
// else. Tables take no locks at all - each one is owned and mutated
// exclusively by its context, and a snapshot is taken by the parent
// before the child can observe it.
package tlocal
