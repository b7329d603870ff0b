// Package value defines the runtime value types shared by the rest of
// the quill runtime.
//
// Value is a sealed interface: only the types declared in this package
// implement it. Keeping the set closed lets every consumer exhaustively
// type-switch without a default-case escape hatch.
//
// Promise is the one stateful variant. It wraps a deferred computation
// that is resolved ("forced") at most once; after the first force the
// thunk is discarded and the cached result is returned on every
// subsequent force. A promise may be referenced from several context
// tables at once after a spawn, so forcing is guarded by a mutex.
package value
