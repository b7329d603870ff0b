// Package param builds parameters on top of thread-locals.
//
// A parameter is a thread-local exposed as a zero-or-one-argument
// callable: called with no arguments it reads the value in the calling
// context, called with one argument it writes it. Anything else is an
// arity error.
//
// Writes go through an explicit Setter strategy fixed at construction
// time. The direct strategy hits the raw storage; the guarded strategy
// hands the write to a hook supplied by a higher dynamic-binding layer
// so that validation and observer callbacks added there are honored.
// Reads always go straight to storage.
//
// Each parameter also carries a Key, an opaque token with its own
// identity. A scoped-rebinding layer keys its bindings by it rather
// than by the parameter itself, so user code that uses parameters as
// its own map keys cannot collide with parameterization.
package param
