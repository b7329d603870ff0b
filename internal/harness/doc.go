// Package harness runs declarative scenarios against the thread-local
// subsystem.
//
// A scenario is a YAML file that declares thread-locals and parameters,
// scripts a sequence of operations (reads, writes, parameter calls,
// context spawns and switches), and states expectations about the
// results. The runner executes the script with deterministic context
// IDs and produces a trace; golden-file tests compare that trace
// byte-for-byte against testdata.
//
// Scenarios double as executable documentation: the isolation and
// inheritance behavior of copy-on-spawn reads directly off a trace.
package harness
