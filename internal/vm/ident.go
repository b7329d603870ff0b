package vm

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator produces context identifiers.
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 context IDs.
//
// UUIDv7 embeds a timestamp in the most significant bits, so listing
// contexts by ID roughly follows creation order, which helps when
// reading traces.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
//
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined context IDs for testing.
//
// This enables deterministic test execution and golden trace
// comparison: tests provide a known sequence of IDs and verify exact
// output.
//
// Thread-safety: FixedGenerator is safe for concurrent use via internal mutex.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator creates a generator that returns ids in order.
// Generate panics once all ids are consumed; running out means the test
// spawned more contexts than it planned for.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next predetermined ID.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.idx >= len(g.ids) {
		panic(fmt.Sprintf("vm: FixedGenerator exhausted after %d ids", len(g.ids)))
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}

// SeqGenerator produces "prefix-1", "prefix-2", ... without bound.
// Used where a deterministic but open-ended supply of IDs is needed,
// such as scenario runs whose spawn count isn't known up front.
type SeqGenerator struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewSeqGenerator creates a sequential generator with the given prefix.
func NewSeqGenerator(prefix string) *SeqGenerator {
	return &SeqGenerator{prefix: prefix}
}

// Generate returns the next sequential ID.
func (g *SeqGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}
