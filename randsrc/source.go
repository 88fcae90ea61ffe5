package randsrc

import (
	"math/rand"
	"sync"
)

// Atom is a single opaque token drawn from a Source. Generators treat it
// as an unbounded fixed-width unsigned integer; the engine never inspects
// its bits, only whether it has been drawn.
type Atom = uint64

// Source is a deterministic token stream seeded once per test case.
// A Source is not safe for concurrent use — the driver gives each case
// (and therefore each goroutine, when cases run in parallel) its own
// Source.
type Source struct {
	rng  *rand.Rand
	seed int64
}

// New constructs a Source deterministically seeded from seed. Equal seeds
// produce equal atom streams, which is what makes a shrunk value's
// re-derivation from the same root node reproducible.
func New(seed int64) *Source {
	return &Source{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed this Source was constructed with.
func (s *Source) Seed() int64 {
	return s.seed
}

// NextAtom returns the next atom in the stream.
func (s *Source) NextAtom() Atom {
	return s.rng.Uint64()
}

// Intn returns a pseudo-random non-negative int in [0, n) drawn from this
// Source's stream. A convenience for generators that want a bounded index
// rather than a raw atom; it consumes one or more steps of the underlying
// stream (math/rand rejects and redraws values that would bias the result).
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// LockedSource wraps a Source with a mutex, for the one legitimate case
// where a single stream must be shared: check.Run seeding multiple
// independent per-case Sources from one master stream. Named and shaped
// after gopter's NewLockedSource.
type LockedSource struct {
	mu  sync.Mutex
	src *Source
}

// NewLocked constructs a LockedSource seeded from seed.
func NewLocked(seed int64) *LockedSource {
	return &LockedSource{src: New(seed)}
}

// NextSeed derives the next per-case seed from the shared stream.
func (l *LockedSource) NextSeed() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return int64(l.src.NextAtom())
}
