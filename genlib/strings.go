package genlib

import (
	"github.com/rosecheck/rosecheck/rose"
	"github.com/rosecheck/rosecheck/shrink"
)

// ASCIIString produces a string of up to MaxLen lowercase ASCII letters
// and shrinks by removing one byte at a time.
type ASCIIString struct {
	MaxLen int
}

func (g ASCIIString) Produce(ctx *rose.Context) string {
	// One Rand source for the whole value: Rand re-derives from the same
	// cached atom on every regeneration, but only if every draw for this
	// value comes from the same instance does the *sequence* of draws —
	// length, then each byte — stay stable across regenerations.
	rnd := ctx.Rand()
	n := rnd.Intn(g.MaxLen + 1)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + rnd.Intn(26))
	}
	return string(b)
}

func (g ASCIIString) Shrink(value string) shrink.Iterator[string] {
	return &byteRemoveOneAdapter{inner: shrink.RemoveOne([]byte(value))}
}

type byteRemoveOneAdapter struct {
	inner shrink.Iterator[[]byte]
}

func (a *byteRemoveOneAdapter) HasNext() bool { return a.inner.HasNext() }

func (a *byteRemoveOneAdapter) Next() string { return string(a.inner.Next()) }
