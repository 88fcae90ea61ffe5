package genlib

import (
	"github.com/rosecheck/rosecheck/rose"
	"github.com/rosecheck/rosecheck/shrink"
)

// Bool produces a uniformly distributed bool and shrinks true toward
// false (false has nothing simpler to offer).
type Bool struct{}

func (Bool) Produce(ctx *rose.Context) bool {
	return ctx.Rand().Intn(2) == 1
}

func (Bool) Shrink(value bool) shrink.Iterator[bool] {
	if !value {
		return shrink.Null[bool]()
	}
	return &falseOnceIterator{}
}

type falseOnceIterator struct{ done bool }

func (f *falseOnceIterator) HasNext() bool { return !f.done }

func (f *falseOnceIterator) Next() bool {
	f.done = true
	return false
}
