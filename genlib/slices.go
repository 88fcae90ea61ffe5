package genlib

import (
	"github.com/rosecheck/rosecheck/rose"
	"github.com/rosecheck/rosecheck/shrink"
)

// SliceOf produces a slice of up to MaxLen elements, each picked from
// Element at its own child node, and shrinks by removing one element at
// a time (the individual elements are not shrunk further; that is a
// refinement left to callers composing their own generator, not something
// this library primitive attempts).
type SliceOf[T any] struct {
	Element rose.Generator[T]
	MaxLen  int
}

func (g SliceOf[T]) Produce(ctx *rose.Context) []T {
	n := ctx.Rand().Intn(g.MaxLen + 1)
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = rose.Pick[T](ctx, g.Element)
	}
	return out
}

func (g SliceOf[T]) Shrink(value []T) shrink.Iterator[[]T] {
	return shrink.RemoveOne(value)
}
