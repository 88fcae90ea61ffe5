package genlib

import (
	"github.com/rosecheck/rosecheck/rose"
	"github.com/rosecheck/rosecheck/shrink"
)

// IntRange produces an int uniformly distributed in [Min, Max] and
// shrinks by halving toward zero, clamped back into [Min, Max].
type IntRange struct {
	Min, Max int
}

func (g IntRange) Produce(ctx *rose.Context) int {
	span := g.Max - g.Min + 1
	if span <= 0 {
		return g.Min
	}
	return g.Min + ctx.Rand().Intn(span)
}

func (g IntRange) Shrink(value int) shrink.Iterator[int] {
	return &clampedHalveIterator{inner: shrink.Halve(value), min: g.Min, max: g.Max}
}

// Int is a symmetric convenience over IntRange, producing values in
// [-Bound, Bound].
type Int struct {
	Bound int
}

func (g Int) Produce(ctx *rose.Context) int {
	return IntRange{Min: -g.Bound, Max: g.Bound}.Produce(ctx)
}

func (g Int) Shrink(value int) shrink.Iterator[int] {
	return IntRange{Min: -g.Bound, Max: g.Bound}.Shrink(value)
}

// clampedHalveIterator wraps Halve so that a range-bounded generator never
// offers a candidate outside [min, max], the way gopter's Int64Shrinker
// clamps its halving table to the generator's declared bounds.
type clampedHalveIterator struct {
	inner    shrink.Iterator[int]
	min, max int
}

func (c *clampedHalveIterator) HasNext() bool { return c.inner.HasNext() }

func (c *clampedHalveIterator) Next() int {
	v := c.inner.Next()
	if v < c.min {
		return c.min
	}
	if v > c.max {
		return c.max
	}
	return v
}
