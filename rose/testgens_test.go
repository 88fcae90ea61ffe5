package rose_test

import (
	"github.com/rosecheck/rosecheck/rose"
	"github.com/rosecheck/rosecheck/shrink"
)

// fixedIntGen always produces start (until a shrink supersedes it) and
// shrinks any value by halving toward zero.
type fixedIntGen struct{ start int }

func (g fixedIntGen) Produce(ctx *rose.Context) int { return g.start }

func (g fixedIntGen) Shrink(value int) shrink.Iterator[int] {
	return shrink.Halve(value)
}

// pairIntGen picks two independent ints as children and never proposes a
// shrink of its own; shrinking the pair happens entirely through its
// children, which is what lets them shrink independently.
type pairIntGen struct {
	aStart, bStart int
}

func (g pairIntGen) Produce(ctx *rose.Context) [2]int {
	a := rose.Pick[int](ctx, fixedIntGen{start: g.aStart})
	b := rose.Pick[int](ctx, fixedIntGen{start: g.bStart})
	return [2]int{a, b}
}

func (g pairIntGen) Shrink(value [2]int) shrink.Iterator[[2]int] {
	return shrink.Null[[2]int]()
}

// fixedSliceGen always produces a copy of values and shrinks by removing
// one element at a time.
type fixedSliceGen struct{ values []int }

func (g fixedSliceGen) Produce(ctx *rose.Context) []int {
	out := make([]int, len(g.values))
	copy(out, g.values)
	return out
}

func (g fixedSliceGen) Shrink(value []int) shrink.Iterator[[]int] {
	return shrink.RemoveOne(value)
}
