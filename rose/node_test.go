package rose_test

import (
	"testing"

	"github.com/rosecheck/rosecheck/randsrc"
	"github.com/rosecheck/rosecheck/rose"
	"github.com/rosecheck/rosecheck/shrink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministicForAFixedSeed(t *testing.T) {
	g := fixedIntGen{start: 42}

	root1 := rose.NewRoot()
	ctx1 := rose.NewContext(randsrc.New(1))
	v1 := rose.Generate[int](root1, ctx1, g)

	root2 := rose.NewRoot()
	ctx2 := rose.NewContext(randsrc.New(1))
	v2 := rose.Generate[int](root2, ctx2, g)

	assert.Equal(t, v1, v2)
	assert.Equal(t, 42, v1)
}

func TestAtomIsDrawnOnceAndCached(t *testing.T) {
	root := rose.NewRoot()
	ctx := rose.NewContext(randsrc.New(7))

	first := root.Atom(ctx)
	second := root.Atom(ctx)
	assert.Equal(t, first, second, "a node's atom must never be redrawn")
}

func TestTypeMismatchPanicsFatally(t *testing.T) {
	root := rose.NewRoot()
	ctx := rose.NewContext(randsrc.New(3))

	rose.Generate[int](root, ctx, fixedIntGen{start: 1})

	// Accept one shrink (1 -> 0) so the node holds an accepted int
	// generator when the string generator arrives.
	accepted, _ := rose.Shrink[int](root, ctx, fixedIntGen{start: 1}, func(int) bool { return false })
	require.True(t, accepted)

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected Generate to panic on a generator type change while an accepted generator is live")
		_, ok := r.(*rose.FatalError)
		assert.True(t, ok, "expected a *rose.FatalError, got %T: %v", r, r)
	}()

	rose.Generate[string](root, ctx, constStringGen{value: "oops"})
}

type constStringGen struct{ value string }

func (g constStringGen) Produce(ctx *rose.Context) string { return g.value }
func (g constStringGen) Shrink(value string) shrink.Iterator[string] {
	return shrink.Null[string]()
}

func TestPickOutsideGenerateFailsFatally(t *testing.T) {
	ctx := rose.NewContext(randsrc.New(5))

	assert.Panics(t, func() {
		rose.Pick[int](ctx, fixedIntGen{start: 1})
	})
}

func TestPickCreatesAndReusesChildren(t *testing.T) {
	root := rose.NewRoot()
	ctx := rose.NewContext(randsrc.New(9))

	v := rose.Generate[[2]int](root, ctx, pairIntGen{aStart: 3, bStart: 5})
	assert.Equal(t, [2]int{3, 5}, v)

	// Regenerating should reuse the same two children, not grow the tree.
	v2 := rose.Generate[[2]int](root, ctx, pairIntGen{aStart: 3, bStart: 5})
	assert.Equal(t, [2]int{3, 5}, v2)
	assert.Len(t, root.Example(ctx), 2, "root must still have exactly two children")
}
