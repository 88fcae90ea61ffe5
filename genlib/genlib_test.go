package genlib_test

import (
	"testing"

	"github.com/rosecheck/rosecheck/genlib"
	"github.com/rosecheck/rosecheck/randsrc"
	"github.com/rosecheck/rosecheck/rose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntRangeProducesWithinBounds(t *testing.T) {
	g := genlib.IntRange{Min: -5, Max: 5}
	ctx := rose.NewContext(randsrc.New(11))

	for i := 0; i < 50; i++ {
		root := rose.NewRoot()
		v := rose.Generate[int](root, ctx, g)
		assert.GreaterOrEqual(t, v, -5)
		assert.LessOrEqual(t, v, 5)
	}
}

func TestIntRangeShrinksTowardZeroClamped(t *testing.T) {
	g := genlib.IntRange{Min: 2, Max: 100}
	it := g.Shrink(40)

	require.True(t, it.HasNext())
	assert.Equal(t, 20, it.Next())
	require.True(t, it.HasNext())
	assert.Equal(t, 10, it.Next())
	require.True(t, it.HasNext())
	assert.Equal(t, 5, it.Next())
	require.True(t, it.HasNext())
	assert.Equal(t, 2, it.Next(), "candidate 2 (unclamped 2) stays at the lower bound")
	require.True(t, it.HasNext())
	assert.Equal(t, 2, it.Next(), "unclamped 1 clamps up to the lower bound")
	require.True(t, it.HasNext())
	assert.Equal(t, 2, it.Next(), "unclamped 0 clamps up to the lower bound")
	assert.False(t, it.HasNext())
}

func TestBoolShrinksTrueToFalseOnly(t *testing.T) {
	it := genlib.Bool{}.Shrink(true)
	require.True(t, it.HasNext())
	assert.False(t, it.Next())
	assert.False(t, it.HasNext())

	assert.False(t, genlib.Bool{}.Shrink(false).HasNext())
}

func TestSliceOfRespectsMaxLen(t *testing.T) {
	g := genlib.SliceOf[int]{Element: genlib.IntRange{Min: 0, Max: 9}, MaxLen: 5}
	ctx := rose.NewContext(randsrc.New(22))

	for i := 0; i < 30; i++ {
		root := rose.NewRoot()
		v := rose.Generate[[]int](root, ctx, g)
		assert.LessOrEqual(t, len(v), 5)
		for _, e := range v {
			assert.GreaterOrEqual(t, e, 0)
			assert.LessOrEqual(t, e, 9)
		}
	}
}

func TestASCIIStringShrinksByRemovingOneByte(t *testing.T) {
	g := genlib.ASCIIString{MaxLen: 10}
	it := g.Shrink("abc")

	require.True(t, it.HasNext())
	assert.Equal(t, "bc", it.Next())
	require.True(t, it.HasNext())
	assert.Equal(t, "ac", it.Next())
	require.True(t, it.HasNext())
	assert.Equal(t, "ab", it.Next())
	assert.False(t, it.HasNext())
}
