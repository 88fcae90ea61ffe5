package rose

import "github.com/rosecheck/rosecheck/shrink"

// Const is the constant generator the engine installs internally whenever
// it proposes a specific shrink candidate as a node's shrunk slot: it
// always produces Value regardless of ctx, and offers no further
// candidates of its own (a proposed value is re-derived from the real
// generator's Shrink method, not from Const).
type Const[T any] struct {
	Value T
}

func (c Const[T]) Produce(ctx *Context) T { return c.Value }

func (c Const[T]) Shrink(value T) shrink.Iterator[T] { return shrink.Null[T]() }
