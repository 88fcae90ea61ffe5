package rose

import (
	"fmt"
	"reflect"

	"github.com/rosecheck/rosecheck/shrink"
)

// Generator is the protocol a generator of T honors: Produce draws a value
// of T using ctx (typically by drawing from ctx.Rand, or by calling Pick
// to delegate to a sub-generator), and Shrink offers a finite sequence of
// candidates simpler than value.
type Generator[T any] interface {
	Produce(ctx *Context) T
	Shrink(value T) shrink.Iterator[T]
}

// Any is the type-erased form every node slot actually stores. A node's
// three generator slots are heterogeneous across a tree — a node holding a
// Generator[int] may sit beside one holding a Generator[string] — so they
// cannot be stored behind Generator[T] directly. The one place erasure is
// undone is regenerate, which type-asserts back to the concrete erased[T].
type Any interface {
	produceAny(ctx *Context) any
	produceString(ctx *Context) string
	shrinkAny(value any) anyIterator
	typeName() string
}

// anyIterator is the type-erased form of shrink.Iterator[T], used only to
// let a Node hold an in-progress shrink iterator without naming its type.
type anyIterator interface {
	hasNext() bool
	nextAny() any
}

type erased[T any] struct {
	g Generator[T]
}

func erase[T any](g Generator[T]) Any {
	return erased[T]{g: g}
}

func (e erased[T]) produceAny(ctx *Context) any {
	return e.g.Produce(ctx)
}

func (e erased[T]) produceString(ctx *Context) string {
	return fmt.Sprintf("%v", e.g.Produce(ctx))
}

func (e erased[T]) shrinkAny(value any) anyIterator {
	v, ok := value.(T)
	if !ok {
		panic(fmt.Sprintf("rose: shrinkAny called with value of type %T, generator expects %T", value, v))
	}
	return erasedIterator[T]{it: e.g.Shrink(v)}
}

func (e erased[T]) typeName() string {
	return reflect.TypeOf(e.g).String()
}

type erasedIterator[T any] struct {
	it shrink.Iterator[T]
}

func (w erasedIterator[T]) hasNext() bool { return w.it.HasNext() }
func (w erasedIterator[T]) nextAny() any  { return w.it.Next() }
