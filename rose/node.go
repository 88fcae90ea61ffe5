package rose

import (
	"reflect"

	"github.com/rosecheck/rosecheck/randsrc"
)

// Node is one site in the generation tree. Each node owns at most one
// random atom (drawn lazily, on first request, and never redrawn), a
// fixed set of children addressed by pick order, and up to three erased
// generator slots:
//
//   - last     — the generator most recently passed to Generate here.
//   - accepted — a snapshot of last taken when shrinking first starts at
//     this node, replaced by each accepted shrink.
//   - shrunk   — a candidate currently on trial, not yet accepted.
//
// The active generator at any point is the first non-nil of shrunk,
// accepted, last, in that order. A Node is never copied by value; its
// children are re-parented in place rather than moved.
type Node struct {
	parent   *Node
	children []*Node

	hasAtom bool
	atom    randsrc.Atom

	last     Any
	accepted Any
	shrunk   Any

	shrinkIter anyIterator
}

// NewRoot constructs a fresh root node with no parent.
func NewRoot() *Node {
	return &Node{}
}

func newChild(parent *Node) *Node {
	return &Node{parent: parent}
}

// Atom returns this node's random atom, drawing one from ctx the first
// time it is requested and caching it forever after.
func (n *Node) Atom(ctx *Context) randsrc.Atom {
	if !n.hasAtom {
		n.atom = ctx.source.NextAtom()
		n.hasAtom = true
	}
	return n.atom
}

func (n *Node) active() Any {
	switch {
	case n.shrunk != nil:
		return n.shrunk
	case n.accepted != nil:
		return n.accepted
	default:
		return n.last
	}
}

// acceptShrink promotes this node's shrunk candidate to accepted and
// clears the shrink iterator, so the next attempt to shrink this node
// starts a fresh iterator from the newly accepted baseline.
func (n *Node) acceptShrink() {
	if n.shrunk == nil {
		return
	}
	n.accepted = n.shrunk
	n.shrunk = nil
	n.shrinkIter = nil
}

func (n *Node) index() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

// Depth returns the node's distance from the root (0 for the root).
func (n *Node) Depth() int {
	if n.parent == nil {
		return 0
	}
	return n.parent.Depth() + 1
}

func (n *Node) description() string {
	active := n.active()
	if active == nil {
		return "<empty>"
	}
	return active.typeName()
}

// Path renders the chain of generator names from the root down to n, for
// use in diagnostics and FatalError messages.
func (n *Node) Path() string {
	if n.parent == nil {
		return "/" + n.description()
	}
	return n.parent.Path() + "/" + n.description()
}

// regenerate is the single point where an erased Any slot is cast back to
// a concrete Generator[T] and run. It installs n as the ambient current
// node (and resets the ambient child-pick cursor) for the duration of the
// call, so that nested Pick calls address the right children.
func regenerate[T any](n *Node, ctx *Context) T {
	popNode := ctx.nodeScope.push(n)
	defer popNode()

	idx := 0
	popIdx := ctx.indexScope.push(&idx)
	defer popIdx()

	active := n.active()
	if active == nil {
		panic(&FatalError{Path: n.Path(), Msg: "regenerate called on a node with no generator installed"})
	}

	typed, ok := active.(erased[T])
	if !ok {
		panic(newTypeMismatch(n, reflect.TypeOf((*T)(nil)).Elem().String(), active.typeName()))
	}
	return typed.g.Produce(ctx)
}

// Generate runs g at node n using ctx's ambient bindings, installing g as
// n's "last" generator. If a shrink is in progress (ctx's shrunk binding
// is bound and no node has proposed yet this pass) and n has — or can
// start — a live shrink iterator, Generate also attempts to advance that
// iterator by one candidate before producing n's value, so that a single
// top-down pass both regenerates the tree and offers exactly one node's
// next shrink candidate, innermost descendant first.
func Generate[T any](n *Node, ctx *Context, g Generator[T]) T {
	n.last = erase(g)

	if ctx.shrunkScope.bound() {
		slot := ctx.shrunkScope.top()
		if slot.node == nil {
			if n.shrinkIter == nil {
				value := regenerate[T](n, ctx)
				if slot.node != nil {
					// A descendant proposed while we regenerated; it gets
					// priority (innermost-first), so we don't start our
					// own iterator this pass.
					return value
				}

				n.shrinkIter = erasedIterator[T]{it: g.Shrink(value)}
				if n.accepted == nil {
					n.accepted = erase(g)
				}
			}

			if n.shrinkIter.hasNext() {
				candidate := n.shrinkIter.nextAny().(T)
				n.shrunk = erase[T](Const[T]{Value: candidate})
				slot.node = n
			} else {
				n.shrunk = nil
			}
		}
	}

	return regenerate[T](n, ctx)
}

// Pick delegates production of a sub-value to a child of the ambient
// current node, creating that child on first visit. The child addressed
// is determined by pick order within the current regenerate call, which
// is why Pick may only be called from inside a Generate/regenerate
// traversal.
func Pick[T any](ctx *Context, g Generator[T]) T {
	parent := ctx.currentNode()
	if parent == nil {
		panic(&FatalError{Msg: "Pick called outside of an active generation pass"})
	}

	idx := ctx.indexScope.top()
	if *idx >= len(parent.children) {
		parent.children = append(parent.children, newChild(parent))
	}
	child := parent.children[*idx]
	*idx++

	return Generate[T](child, ctx, g)
}

// Shrink performs a single shrink pass over the tree rooted at n: it walks
// down looking for one node willing to propose a smaller candidate
// (innermost descendant first), tries that candidate against ok, and
// either accepts it and returns immediately, or rejects it and tries
// again — asking the same node for its next candidate, or ceding priority
// to a sibling — until some pass proposes nothing at all.
//
// A single call therefore accepts at most one shrink. Callers seeking a
// fixpoint call Shrink repeatedly (see ShrinkToFixpoint) until it reports
// accepted=false.
func Shrink[T any](n *Node, ctx *Context, g Generator[T], ok func(T) bool) (accepted bool, tries int) {
	for {
		tries++

		slot := &shrunkSlot{}
		value := func() T {
			pop := ctx.shrunkScope.push(slot)
			defer pop()
			return Generate[T](n, ctx, g)
		}()

		if slot.node == nil {
			return false, tries
		}
		if !ok(value) {
			slot.node.acceptShrink()
			return true, tries
		}
	}
}

// ShrinkToFixpoint repeatedly calls Shrink until no further candidate can
// be accepted, summing tries across every call. This is the convenience a
// driver uses to reach a minimal failing case; Shrink itself stays
// faithful to the single-proposal contract a single generation pass can
// make.
func ShrinkToFixpoint[T any](n *Node, ctx *Context, g Generator[T], ok func(T) bool) (acceptedAny bool, totalTries int) {
	for {
		accepted, tries := Shrink[T](n, ctx, g, ok)
		totalTries += tries
		if !accepted {
			return acceptedAny, totalTries
		}
		acceptedAny = true
	}
}

// Example renders the current value of every child of n, by regenerating
// each one without disturbing any shrink in progress. It is meant for
// diagnostics: printing the sub-values that made up a failing case.
func (n *Node) Example(ctx *Context) []string {
	out := make([]string, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c.stringValue(ctx))
	}
	return out
}

func (n *Node) stringValue(ctx *Context) string {
	popNode := ctx.nodeScope.push(n)
	defer popNode()

	idx := 0
	popIdx := ctx.indexScope.push(&idx)
	defer popIdx()

	active := n.active()
	if active == nil {
		return ""
	}
	return active.produceString(ctx)
}
