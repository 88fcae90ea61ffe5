package rose

import "github.com/rosecheck/rosecheck/randsrc"

// shrunkSlot is the ambient "proposed shrink" binding: nil until some node
// in the current generation pass proposes a smaller candidate, at which
// point it records which node did.
type shrunkSlot struct {
	node *Node
}

// Context carries the engine's ambient, dynamically-scoped state for one
// generation pass: the node currently being generated, the index of the
// next child to pick from it, the shrink proposal (if any) made so far
// this pass, and the random source. It is an explicit object rather than
// goroutine-local state so that two cases — and therefore two Contexts —
// never interfere with each other even when run concurrently.
type Context struct {
	nodeScope   scope[*Node]
	indexScope  scope[*int]
	shrunkScope scope[*shrunkSlot]

	source *randsrc.Source
}

// NewContext constructs a Context drawing random atoms from source.
func NewContext(source *randsrc.Source) *Context {
	return &Context{source: source}
}

// Source returns the Context's random source. Most callers want Rand
// instead: drawing straight from Source consumes a step of the shared
// per-case stream that is never revisited, so a value built from it is
// only reproducible if nothing else in the tree draws from the same
// stream in between — which Pick's traversal order cannot promise once a
// shrink starts re-walking the tree out of generation order.
func (c *Context) Source() *randsrc.Source {
	return c.source
}

// Rand returns a random source derived from the active node's own atom,
// drawing and caching that atom (via Node.Atom) on first use. Every
// regeneration of the same node re-derives the same source from the same
// cached atom, so a generator that draws several times from the
// returned source while producing one value always reproduces the exact
// same sequence of draws — and therefore the same value — no matter how
// many times, or in what order relative to its siblings, that node gets
// regenerated. This is what the three generator slots' stability
// invariant actually depends on: it holds only for generators that
// route their randomness through Rand rather than Source.
func (c *Context) Rand() *randsrc.Source {
	n := c.currentNode()
	if n == nil {
		panic(&FatalError{Msg: "Rand called outside of an active generation pass"})
	}
	return randsrc.New(int64(n.Atom(c)))
}

// currentNode returns the node presently being generated, or nil outside
// of any Generate call.
func (c *Context) currentNode() *Node {
	if !c.nodeScope.bound() {
		return nil
	}
	return c.nodeScope.top()
}
