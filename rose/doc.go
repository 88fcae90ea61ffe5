// Package rose implements the generation-and-shrinking engine: a persistent
// tree of Nodes, the Generator[T] protocol those nodes run, and the ambient
// Context that threads a random source and a handful of scoped bindings
// through a generation pass without resorting to package-level globals.
//
// A Node remembers, across repeated calls, which generator last ran there,
// which value it settled on, and — while a shrink is in progress — which
// smaller candidate is currently on trial. That memory is what lets Shrink
// retry just the one sub-value that matters without regenerating everything
// above or beside it.
//
// Generator[T] and its type-erased form live here rather than in a separate
// package because a Node's generator slots are heterogeneous (a node in the
// middle of a composite value's tree may hold a Generator[int] while its
// sibling holds a Generator[string]) and because regenerating a node needs
// Context, which in turn needs to name a Node — splitting the two across
// packages would just trade one import cycle for an awkward one.
package rose
