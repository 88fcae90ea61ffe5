// Package shrink provides the finite lazy sequences of candidate simpler
// values a Generator offers once a value has failed a property, plus the
// handful of primitive iterators most generators build on:
//
//   - Null        — the empty sequence.
//   - Halve       — v/2, v/4, … down to (and including) zero.
//   - RemoveOne   — each sub-collection obtained by omitting one element.
//   - Unfold      — the general anamorphism, for iterators the other three
//     do not cover.
//
// An Iterator is consumed at most once, in order; HasNext must be checked
// before every Next, and Next on an exhausted iterator is undefined — the
// engine never does this (see rose.Node), so implementations are free to
// panic rather than guard against it defensively.
package shrink
