// Package rosecheck is the root of a property-based testing engine built
// around a persistent rose tree of generation sites.
//
// A rose tree (package rose) records, for every sub-value of a composite
// generated value, how that sub-value was produced: which generator ran,
// which random atom it consumed, and — once a shrink is under way — which
// smaller candidate is currently on trial. That bookkeeping is what lets
// the engine shrink a single sub-value in place, without replaying the
// generation of the whole structure and without losing the correlation
// between a failing case's surface value and the internal choices that
// produced it.
//
//   - randsrc  — the deterministic, seeded atom stream generators consume.
//   - shrink   — finite lazy sequences of simpler candidate values.
//   - rose     — the Generator[T] protocol, its type-erased form, the
//     ambient context, and the rose node itself: generate, pick, shrink,
//     example, print.
//   - genlib   — ready-made generators for primitive and collection types.
//   - check    — the property-test driver: run cases, shrink on failure.
//
// cmd/rosecheck wires the above into a small CLI for ad-hoc runs.
package rosecheck
