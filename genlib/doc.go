// Package genlib supplies a small library of ready-made generators for
// primitive and collection types, each implementing rose.Generator[T] and
// grounded in the same halving and remove-one shrink strategies the
// engine's own tests exercise: Int and IntRange halve toward zero (and
// clamp back into range), Bool shrinks true to false, SliceOf and
// ASCIIString remove one element/byte at a time.
package genlib
