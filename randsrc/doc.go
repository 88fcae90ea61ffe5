// Package randsrc provides the engine's random source: a deterministic,
// seeded stream of opaque fixed-width "atoms" consumed by generators.
//
// A Source is cheap to create and is meant to be scoped to exactly one
// test case; reseed by constructing a new Source rather than mutating one
// in place, so that a case's generation history is reproducible from its
// seed alone.
//
// This mirrors the random-parameters object of the real gopter property
// testing library (see GenParameters.Rng / CloneWithSeed in the retrieved
// gopter sources): a *rand.Rand threaded explicitly rather than hidden
// behind a package-level global, so that parallel cases never share
// mutable RNG state.
package randsrc
