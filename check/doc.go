// Package check is the property-test driver built on top of rose: it runs
// a Property across a number of independently generated cases, and on the
// first falsified case shrinks that case's tree to a fixpoint and reports
// the minimal failing value it found.
//
// RunParameters, Report, and the shape of Run are modeled on gopter's
// TestParameters and Properties.TestingRun (the real gopter sources
// retrieved for this module): a seed, a case count, and a worker count
// driving independent goroutines, each with its own random source and
// rose tree so that no case's generation history can leak into another's.
package check
