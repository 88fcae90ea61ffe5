package check

import "time"

// RunParameters are the driver's cadence knobs: how many cases to run,
// what master seed to derive per-case seeds from, how many shrink passes
// to allow before giving up, and how many cases to run concurrently.
// Named and shaped after gopter's TestParameters.
type RunParameters struct {
	NumCases   int
	Seed       int64
	MaxShrinks int
	Workers    int
}

// DefaultRunParameters returns sane defaults, seeded from the current
// time so ad-hoc runs vary from invocation to invocation.
func DefaultRunParameters() RunParameters {
	return RunParameters{
		NumCases:   100,
		Seed:       time.Now().UnixNano(),
		MaxShrinks: 1000,
		Workers:    1,
	}
}

// DefaultRunParametersWithSeed is DefaultRunParameters with a caller-chosen
// seed, for reproducible runs.
func DefaultRunParametersWithSeed(seed int64) RunParameters {
	p := DefaultRunParameters()
	p.Seed = seed
	return p
}
