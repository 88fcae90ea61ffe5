package check

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rosecheck/rosecheck/randsrc"
	"github.com/rosecheck/rosecheck/rose"
)

// Runner owns the logging and metrics a Run call reports through. It
// holds no per-run state itself, so one Runner can drive many Run calls,
// sequentially or concurrently.
type Runner struct {
	Logger  *slog.Logger
	Metrics *Metrics
}

// NewRunner constructs a Runner with default logging and a fresh Metrics.
func NewRunner() *Runner {
	return &Runner{
		Logger:  defaultLogger(),
		Metrics: NewMetrics(),
	}
}

// Run is a free function rather than a method because Go does not allow a
// method to introduce its own type parameter; T is Property's type
// parameter, not Runner's.
//
// Run generates params.NumCases independent cases — each its own random
// source, context, and rose tree, run across params.Workers goroutines —
// and checks prop against every one. On the first falsified case it
// shrinks that case's tree to a fixpoint (no further Shrink call starts
// once params.MaxShrinks total tries are used) and reports the minimal
// failing value found.
func Run[T any](ctx context.Context, r *Runner, prop Property[T], params RunParameters) Report {
	start := time.Now()

	if params.NumCases < 1 {
		params.NumCases = 1
	}
	workers := params.Workers
	if workers < 1 {
		workers = 1
	}

	seeds := make([]int64, params.NumCases)
	seedSrc := randsrc.NewLocked(params.Seed)
	for i := range seeds {
		seeds[i] = seedSrc.NextSeed()
	}

	type outcome struct {
		value T
		ok    bool
	}
	results := make([]outcome, params.NumCases)

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i := 0; i < params.NumCases; i++ {
		i := i
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src := randsrc.New(seeds[i])
			rctx := rose.NewContext(src)
			root := rose.NewRoot()
			value := rose.Generate[T](root, rctx, prop.Gen)
			results[i] = outcome{value: value, ok: safeCheck(prop.Check, value)}
			r.Metrics.CasesRun.Inc()
			return nil
		})
	}
	_ = group.Wait()

	for i, res := range results {
		if res.ok {
			continue
		}

		r.Logger.Info("property falsified, shrinking",
			"property", prop.Name, "case", i, "seed", seeds[i])

		src := randsrc.New(seeds[i])
		rctx := rose.NewContext(src)
		root := rose.NewRoot()
		rose.Generate[T](root, rctx, prop.Gen)

		checked := func(v T) bool {
			ok := safeCheck(prop.Check, v)
			if ok {
				r.Metrics.ShrinksRejected.Inc()
			} else {
				r.Metrics.ShrinksAccepted.Inc()
			}
			return ok
		}

		tries := 0
		for tries < params.MaxShrinks {
			accepted, roundTries := rose.Shrink[T](root, rctx, prop.Gen, checked)
			tries += roundTries
			if !accepted {
				break
			}
		}

		final := rose.Generate[T](root, rctx, prop.Gen)

		r.Logger.Info("shrink complete",
			"property", prop.Name, "tries", tries, "final", fmt.Sprintf("%v", final))

		return Report{
			RunID:        uuid.New(),
			PropertyName: prop.Name,
			Passed:       false,
			CasesRun:     i + 1,
			FailingValue: fmt.Sprintf("%v", final),
			ShrinkTries:  tries,
			Elapsed:      time.Since(start),
		}
	}

	return Report{
		RunID:        uuid.New(),
		PropertyName: prop.Name,
		Passed:       true,
		CasesRun:     params.NumCases,
		Elapsed:      time.Since(start),
	}
}

// safeCheck runs check and treats a panic as the property being violated
// by this value, the same outcome as Check returning false. A *rose.
// FatalError is a programmer error in the generator, not the property,
// and is re-panicked rather than absorbed.
func safeCheck[T any](check func(T) bool, value T) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if fatal, isFatal := r.(*rose.FatalError); isFatal {
				panic(fatal)
			}
			ok = false
		}
	}()
	return check(value)
}
