package crane

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Linspace returns n evenly spaced values over the closed interval [lo, hi]
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: sample count must be at least 1, got %d", ErrInvalidGeometry, n)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("%w: interval bounds must be finite", ErrInvalidGeometry)
	}
	if n == 1 {
		return []float64{lo}, nil
	}

	values := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		values[i] = lo + float64(i)*step
	}
	values[n-1] = hi
	return values, nil
}

// Samples solves every tie length and returns the configurations that form a
// triangle, in input order, together with the number skipped. Skipping is
// expected at the ends of a sweep and is not an error; an empty result is
// returned without error when nothing is valid.
func Samples(g Geometry, ties []float64) ([]Sample, int, error) {
	if err := checkSweep(g, ties); err != nil {
		return nil, 0, err
	}

	samples := make([]Sample, 0, len(ties))
	skipped := 0
	for _, t := range ties {
		s, ok, err := evaluate(g, t)
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			skipped++
			continue
		}
		samples = append(samples, s)
	}
	return samples, skipped, nil
}

// Optimize finds the smallest jib, tie and total force. The earliest sample
// wins a tie.
func Optimize(samples []Sample) (Optima, error) {
	if len(samples) == 0 {
		return Optima{}, ErrNoValidGeometry
	}

	var o Optima
	for i := 1; i < len(samples); i++ {
		o = o.merge(i, samples)
	}
	return o, nil
}

// merge folds sample i into the running optima. The comparison is by value
// then by index, so folding in any order gives the same answer.
func (o Optima) merge(i int, samples []Sample) Optima {
	s := samples[i]
	if lessAt(s.ForceJib, i, samples[o.MinJib].ForceJib, o.MinJib) {
		o.MinJib = i
	}
	if lessAt(s.ForceTie, i, samples[o.MinTie].ForceTie, o.MinTie) {
		o.MinTie = i
	}
	if lessAt(s.Total(), i, samples[o.MinTotal].Total(), o.MinTotal) {
		o.MinTotal = i
	}
	return o
}

func lessAt(v float64, i int, best float64, bestIdx int) bool {
	return v < best || (v == best && i < bestIdx)
}

// Sweep solves every tie length and locates the optimum configurations.
// It fails with ErrNoValidGeometry when no tie length forms a triangle.
func Sweep(g Geometry, ties []float64) (*Result, error) {
	samples, skipped, err := Samples(g, ties)
	if err != nil {
		return nil, err
	}

	return newResult(g, samples, skipped)
}

// SweepParallel is Sweep with the samples evaluated by up to workers
// goroutines. Each sample is independent; results land in input order and the
// optima are reduced exactly as in Sweep, so both return the same Result.
// A non-positive workers count uses GOMAXPROCS.
func SweepParallel(ctx context.Context, g Geometry, ties []float64, workers int) (*Result, error) {
	if err := checkSweep(g, ties); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	type slot struct {
		sample Sample
		ok     bool
	}
	slots := make([]slot, len(ties))

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)

	for i, t := range ties {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, ok, err := evaluate(g, t)
			if err != nil {
				return err
			}
			slots[i] = slot{sample: s, ok: ok}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	samples := make([]Sample, 0, len(ties))
	skipped := 0
	for _, sl := range slots {
		if !sl.ok {
			skipped++
			continue
		}
		samples = append(samples, sl.sample)
	}

	return newResult(g, samples, skipped)
}

func newResult(g Geometry, samples []Sample, skipped int) (*Result, error) {
	optima, err := Optimize(samples)
	if err != nil {
		return nil, fmt.Errorf("%w: all %d tie lengths fail the triangle inequality for post %g and jib %g",
			err, skipped, g.Post, g.Jib)
	}

	return &Result{
		Geometry: g,
		Samples:  samples,
		Skipped:  skipped,
		Optima:   optima,
	}, nil
}

func checkSweep(g Geometry, ties []float64) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if len(ties) == 0 {
		return fmt.Errorf("%w: no tie lengths to sweep", ErrInvalidGeometry)
	}
	for _, t := range ties {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return fmt.Errorf("%w: tie length %g is not finite", ErrInvalidGeometry, t)
		}
	}
	return nil
}

// evaluate solves one sweep point. ok is false when the lengths do not form
// a triangle, which includes non-positive tie lengths.
func evaluate(g Geometry, tie float64) (Sample, bool, error) {
	if !IsTriangle(g.Post, g.Jib, tie) {
		return Sample{}, false, nil
	}
	s, err := solve(g, tie)
	if err != nil {
		return Sample{}, false, err
	}
	return s, true, nil
}
