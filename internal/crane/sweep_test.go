package crane

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	v, err := Linspace(5, 20, 100)
	require.NoError(t, err)
	require.Len(t, v, 100)
	assert.Equal(t, 5.0, v[0])
	assert.Equal(t, 20.0, v[99])
	assert.InDelta(t, 5+15.0/99, v[1], 1e-12)

	v, err = Linspace(3, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, v)

	v, err = Linspace(2, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 2}, v)

	_, err = Linspace(0, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = Linspace(math.NaN(), 1, 10)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestSweepSingleTie(t *testing.T) {
	r, err := Sweep(standard, []float64{9})
	require.NoError(t, err)
	require.Len(t, r.Samples, 1)
	assert.Zero(t, r.Skipped)
	assert.Equal(t, Optima{}, r.Optima)

	assert.InEpsilon(t, 32.5, r.MinJib().ForceJib, 1e-9)
	assert.InEpsilon(t, 22.5, r.MinTie().ForceTie, 1e-9)
	assert.Equal(t, 9.0, r.MinTotal().Tie)
}

func TestSweepRange(t *testing.T) {
	ties, err := Linspace(5, 20, 100)
	require.NoError(t, err)

	r, err := Sweep(standard, ties)
	require.NoError(t, err)

	// Only t = 5 fails: 13 = 8 + 5
	assert.Len(t, r.Samples, 99)
	assert.Equal(t, 1, r.Skipped)
	assert.Equal(t, ties[1], r.Samples[0].Tie)

	// Tie force and total grow with the tie length
	assert.Equal(t, 0, r.Optima.MinTie)
	assert.Equal(t, 0, r.Optima.MinTotal)

	// The jib force is W·J/P for every tie length
	for _, s := range r.Samples {
		assert.InEpsilon(t, 32.5, s.ForceJib, 1e-9)
		assert.InDelta(t, math.Pi, s.AnglePost+s.AngleTie+s.AngleJib, 1e-12)
	}
	assert.InEpsilon(t, 32.5, r.MinJib().ForceJib, 1e-9)
}

func TestSweepOptimaAreMinimal(t *testing.T) {
	g := Geometry{Post: 5, Jib: 7, Load: 12}
	ties, err := Linspace(1, 13, 250)
	require.NoError(t, err)

	r, err := Sweep(g, ties)
	require.NoError(t, err)

	for i, s := range r.Samples {
		assert.LessOrEqual(t, r.MinJib().ForceJib, s.ForceJib, "sample %d", i)
		assert.LessOrEqual(t, r.MinTie().ForceTie, s.ForceTie, "sample %d", i)
		assert.LessOrEqual(t, r.MinTotal().Total(), s.Total(), "sample %d", i)
	}
}

func TestSweepNoValidGeometry(t *testing.T) {
	_, err := Sweep(standard, []float64{1, 2, 3, 25, 30})
	assert.ErrorIs(t, err, ErrNoValidGeometry)

	_, err = SweepParallel(context.Background(), standard, []float64{1, 2, 3}, 2)
	assert.ErrorIs(t, err, ErrNoValidGeometry)
}

func TestSweepInvalidInput(t *testing.T) {
	_, err := Sweep(standard, nil)
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = Sweep(standard, []float64{9, math.NaN()})
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = Sweep(Geometry{Post: 8, Jib: 13, Load: -20}, []float64{9})
	assert.ErrorIs(t, err, ErrInvalidLoad)

	_, err = Sweep(Geometry{Post: 0, Jib: 13, Load: 20}, []float64{9})
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestSamplesKeepsInputOrder(t *testing.T) {
	samples, skipped, err := Samples(standard, []float64{12, 2, 9, 30, 6})
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	require.Len(t, samples, 3)
	assert.Equal(t, 12.0, samples[0].Tie)
	assert.Equal(t, 9.0, samples[1].Tie)
	assert.Equal(t, 6.0, samples[2].Tie)

	samples, skipped, err = Samples(standard, []float64{1, 2})
	require.NoError(t, err)
	assert.Empty(t, samples)
	assert.Equal(t, 2, skipped)
}

func TestTieRange(t *testing.T) {
	r, err := Sweep(standard, []float64{12, 2, 9, 20, 6})
	require.NoError(t, err)

	lo, hi := r.TieRange()
	assert.Equal(t, 6.0, lo)
	assert.Equal(t, 20.0, hi)

	lo, hi = (&Result{}).TieRange()
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}

func TestOptimizeTieBreak(t *testing.T) {
	samples := []Sample{
		{Tie: 1, ForceJib: 5, ForceTie: 3},
		{Tie: 2, ForceJib: 4, ForceTie: 3},
		{Tie: 3, ForceJib: 4, ForceTie: 4},
	}

	o, err := Optimize(samples)
	require.NoError(t, err)
	assert.Equal(t, 1, o.MinJib, "earliest of equal jib forces")
	assert.Equal(t, 0, o.MinTie, "earliest of equal tie forces")
	assert.Equal(t, 1, o.MinTotal)

	_, err = Optimize(nil)
	assert.ErrorIs(t, err, ErrNoValidGeometry)
}

func TestSweepParallelMatchesSweep(t *testing.T) {
	ties, err := Linspace(0.5, 25, 1000)
	require.NoError(t, err)

	want, err := Sweep(standard, ties)
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 3, 16} {
		got, err := SweepParallel(context.Background(), standard, ties, workers)
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers %d", workers)
	}
}

func TestSweepParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ties, err := Linspace(5, 20, 100)
	require.NoError(t, err)

	_, err = SweepParallel(ctx, standard, ties, 4)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSweepIsIdempotent(t *testing.T) {
	ties, err := Linspace(5, 20, 100)
	require.NoError(t, err)

	a, err := Sweep(standard, ties)
	require.NoError(t, err)
	b, err := Sweep(standard, ties)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
