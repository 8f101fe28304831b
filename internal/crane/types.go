package crane

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidGeometry is returned for non-positive or non-finite member
	// lengths, an empty list of tie lengths, or a single configuration that
	// does not form a triangle.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrInvalidLoad is returned for a negative or non-finite load
	ErrInvalidLoad = errors.New("invalid load")

	// ErrDegenerateGeometry is returned when the triangle is numerically
	// degenerate: a law-of-cosines ratio falls outside [-1, 1] by more than
	// CosineTolerance, or the angle opposite the post has zero sine.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrNoValidGeometry is returned when no tie length in a sweep forms a
	// triangle with the post and jib, so no optimum exists.
	ErrNoValidGeometry = errors.New("no valid geometry")
)

// CosineTolerance is how far a law-of-cosines ratio may drift outside
// [-1, 1] before the configuration is rejected instead of clamped.
const CosineTolerance = 1e-9

// Geometry is the fixed part of a jib crane: the post, the jib and the
// vertical load hung at the jib tip. The tie closes the triangle.
//
//	       tie
//	+----------------+ jib tip
//	|            /   |
//	| post   jib     v W
//	|    /
//	+/
type Geometry struct {
	Post float64 // m, fixed reference member
	Jib  float64 // m
	Load float64 // kN, vertical load at the jib tip
}

// Validate checks the fixed dimensions and the load
func (g Geometry) Validate() error {
	if !(g.Post > 0) || math.IsInf(g.Post, 0) {
		return fmt.Errorf("%w: post length must be positive, got %g", ErrInvalidGeometry, g.Post)
	}
	if !(g.Jib > 0) || math.IsInf(g.Jib, 0) {
		return fmt.Errorf("%w: jib length must be positive, got %g", ErrInvalidGeometry, g.Jib)
	}
	if !(g.Load >= 0) || math.IsInf(g.Load, 0) {
		return fmt.Errorf("%w: load must be zero or positive, got %g", ErrInvalidLoad, g.Load)
	}
	return nil
}

// Sample is one solved configuration.
// Each angle is the interior angle opposite the named member, in radians.
type Sample struct {
	Tie float64 // m

	AnglePost float64
	AngleJib  float64
	AngleTie  float64

	ForceJib float64 // kN
	ForceTie float64 // kN
}

// Total returns the summed member force
func (s Sample) Total() float64 {
	return s.ForceJib + s.ForceTie
}

// JibAngle returns the angle opposite the jib in degrees. This is the angle
// between post and tie that the worked examples report as the jib angle.
func (s Sample) JibAngle() float64 {
	return Degrees(s.AngleJib)
}

// Optima holds indices into a valid sample sequence
type Optima struct {
	MinJib   int // smallest jib force
	MinTie   int // smallest tie force
	MinTotal int // smallest jib + tie force
}

// Result holds a complete sweep
type Result struct {
	Geometry Geometry

	// Valid samples in input order
	Samples []Sample

	// Number of tie lengths that did not form a triangle
	Skipped int

	Optima Optima
}

// MinJib returns the sample with the smallest jib force
func (r *Result) MinJib() Sample { return r.Samples[r.Optima.MinJib] }

// MinTie returns the sample with the smallest tie force
func (r *Result) MinTie() Sample { return r.Samples[r.Optima.MinTie] }

// MinTotal returns the sample with the smallest summed force
func (r *Result) MinTotal() Sample { return r.Samples[r.Optima.MinTotal] }

// TieRange returns the shortest and longest valid tie lengths. Samples keep
// the input order, which need not be ascending.
func (r *Result) TieRange() (lo, hi float64) {
	for i, s := range r.Samples {
		if i == 0 || s.Tie < lo {
			lo = s.Tie
		}
		if i == 0 || s.Tie > hi {
			hi = s.Tie
		}
	}
	return lo, hi
}

// Degrees converts radians to degrees
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
