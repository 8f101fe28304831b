package crane

import (
	"fmt"
	"math"
)

// IsTriangle reports whether three lengths form a non-degenerate triangle:
// each side strictly shorter than the sum of the other two.
func IsTriangle(a, b, c float64) bool {
	return a < b+c && b < a+c && c < a+b
}

// Solve resolves the load into jib and tie forces for one tie length.
//
// The angles come from the law of cosines; the angle opposite the jib is
// π minus the other two so the three always sum to π. The forces follow from
// the law of sines with the angle opposite the post as common denominator.
func Solve(g Geometry, tie float64) (Sample, error) {
	if err := g.Validate(); err != nil {
		return Sample{}, err
	}
	if !(tie > 0) || math.IsInf(tie, 0) {
		return Sample{}, fmt.Errorf("%w: tie length must be positive, got %g", ErrInvalidGeometry, tie)
	}
	if !IsTriangle(g.Post, g.Jib, tie) {
		return Sample{}, fmt.Errorf("%w: post %g, jib %g and tie %g do not form a triangle", ErrInvalidGeometry, g.Post, g.Jib, tie)
	}
	return solve(g, tie)
}

// solve assumes validated inputs that satisfy the triangle inequality
func solve(g Geometry, tie float64) (Sample, error) {
	p, j, t := g.Post, g.Jib, tie

	cosPost, err := clampCosine((j*j + t*t - p*p) / (2 * j * t))
	if err != nil {
		return Sample{}, fmt.Errorf("angle opposite post (tie %g): %w", tie, err)
	}
	cosTie, err := clampCosine((j*j + p*p - t*t) / (2 * j * p))
	if err != nil {
		return Sample{}, fmt.Errorf("angle opposite tie (tie %g): %w", tie, err)
	}

	s := Sample{Tie: tie}
	s.AnglePost = math.Acos(cosPost)
	s.AngleTie = math.Acos(cosTie)
	s.AngleJib = math.Pi - s.AnglePost - s.AngleTie

	sinRef := math.Sin(s.AnglePost)
	if sinRef == 0 {
		return Sample{}, fmt.Errorf("%w: angle opposite post is zero for tie %g", ErrDegenerateGeometry, tie)
	}

	s.ForceJib = g.Load * math.Sin(s.AngleJib) / sinRef
	s.ForceTie = g.Load * math.Sin(s.AngleTie) / sinRef

	return s, nil
}

// clampCosine pulls a ratio that drifted just outside [-1, 1] back onto the
// boundary and rejects anything further out.
func clampCosine(ratio float64) (float64, error) {
	switch {
	case math.IsNaN(ratio):
		return 0, fmt.Errorf("%w: cosine ratio is NaN", ErrDegenerateGeometry)
	case ratio > 1:
		if ratio-1 > CosineTolerance {
			return 0, fmt.Errorf("%w: cosine ratio %g exceeds 1", ErrDegenerateGeometry, ratio)
		}
		return 1, nil
	case ratio < -1:
		if -1-ratio > CosineTolerance {
			return 0, fmt.Errorf("%w: cosine ratio %g below -1", ErrDegenerateGeometry, ratio)
		}
		return -1, nil
	}
	return ratio, nil
}
