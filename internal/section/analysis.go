package section

import (
	"fmt"
	"math"
)

// Analyze computes the centroid and second moments of a composite section.
//
// The parts are accumulated in a single pass. ΣA·y² is taken from each part's
// own offset, so the moment about the reference axis does not depend on the
// centroid; only the reduction to the centroidal axis does.
func Analyze(shapes []Shape) (*Result, error) {
	if len(shapes) == 0 {
		return nil, fmt.Errorf("%w: section has no parts", ErrInvalidGeometry)
	}

	result := &Result{
		Parts: make([]Part, 0, len(shapes)),
	}

	// Offsets are also summed relative to the first part. The centroidal
	// reduction uses these shifted sums, which keeps a single part exact and
	// avoids cancelling two large numbers for sections far from the axis.
	pivot := shapes[0].Offset
	var sumAd, sumAd2 float64

	for _, s := range shapes {
		if err := s.Validate(); err != nil {
			return nil, err
		}

		ay := s.Area * s.Offset
		ay2 := ay * s.Offset
		result.Parts = append(result.Parts, Part{Shape: s, Ay: ay, Ay2: ay2})

		result.TotalArea += s.Area
		result.SumAy += ay
		result.SumAy2 += ay2
		result.SumOwnI += s.OwnI

		d := s.Offset - pivot
		sumAd += s.Area * d
		sumAd2 += s.Area * d * d
	}

	if result.TotalArea <= 0 || math.IsInf(result.TotalArea, 0) {
		return nil, fmt.Errorf("%w: total area %g", ErrInvalidGeometry, result.TotalArea)
	}

	shift := sumAd / result.TotalArea
	result.Centroid = pivot + shift

	// Parallel-axis theorem about the reference axis
	result.IReference = result.SumOwnI + result.SumAy2

	// I_c = I_ref − A·ȳ², written about the pivot
	transfer := sumAd2 - result.TotalArea*shift*shift
	if transfer < 0 {
		// Σ A(y−ȳ)² cannot be negative; anything below zero is rounding.
		transfer = 0
	}
	result.ICentroid = result.SumOwnI + transfer

	result.RadiusOfGyration = math.Sqrt(result.ICentroid / result.TotalArea)

	return result, nil
}

// SectionModulus returns the elastic section moduli to the extreme fibres
// located at bottom and top (both measured from the reference axis).
func (r *Result) SectionModulus(bottom, top float64) (zBottom, zTop float64) {
	if yb := r.Centroid - bottom; yb > 0 {
		zBottom = r.ICentroid / yb
	}
	if yt := top - r.Centroid; yt > 0 {
		zTop = r.ICentroid / yt
	}
	return zBottom, zTop
}

// Extent returns the lowest and highest points of the section. ok is false
// unless every part has an outline, since a part given only by its area and
// offset has no known extreme fibre.
func (r *Result) Extent() (bottom, top float64, ok bool) {
	if len(r.Parts) == 0 {
		return 0, 0, false
	}
	for i, p := range r.Parts {
		if !p.HasOutline() {
			return 0, 0, false
		}
		_, _, y0, y1 := p.Bounds()
		if i == 0 || y0 < bottom {
			bottom = y0
		}
		if i == 0 || y1 > top {
			top = y1
		}
	}
	return bottom, top, true
}
