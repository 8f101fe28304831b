package section

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry is returned when a composite section cannot be analyzed:
// no parts, a non-positive area or a negative own second moment.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Shape is one sub-shape of a composite section.
//
// Offsets are signed distances from the chosen reference axis (for example
// the bottom face of a girder) to the centroid of the shape. OwnI is the
// second moment of area of the shape about its own centroidal axis, parallel
// to the reference axis.
type Shape struct {
	Label  string  `json:"label" yaml:"label"`
	Area   float64 `json:"area" yaml:"area"`     // mm²
	Offset float64 `json:"offset" yaml:"offset"` // mm from reference axis
	OwnI   float64 `json:"own_i" yaml:"own_i"`   // mm⁴ about own centroid

	// Outline, when known. Only used for drawing.
	Outline []Point `json:"outline,omitempty" yaml:"outline,omitempty"`
}

// Validate checks that the shape can take part in an analysis
func (s Shape) Validate() error {
	if math.IsNaN(s.Area) || math.IsInf(s.Area, 0) || s.Area <= 0 {
		return fmt.Errorf("%w: %q must have positive area, got %g", ErrInvalidGeometry, s.Label, s.Area)
	}
	if math.IsNaN(s.Offset) || math.IsInf(s.Offset, 0) {
		return fmt.Errorf("%w: %q has a non-finite offset", ErrInvalidGeometry, s.Label)
	}
	if math.IsNaN(s.OwnI) || math.IsInf(s.OwnI, 0) || s.OwnI < 0 {
		return fmt.Errorf("%w: %q must have a non-negative own second moment, got %g", ErrInvalidGeometry, s.Label, s.OwnI)
	}
	return nil
}

// HasOutline reports whether the shape carries a drawable outline
func (s Shape) HasOutline() bool {
	return len(s.Outline) >= 3
}

// Bounds returns the bounding box of the outline
func (s Shape) Bounds() (minX, maxX, minY, maxY float64) {
	if len(s.Outline) == 0 {
		return 0, 0, s.Offset, s.Offset
	}
	minX, maxX = s.Outline[0].X, s.Outline[0].X
	minY, maxY = s.Outline[0].Y, s.Outline[0].Y
	for _, p := range s.Outline[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, maxX, minY, maxY
}

// Part is one row of the parts table
type Part struct {
	Shape
	Ay  float64 // A·y (mm³)
	Ay2 float64 // A·y² (mm⁴)
}

// Result holds the aggregate properties of a composite section
type Result struct {
	Parts []Part

	// Column sums
	TotalArea float64 // ΣA (mm²)
	SumAy     float64 // ΣA·y (mm³)
	SumAy2    float64 // ΣA·y² (mm⁴)
	SumOwnI   float64 // ΣIown (mm⁴)

	// Centroid measured from the reference axis (mm)
	Centroid float64

	// Second moments of area (mm⁴)
	IReference float64 // about the reference axis
	ICentroid  float64 // about the composite centroidal axis

	// Radius of gyration about the centroidal axis (mm)
	RadiusOfGyration float64
}

// ValidationError represents a section definition error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Unwrap lets callers match definition errors against ErrInvalidGeometry
func (e *ValidationError) Unwrap() error {
	return ErrInvalidGeometry
}
