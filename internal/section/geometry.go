package section

import (
	"fmt"
	"math"
)

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x" yaml:"x"` // mm
	Y float64 `json:"y" yaml:"y"` // mm from reference axis
}

// Rectangle returns a rectangular part of width b and height h whose bottom
// edge sits at the given distance from the reference axis.
func Rectangle(label string, b, h, bottom float64) Shape {
	outline := []Point{
		{X: -b / 2, Y: bottom},
		{X: b / 2, Y: bottom},
		{X: b / 2, Y: bottom + h},
		{X: -b / 2, Y: bottom + h},
	}
	return Shape{
		Label:   label,
		Area:    b * h,
		Offset:  bottom + h/2,
		OwnI:    b * h * h * h / 12,
		Outline: outline,
	}
}

// Polygon returns a part bounded by a simple polygon. Vertices may be given in
// either orientation. The own second moment is taken about the horizontal
// axis through the polygon's centroid.
func Polygon(label string, vertices []Point) (Shape, error) {
	n := len(vertices)
	if n < 3 {
		return Shape{}, fmt.Errorf("%w: polygon %q needs at least 3 vertices", ErrInvalidGeometry, label)
	}

	// Shoelace sums for area, first and second moment about the reference axis
	var signedArea, sumY, sumYY float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		yi, yj := vertices[i].Y, vertices[j].Y
		cross := vertices[i].X*yj - vertices[j].X*yi
		signedArea += cross
		sumY += (yi + yj) * cross
		sumYY += (yi*yi + yi*yj + yj*yj) * cross
	}
	signedArea /= 2
	if signedArea == 0 {
		return Shape{}, fmt.Errorf("%w: polygon %q has zero area", ErrInvalidGeometry, label)
	}

	area := math.Abs(signedArea)
	cy := sumY / (6 * signedArea)
	iRef := math.Abs(sumYY / 12)
	own := iRef - area*cy*cy
	if own < 0 {
		own = 0
	}

	outline := make([]Point, n)
	copy(outline, vertices)

	return Shape{
		Label:   label,
		Area:    area,
		Offset:  cy,
		OwnI:    own,
		Outline: outline,
	}, nil
}

// ISection describes a welded or rolled I-section made of three plates.
// Flanges may differ, as in a crane girder with a heavier bottom flange.
type ISection struct {
	TopFlangeWidth        float64 // mm
	TopFlangeThickness    float64 // mm
	WebHeight             float64 // clear height between flanges (mm)
	WebThickness          float64 // mm
	BottomFlangeWidth     float64 // mm
	BottomFlangeThickness float64 // mm
}

// SymmetricISection returns an I-section with identical flanges
func SymmetricISection(flangeWidth, flangeThickness, webHeight, webThickness float64) ISection {
	return ISection{
		TopFlangeWidth:        flangeWidth,
		TopFlangeThickness:    flangeThickness,
		WebHeight:             webHeight,
		WebThickness:          webThickness,
		BottomFlangeWidth:     flangeWidth,
		BottomFlangeThickness: flangeThickness,
	}
}

// Validate checks that every plate has positive dimensions
func (s ISection) Validate() error {
	dims := []struct {
		name  string
		value float64
	}{
		{"top flange width", s.TopFlangeWidth},
		{"top flange thickness", s.TopFlangeThickness},
		{"web height", s.WebHeight},
		{"web thickness", s.WebThickness},
		{"bottom flange width", s.BottomFlangeWidth},
		{"bottom flange thickness", s.BottomFlangeThickness},
	}
	for _, d := range dims {
		if !(d.value > 0) || math.IsInf(d.value, 0) {
			return &ValidationError{msg: fmt.Sprintf("%s must be positive, got %g", d.name, d.value)}
		}
	}
	return nil
}

// TotalHeight returns the overall depth of the section
func (s ISection) TotalHeight() float64 {
	return s.BottomFlangeThickness + s.WebHeight + s.TopFlangeThickness
}

// Shapes returns the three plates with offsets measured from the bottom face
func (s ISection) Shapes() []Shape {
	return []Shape{
		Rectangle("Bottom flange", s.BottomFlangeWidth, s.BottomFlangeThickness, 0),
		Rectangle("Web", s.WebThickness, s.WebHeight, s.BottomFlangeThickness),
		Rectangle("Top flange", s.TopFlangeWidth, s.TopFlangeThickness, s.BottomFlangeThickness+s.WebHeight),
	}
}
