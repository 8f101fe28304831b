package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gomech/internal/crane"
	"github.com/alexiusacademia/gomech/internal/section"
)

var (
	jibColor     = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	tieColor     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	totalColor   = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	angleColor   = color.RGBA{R: 191, G: 0, B: 191, A: 255}
	naColor      = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	partFill     = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	partOutline  = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	currentColor = color.Black
)

// ExportSweepChart writes two charts for a sweep: member forces against tie
// length to filename, and jib angle against tie length to a sibling file
// named by AngleChartName. The format follows the extension (png, svg, pdf);
// anything else is written as png. It returns the files written.
func ExportSweepChart(r *crane.Result, current *crane.Sample, filename string) ([]string, error) {
	if r == nil || len(r.Samples) == 0 {
		return nil, crane.ErrNoValidGeometry
	}
	filename = withImageExt(filename)
	if err := ensureDir(filename); err != nil {
		return nil, err
	}

	forces, err := forceChart(r, current)
	if err != nil {
		return nil, err
	}
	if err := forces.Save(10*vg.Inch, 5*vg.Inch, filename); err != nil {
		return nil, err
	}

	angleFile := AngleChartName(filename)
	angles, err := angleChart(r, current)
	if err != nil {
		return nil, err
	}
	if err := angles.Save(10*vg.Inch, 4*vg.Inch, angleFile); err != nil {
		return nil, err
	}

	return []string{filename, angleFile}, nil
}

// AngleChartName returns the file name used for the jib angle chart
func AngleChartName(filename string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + "-angle" + ext
}

func forceChart(r *crane.Result, current *crane.Sample) (*plot.Plot, error) {
	g := r.Geometry

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Force Analysis: Post=%gm, Jib=%gm, Load=%gkN", g.Post, g.Jib, g.Load)
	p.X.Label.Text = "Tie Length (m)"
	p.Y.Label.Text = "Force (kN)"
	p.Add(plotter.NewGrid())

	jib := make(plotter.XYs, len(r.Samples))
	tie := make(plotter.XYs, len(r.Samples))
	total := make(plotter.XYs, len(r.Samples))
	for i, s := range r.Samples {
		jib[i] = plotter.XY{X: s.Tie, Y: s.ForceJib}
		tie[i] = plotter.XY{X: s.Tie, Y: s.ForceTie}
		total[i] = plotter.XY{X: s.Tie, Y: s.Total()}
	}

	series := []struct {
		name   string
		xys    plotter.XYs
		color  color.Color
		dashed bool
	}{
		{"Jib Force", jib, jibColor, false},
		{"Tie Force", tie, tieColor, false},
		{"Total Force", total, totalColor, true},
	}
	for _, sr := range series {
		l, err := plotter.NewLine(sr.xys)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Width = vg.Points(2)
		l.LineStyle.Color = sr.color
		if sr.dashed {
			l.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		}
		p.Add(l)
		p.Legend.Add(sr.name, l)
	}

	best := r.MinTotal()
	bestPt, err := marker(best.Tie, best.Total(), totalColor, 6)
	if err != nil {
		return nil, err
	}
	p.Add(bestPt)
	p.Legend.Add("Minimum Total", bestPt)

	if current != nil {
		cur, err := marker(current.Tie, current.Total(), currentColor, 5)
		if err != nil {
			return nil, err
		}
		p.Add(cur)
		p.Legend.Add("Current Config", cur)
	}

	p.Legend.Top = true
	return p, nil
}

func angleChart(r *crane.Result, current *crane.Sample) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Jib Angle vs Tie Length"
	p.X.Label.Text = "Tie Length (m)"
	p.Y.Label.Text = "Jib Angle (degrees)"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(r.Samples))
	for i, s := range r.Samples {
		pts[i] = plotter.XY{X: s.Tie, Y: s.JibAngle()}
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Width = vg.Points(2)
	l.LineStyle.Color = angleColor
	p.Add(l)
	p.Legend.Add("Jib Angle", l)

	lo, hi := r.TieRange()
	ref, err := plotter.NewLine(plotter.XYs{{X: lo, Y: 45}, {X: hi, Y: 45}})
	if err != nil {
		return nil, err
	}
	ref.LineStyle.Color = color.Gray{Y: 128}
	ref.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(ref)
	p.Legend.Add("45° Reference", ref)

	best := r.MinTotal()
	bestPt, err := marker(best.Tie, best.JibAngle(), totalColor, 6)
	if err != nil {
		return nil, err
	}
	p.Add(bestPt)
	p.Legend.Add("Optimal Angle", bestPt)

	if current != nil {
		cur, err := marker(current.Tie, current.JibAngle(), currentColor, 5)
		if err != nil {
			return nil, err
		}
		p.Add(cur)
		p.Legend.Add("Current Angle", cur)
	}

	return p, nil
}

func marker(x, y float64, c color.Color, radius float64) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(plotter.XYs{{X: x, Y: y}})
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(radius)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	return s, nil
}

// ExportSectionDiagram draws the outlines of the parts with the neutral axis
// at the composite centroid. Parts without an outline are left out; at least
// one part must have one. Axes are labelled in unit ("mm" when empty).
func ExportSectionDiagram(name, unit string, r *section.Result, filename string) error {
	if unit == "" {
		unit = "mm"
	}

	p := plot.New()
	p.Title.Text = "Composite Section"
	if name != "" {
		p.Title.Text = name
	}
	p.X.Label.Text = fmt.Sprintf("x (%s)", unit)
	p.Y.Label.Text = fmt.Sprintf("y from reference (%s)", unit)

	drawn := 0
	minX, maxX := 0.0, 0.0
	for _, part := range r.Parts {
		if !part.HasOutline() {
			continue
		}
		pts := make(plotter.XYs, len(part.Outline))
		for i, v := range part.Outline {
			pts[i] = plotter.XY{X: v.X, Y: v.Y}
		}
		poly, err := plotter.NewPolygon(pts)
		if err != nil {
			return err
		}
		poly.Color = partFill
		poly.LineStyle.Color = partOutline
		poly.LineStyle.Width = vg.Points(1.5)
		p.Add(poly)

		x0, x1, _, _ := part.Bounds()
		if drawn == 0 || x0 < minX {
			minX = x0
		}
		if drawn == 0 || x1 > maxX {
			maxX = x1
		}
		drawn++
	}
	if drawn == 0 {
		return fmt.Errorf("section has no part outlines to draw")
	}

	margin := 0.1 * (maxX - minX)
	na, err := plotter.NewLine(plotter.XYs{
		{X: minX - margin, Y: r.Centroid},
		{X: maxX + margin, Y: r.Centroid},
	})
	if err != nil {
		return err
	}
	na.LineStyle.Width = vg.Points(1.5)
	na.LineStyle.Color = naColor
	na.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(na)

	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: maxX + margin, Y: r.Centroid}},
		Labels: []string{fmt.Sprintf("N.A. y = %.1f", r.Centroid)},
	})
	if err != nil {
		return err
	}
	p.Add(lbl)

	filename = withImageExt(filename)
	if err := ensureDir(filename); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 8*vg.Inch, filename)
}

func withImageExt(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return filename
	}
	return filename + ".png"
}

func ensureDir(filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}
