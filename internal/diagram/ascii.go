package diagram

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gomech/internal/crane"
	"github.com/alexiusacademia/gomech/internal/section"
)

// DrawASCIISweepChart plots jib, tie and total force against the sample
// index of a sweep.
func DrawASCIISweepChart(r *crane.Result) string {
	if r == nil || len(r.Samples) == 0 {
		return ""
	}

	jib := make([]float64, len(r.Samples))
	tie := make([]float64, len(r.Samples))
	total := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		jib[i] = s.ForceJib
		tie[i] = s.ForceTie
		total[i] = s.Total()
	}

	first, last := r.Samples[0].Tie, r.Samples[len(r.Samples)-1].Tie
	caption := fmt.Sprintf("Force (kN) vs tie length %.2f m → %.2f m   blue: jib  red: tie  green: total", first, last)

	graph := asciigraph.PlotMany([][]float64{jib, tie, total},
		asciigraph.Height(15),
		asciigraph.Width(60),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red, asciigraph.Green),
		asciigraph.Caption(caption),
	)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(graph)
	sb.WriteString("\n")
	return sb.String()
}

// DrawASCIISection sketches the outlined parts of a composite section with the
// neutral axis marked. Widths are scaled to the widest level of the section.
func DrawASCIISection(r *section.Result) string {
	var outlined []section.Part
	for _, p := range r.Parts {
		if p.HasOutline() {
			outlined = append(outlined, p)
		}
	}
	if len(outlined) == 0 {
		return ""
	}

	const (
		widthChars  = 30
		heightChars = 20
	)

	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range outlined {
		_, _, y0, y1 := p.Bounds()
		minY = math.Min(minY, y0)
		maxY = math.Max(maxY, y1)
	}
	depth := maxY - minY
	if depth <= 0 {
		return ""
	}

	// Width of each row, sampled at the middle of the row
	dy := depth / heightChars
	widths := make([]float64, heightChars)
	var maxWidth float64
	for i := 0; i < heightChars; i++ {
		y := maxY - (float64(i)+0.5)*dy
		for _, p := range outlined {
			widths[i] += widthAtY(p.Outline, y)
		}
		maxWidth = math.Max(maxWidth, widths[i])
	}
	if maxWidth <= 0 {
		return ""
	}

	naRow := int((maxY - r.Centroid) / dy)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  SECTION\n")
	sb.WriteString("  ───────\n")
	for i := 0; i < heightChars; i++ {
		n := int(math.Round(widths[i] / maxWidth * widthChars))
		pad := (widthChars - n) / 2
		row := strings.Repeat(" ", pad) + strings.Repeat("█", n) + strings.Repeat(" ", widthChars-n-pad)

		if i == naRow {
			sb.WriteString(fmt.Sprintf("  %s  ◄─ N.A. (ȳ = %.2f)\n", row, r.Centroid))
		} else {
			sb.WriteString(fmt.Sprintf("  %s\n", row))
		}
	}
	sb.WriteString(fmt.Sprintf("  %s  reference at y = 0\n", strings.Repeat("─", widthChars)))
	return sb.String()
}

// widthAtY returns the total width of a polygon cut by a horizontal line
func widthAtY(vertices []section.Point, y float64) float64 {
	var xs []float64
	n := len(vertices)
	for i := 0; i < n; i++ {
		v1, v2 := vertices[i], vertices[(i+1)%n]
		if (v1.Y <= y && v2.Y > y) || (v2.Y <= y && v1.Y > y) {
			t := (y - v1.Y) / (v2.Y - v1.Y)
			xs = append(xs, v1.X+t*(v2.X-v1.X))
		}
	}
	if len(xs) < 2 {
		return 0
	}

	sort.Float64s(xs)
	var width float64
	for i := 0; i+1 < len(xs); i += 2 {
		width += xs[i+1] - xs[i]
	}
	return width
}
