package export

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gomech/internal/crane"
	"github.com/alexiusacademia/gomech/internal/section"
	"github.com/alexiusacademia/gomech/internal/version"
)

// calcSheet is an A4 calculation sheet using the core Helvetica font.
// Text goes through the cp1252 translator, so superscripts beyond ² and ³
// are written in caret form.
type calcSheet struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newCalcSheet(title string) *calcSheet {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetCreator("gomech "+version.Version, true)
	pdf.AddPage()

	c := &calcSheet{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, c.tr(title))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("gomech v%s  -  %s", version.Version, time.Now().Format("2006-01-02")))
	pdf.Ln(9)
	return c
}

func (c *calcSheet) heading(text string) {
	c.pdf.SetFont("Helvetica", "B", 12)
	c.pdf.Cell(0, 7, c.tr(text))
	c.pdf.Ln(8)
}

// table writes a header row and body rows with the given column widths
func (c *calcSheet) table(widths []float64, header []string, rows [][]string) {
	c.pdf.SetFont("Helvetica", "B", 9)
	c.pdf.SetFillColor(230, 230, 230)
	for i, h := range header {
		c.pdf.CellFormat(widths[i], 6, c.tr(h), "1", 0, "C", true, 0, "")
	}
	c.pdf.Ln(-1)

	c.pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		for i, v := range row {
			align := "R"
			if i == 0 {
				align = "L"
			}
			c.pdf.CellFormat(widths[i], 6, c.tr(v), "1", 0, align, false, 0, "")
		}
		c.pdf.Ln(-1)
	}
	c.pdf.Ln(4)
}

// values writes label/value pairs
func (c *calcSheet) values(pairs [][2]string) {
	c.pdf.SetFont("Helvetica", "", 10)
	for _, kv := range pairs {
		c.pdf.CellFormat(70, 6, c.tr(kv[0]), "", 0, "L", false, 0, "")
		c.pdf.CellFormat(0, 6, c.tr(kv[1]), "", 1, "L", false, 0, "")
	}
	c.pdf.Ln(4)
}

func (c *calcSheet) save(path string) error {
	if err := ensureParent(path); err != nil {
		return err
	}
	return c.pdf.OutputFileAndClose(path)
}

// WriteSectionPDF writes a calculation sheet for a composite section with
// lengths in unit ("mm" when empty)
func WriteSectionPDF(path, name, unit string, r *section.Result) error {
	u := unitOrDefault(unit)
	title := "Composite Section Properties"
	c := newCalcSheet(title)
	if name != "" {
		c.values([][2]string{{"Section:", name}})
	}

	c.heading("Parts")
	rows := make([][]string, 0, len(r.Parts)+1)
	for _, p := range r.Parts {
		rows = append(rows, []string{
			p.Label,
			fmt.Sprintf("%.0f", p.Area),
			fmt.Sprintf("%.1f", p.Offset),
			fmt.Sprintf("%.0f", p.Ay),
			fmt.Sprintf("%.0f", p.Ay2),
			fmt.Sprintf("%.0f", p.OwnI),
		})
	}
	rows = append(rows, []string{
		"TOTAL",
		fmt.Sprintf("%.0f", r.TotalArea),
		"",
		fmt.Sprintf("%.0f", r.SumAy),
		fmt.Sprintf("%.0f", r.SumAy2),
		fmt.Sprintf("%.0f", r.SumOwnI),
	})
	c.table(
		[]float64{40, 25, 22, 30, 38, 30},
		[]string{
			"Part",
			fmt.Sprintf("Area (%s²)", u),
			fmt.Sprintf("y (%s)", u),
			fmt.Sprintf("A·y (%s³)", u),
			fmt.Sprintf("A·y² (%s^4)", u),
			fmt.Sprintf("Iown (%s^4)", u),
		},
		rows,
	)

	c.heading("Final results")
	c.values([][2]string{
		{"Total area", fmt.Sprintf("%.0f %s²", r.TotalArea, u)},
		{"Centroid from reference", fmt.Sprintf("%.2f %s", r.Centroid, u)},
		{"I about reference axis", fmt.Sprintf("%.4g %s^4", r.IReference, u)},
		{"I about neutral axis", fmt.Sprintf("%.4g %s^4", r.ICentroid, u)},
		{"Radius of gyration", fmt.Sprintf("%.1f %s", r.RadiusOfGyration, u)},
	})

	return c.save(path)
}

// WriteSweepPDF writes a calculation sheet for a tie length sweep
func WriteSweepPDF(path string, r *crane.Result) error {
	if r == nil || len(r.Samples) == 0 {
		return crane.ErrNoValidGeometry
	}

	c := newCalcSheet("Jib Crane Geometry Optimization")
	g := r.Geometry

	c.heading("Input data")
	c.values([][2]string{
		{"Post length", fmt.Sprintf("%g m", g.Post)},
		{"Jib length", fmt.Sprintf("%g m", g.Jib)},
		{"Load at jib tip", fmt.Sprintf("%g kN", g.Load)},
		{"Valid configurations", fmt.Sprintf("%d", len(r.Samples))},
		{"Skipped (no triangle)", fmt.Sprintf("%d", r.Skipped)},
	})

	c.heading("Optimum configurations")
	var rows [][]string
	for _, o := range []struct {
		name string
		s    crane.Sample
	}{
		{"Minimum jib force", r.MinJib()},
		{"Minimum tie force", r.MinTie()},
		{"Minimum total force", r.MinTotal()},
	} {
		rows = append(rows, []string{
			o.name,
			fmt.Sprintf("%.2f", o.s.Tie),
			fmt.Sprintf("%.2f", o.s.ForceJib),
			fmt.Sprintf("%.2f", o.s.ForceTie),
			fmt.Sprintf("%.2f", o.s.Total()),
			fmt.Sprintf("%.2f", o.s.JibAngle()),
		})
	}
	c.table(
		[]float64{45, 22, 28, 28, 25, 30},
		[]string{"Configuration", "Tie (m)", "Jib (kN)", "Tie (kN)", "Total (kN)", "Jib angle (°)"},
		rows,
	)

	return c.save(path)
}
