package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/gomech/internal/section"
)

// SectionInfo describes the section being reported
type SectionInfo struct {
	Name      string
	Unit      string // length unit, "mm" when empty
	Reference string // reference axis, e.g. "bottom face"

	// Extreme fibres measured from the reference axis. When Top > Bottom the
	// report includes the elastic section moduli.
	Bottom float64
	Top    float64
}

// WriteSection writes the parts table and final results of a composite
// section analysis.
func WriteSection(w io.Writer, info SectionInfo, r *section.Result) error {
	unit := info.Unit
	if unit == "" {
		unit = "mm"
	}
	ref := info.Reference
	if ref == "" {
		ref = "reference axis"
	}

	s := &sheet{w: w}
	s.banner("COMPOSITE SECTION PROPERTIES")

	if info.Name != "" {
		s.printf("  Section: %s\n", info.Name)
	}
	s.printf("  Offsets measured from: %s\n", ref)
	s.println()

	s.heading("Parts")
	s.table(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "  Part\tArea (%s²)\ty (%s)\tA·y (%s³)\tA·y² (%s⁴)\tIown (%s⁴)\n", unit, unit, unit, unit, unit)
		for _, p := range r.Parts {
			fmt.Fprintf(tw, "  %s\t%.0f\t%.1f\t%.0f\t%.0f\t%.0f\n", p.Label, p.Area, p.Offset, p.Ay, p.Ay2, p.OwnI)
		}
		fmt.Fprintf(tw, "  TOTAL\t%.0f\t\t%.0f\t%.0f\t%.0f\n", r.TotalArea, r.SumAy, r.SumAy2, r.SumOwnI)
	})
	s.println()

	s.heading("Final results")
	s.table(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "  Total area:\t%.0f %s²\n", r.TotalArea, unit)
		fmt.Fprintf(tw, "  Centroid from %s (ȳ):\t%.2f %s\n", ref, r.Centroid, unit)
		fmt.Fprintf(tw, "  I about %s:\t%.4g %s⁴\n", ref, r.IReference, unit)
		fmt.Fprintf(tw, "  I about neutral axis:\t%.4g %s⁴\n", r.ICentroid, unit)
		fmt.Fprintf(tw, "  Radius of gyration (k):\t%.1f %s\n", r.RadiusOfGyration, unit)
		if info.Top > info.Bottom {
			zb, zt := r.SectionModulus(info.Bottom, info.Top)
			fmt.Fprintf(tw, "  Section modulus, bottom:\t%.4g %s³\n", zb, unit)
			fmt.Fprintf(tw, "  Section modulus, top:\t%.4g %s³\n", zt, unit)
		}
	})
	s.println()

	s.box("I about neutral axis = %.2f × 10⁶ %s⁴", r.ICentroid/1e6, unit)

	return s.err
}
