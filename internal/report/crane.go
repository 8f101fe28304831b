package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/gomech/internal/crane"
	"github.com/alexiusacademia/gomech/internal/loads"
)

// LoadInfo records how the jib-tip load was obtained. A nil *LoadInfo means
// the load was given directly.
type LoadInfo struct {
	Unfactored  loads.Unfactored
	Combination loads.Combination
}

// WriteSolve writes the angles and member forces of one configuration
func WriteSolve(w io.Writer, g crane.Geometry, li *LoadInfo, smp crane.Sample) error {
	s := &sheet{w: w}
	s.banner("JIB CRANE FORCE ANALYSIS")

	writeGeometry(s, g, li)
	s.table(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "  Tie length:\t%.2f m\n", smp.Tie)
	})
	s.println()

	s.heading("Angles (law of cosines)")
	s.table(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "  Angle opposite post (θp):\t%.4f°\n", crane.Degrees(smp.AnglePost))
		fmt.Fprintf(tw, "  Angle opposite tie (θt):\t%.4f°\n", crane.Degrees(smp.AngleTie))
		fmt.Fprintf(tw, "  Angle opposite jib (θj):\t%.4f°\n", crane.Degrees(smp.AngleJib))
	})
	s.println()

	s.heading("Member forces (law of sines)")
	s.table(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "  Force in jib (F_J):\t%.4f kN\n", smp.ForceJib)
		fmt.Fprintf(tw, "  Force in tie (F_T):\t%.4f kN\n", smp.ForceTie)
		fmt.Fprintf(tw, "  Total:\t%.4f kN\n", smp.Total())
	})
	s.println()

	return s.err
}

// SweepOptions controls the optional parts of a sweep report
type SweepOptions struct {
	Load *LoadInfo

	// Current is the configuration in service, compared against the optima
	Current *crane.Sample

	// ShowTable lists every valid sample
	ShowTable bool
}

// WriteSweep writes the optimum configurations found by a sweep
func WriteSweep(w io.Writer, r *crane.Result, opts SweepOptions) error {
	if r == nil || len(r.Samples) == 0 {
		return crane.ErrNoValidGeometry
	}

	s := &sheet{w: w}
	s.banner("OPTIMIZATION RESULTS - VARYING TIE LENGTH")

	writeGeometry(s, r.Geometry, opts.Load)
	s.table(func(tw *tabwriter.Writer) {
		lo, hi := r.TieRange()
		fmt.Fprintf(tw, "  Valid configurations:\t%d\n", len(r.Samples))
		fmt.Fprintf(tw, "  Skipped (no triangle):\t%d\n", r.Skipped)
		fmt.Fprintf(tw, "  Valid tie range:\t%.2f m to %.2f m\n", lo, hi)
	})
	s.println()

	writeConfiguration(s, "Minimum jib force configuration", r.MinJib(), false)
	writeConfiguration(s, "Minimum tie force configuration", r.MinTie(), false)
	writeConfiguration(s, "Minimum total force configuration", r.MinTotal(), true)

	if opts.Current != nil {
		writeConfiguration(s, fmt.Sprintf("Current configuration (tie = %g m)", opts.Current.Tie), *opts.Current, true)
	}

	if opts.ShowTable {
		s.heading("All configurations")
		s.table(func(tw *tabwriter.Writer) {
			fmt.Fprintf(tw, "  Tie (m)\tθp (°)\tθt (°)\tθj (°)\tF_J (kN)\tF_T (kN)\tTotal (kN)\n")
			for _, smp := range r.Samples {
				fmt.Fprintf(tw, "  %.3f\t%.2f\t%.2f\t%.2f\t%.3f\t%.3f\t%.3f\n",
					smp.Tie,
					crane.Degrees(smp.AnglePost),
					crane.Degrees(smp.AngleTie),
					crane.Degrees(smp.AngleJib),
					smp.ForceJib, smp.ForceTie, smp.Total())
			}
		})
		s.println()
	}

	best := r.MinTotal()
	s.box("MINIMUM TOTAL FORCE = %.2f kN at tie %.2f m", best.Total(), best.Tie)

	return s.err
}

func writeGeometry(s *sheet, g crane.Geometry, li *LoadInfo) {
	s.heading("Input data")
	s.table(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "  Post length:\t%g m\n", g.Post)
		fmt.Fprintf(tw, "  Jib length:\t%g m\n", g.Jib)
		if li != nil {
			fmt.Fprintf(tw, "  Dead load (D):\t%g kN\n", li.Unfactored.Dead)
			fmt.Fprintf(tw, "  Live load (L):\t%g kN\n", li.Unfactored.Live)
			fmt.Fprintf(tw, "  Governing combination:\t%s\n", li.Combination.Description)
		}
		fmt.Fprintf(tw, "  Load at jib tip (W):\t%g kN\n", g.Load)
	})
}

func writeConfiguration(s *sheet, title string, smp crane.Sample, withTotal bool) {
	s.heading(title)
	s.table(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "  Tie length:\t%.2f m\n", smp.Tie)
		fmt.Fprintf(tw, "  Jib force:\t%.2f kN\n", smp.ForceJib)
		fmt.Fprintf(tw, "  Tie force:\t%.2f kN\n", smp.ForceTie)
		if withTotal {
			fmt.Fprintf(tw, "  Total:\t%.2f kN\n", smp.Total())
		}
		fmt.Fprintf(tw, "  Jib angle:\t%.2f°\n", smp.JibAngle())
	})
	s.println()
}
