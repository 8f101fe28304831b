package cmd

import (
	"fmt"
	"log/slog"

	"github.com/alexiusacademia/gomech/internal/crane"
	"github.com/alexiusacademia/gomech/internal/report"
	"github.com/spf13/cobra"
)

var (
	sweepLoad    craneLoadFlags
	sweepTieMin  float64
	sweepTieMax  float64
	sweepSamples int
	sweepCurrent float64
	sweepWorkers int
	sweepTable   bool
	sweepExport  sweepExportFlags
)

var craneSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Find the tie length with the smallest member forces",
	Long: `Vary the tie length over evenly spaced samples and report the
configurations with the minimum jib force, minimum tie force and minimum
total force. Tie lengths that cannot close a triangle with the post and
jib are skipped.

Examples:
  # Default crane: post 8 m, jib 13 m, 20 kN, tie from 5 m to 20 m
  gomech crane sweep

  # Compare against the tie currently installed and plot the forces
  gomech crane sweep --current 9 --chart -o charts/forces.png

  # Export every sample
  gomech crane sweep --samples 500 --table --xlsx sweep.xlsx --pdf sweep.pdf`,
	Run: runCraneSweep,
}

func init() {
	craneCmd.AddCommand(craneSweepCmd)

	sweepLoad.register(craneSweepCmd)
	craneSweepCmd.Flags().Float64Var(&sweepTieMin, "tie-min", 5, "Shortest tie length (m)")
	craneSweepCmd.Flags().Float64Var(&sweepTieMax, "tie-max", 20, "Longest tie length (m)")
	craneSweepCmd.Flags().IntVarP(&sweepSamples, "samples", "n", 100, "Number of tie lengths to evaluate")
	craneSweepCmd.Flags().Float64Var(&sweepCurrent, "current", 0, "Tie length currently in service (m), compared with the optima")
	craneSweepCmd.Flags().IntVar(&sweepWorkers, "workers", 1, "Parallel workers (0 uses all CPUs)")
	craneSweepCmd.Flags().BoolVar(&sweepTable, "table", false, "List every valid configuration")

	sweepExport.register(craneSweepCmd)
}

func runCraneSweep(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	g, li, err := sweepLoad.geometry()
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	ties, err := crane.Linspace(sweepTieMin, sweepTieMax, sweepSamples)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	var result *crane.Result
	if sweepWorkers == 1 {
		result, err = crane.Sweep(g, ties)
	} else {
		result, err = crane.SweepParallel(cmd.Context(), g, ties, sweepWorkers)
	}
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	slog.Debug("sweep finished", "samples", len(ties), "valid", len(result.Samples), "skipped", result.Skipped)

	opts := report.SweepOptions{Load: li, ShowTable: sweepTable}
	var current *crane.Sample
	if sweepCurrent != 0 {
		smp, err := crane.Solve(g, sweepCurrent)
		if err != nil {
			slog.Warn("current configuration not evaluated", "tie", sweepCurrent, "err", err)
			fmt.Fprintf(out, "Warning: current tie length %g m: %v\n", sweepCurrent, err)
		} else {
			current = &smp
			opts.Current = current
		}
	}

	if err := report.WriteSweep(out, result, opts); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	sweepExport.run(out, result, current)
}
