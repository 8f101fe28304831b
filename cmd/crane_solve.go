package cmd

import (
	"fmt"
	"log/slog"

	"github.com/alexiusacademia/gomech/internal/crane"
	"github.com/alexiusacademia/gomech/internal/report"
	"github.com/spf13/cobra"
)

var (
	solveLoad craneLoadFlags
	solveTie  float64
)

var craneSolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Angles and member forces for one tie length",
	Long: `Calculate the angles of the post-jib-tie triangle and the forces in
the jib and tie for a single tie length.

The load is given directly with --load, or as unfactored dead and live
loads (--dead, --live) from which the governing factored load is found
using 1.4D and 1.2D + 1.6L.

Examples:
  gomech crane solve --post 8 --jib 13 --tie 9 --load 20
  gomech crane solve --tie 9 --dead 5 --live 10`,
	Run: runCraneSolve,
}

func init() {
	craneCmd.AddCommand(craneSolveCmd)

	solveLoad.register(craneSolveCmd)
	craneSolveCmd.Flags().Float64VarP(&solveTie, "tie", "t", 0, "Tie length (m) [required]")
	craneSolveCmd.MarkFlagRequired("tie")
}

func runCraneSolve(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	g, li, err := solveLoad.geometry()
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	smp, err := crane.Solve(g, solveTie)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	slog.Debug("configuration solved", "tie", solveTie, "jib_force", smp.ForceJib, "tie_force", smp.ForceTie)

	if err := report.WriteSolve(out, g, li, smp); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}
