package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gomech/internal/loads"
	"github.com/spf13/cobra"
)

var (
	loadsDead float64
	loadsLive float64
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Calculate the factored jib-tip load",
	Long: `Calculate the factored load at the jib tip from unfactored dead and
live loads.

Load Types:
  D  - Dead load (hook block, rigging, hoist)
  L  - Live load (the lifted load)

Combinations checked:
  1  - 1.4D
  2  - 1.2D + 1.6L

Examples:
  gomech loads --dead 5 --live 10`,
	Run: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	loadsCmd.Flags().Float64VarP(&loadsDead, "dead", "d", 0, "Dead load at the jib tip (kN)")
	loadsCmd.Flags().Float64VarP(&loadsLive, "live", "l", 0, "Live load at the jib tip (kN)")
}

func runLoads(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	u := loads.Unfactored{Dead: loadsDead, Live: loadsLive}
	if u.IsZero() {
		fmt.Fprintln(out, "Error: Please provide at least one unfactored load.")
		fmt.Fprintln(out, "Use 'gomech loads --help' for usage information.")
		return
	}
	if err := u.Validate(); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "              FACTORED JIB-TIP LOAD")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "UNFACTORED LOADS (kN):")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Dead Load (D):\t%.2f\n", u.Dead)
	fmt.Fprintf(w, "  Live Load (L):\t%.2f\n", u.Live)
	w.Flush()
	fmt.Fprintln(out)

	maxW, governing := loads.Governing(u, loads.Combinations)

	fmt.Fprintln(out, "LOAD COMBINATIONS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tCombination\tW (kN)\n")
	fmt.Fprintf(w, "  ─\t───────────\t──────\n")
	for _, combo := range loads.Combinations {
		marker := ""
		if combo.ID == governing.ID {
			marker = " ← GOVERNS"
		}
		fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, combo.Factored(u), marker)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  ╔═══════════════════════════════════╗\n")
	fmt.Fprintf(out, "  ║  FACTORED LOAD (W) = %.2f kN\n", maxW)
	fmt.Fprintf(out, "  ╚═══════════════════════════════════╝\n")
	fmt.Fprintln(out)
}
