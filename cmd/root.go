package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gomech/internal/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gomech",
	Short: "Engineering mechanics calculators",
	Long: `gomech - Go Engineering Mechanics Calculators

A CLI tool with two small structural calculators:

  - Composite section properties: centroid, second moment of area and
    radius of gyration of a section built from parts, using the
    parallel-axis theorem.
  - Jib crane geometry: angles and member forces of a post, jib and tie
    triangle, and a sweep over tie lengths to find the configurations
    with the smallest member forces.

Results can be exported to charts (png, svg, pdf), Excel workbooks and
PDF calculation sheets.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cmd.ErrOrStderr(), verbose)
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gomech v%-48s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Engineering Mechanics Calculators                    ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Composite section properties (parallel-axis theorem)")
		fmt.Fprintln(out, "    • Built-up I-section properties from plate dimensions")
		fmt.Fprintln(out, "    • Jib crane member forces (law of cosines / law of sines)")
		fmt.Fprintln(out, "    • Tie length sweep with minimum force configurations")
		fmt.Fprintln(out, "    • Factored jib-tip loads from dead and live loads")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gomech --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log calculation steps to stderr")
}

// setupLogging installs the default logger. Without --verbose only warnings
// and errors are logged.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
