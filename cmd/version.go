package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gomech/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gomech",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintln(out, "Engineering Mechanics Calculators")
		fmt.Fprintln(out, "Composite section properties and jib crane geometry")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
