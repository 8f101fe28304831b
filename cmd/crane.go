package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gomech/internal/crane"
	"github.com/alexiusacademia/gomech/internal/loads"
	"github.com/alexiusacademia/gomech/internal/report"
	"github.com/spf13/cobra"
)

var craneCmd = &cobra.Command{
	Use:   "crane",
	Short: "Jib crane geometry and member forces",
	Long: `Analyze the triangle formed by the post, jib and tie of a jib crane.

The post is the fixed reference member, the jib has a given length and
carries the load at its tip, and the tie length varies. Angles follow
from the law of cosines and member forces from the law of sines.

Subcommands:
  solve  - Angles and member forces for one tie length
  sweep  - Vary the tie length and find the minimum force configurations`,
}

// craneLoadFlags are the geometry and load options shared by the crane commands
type craneLoadFlags struct {
	post float64
	jib  float64
	load float64
	dead float64
	live float64
}

func (f *craneLoadFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.post, "post", 8, "Post length (m)")
	cmd.Flags().Float64Var(&f.jib, "jib", 13, "Jib length (m)")
	cmd.Flags().Float64VarP(&f.load, "load", "w", 20, "Load at the jib tip (kN)")
	cmd.Flags().Float64VarP(&f.dead, "dead", "d", 0, "Unfactored dead load at the jib tip (kN), replaces --load")
	cmd.Flags().Float64VarP(&f.live, "live", "l", 0, "Unfactored live load at the jib tip (kN), replaces --load")
}

// geometry resolves the jib-tip load. When dead or live loads are given the
// governing factored load replaces --load and the returned LoadInfo is set.
func (f *craneLoadFlags) geometry() (crane.Geometry, *report.LoadInfo, error) {
	g := crane.Geometry{Post: f.post, Jib: f.jib, Load: f.load}

	u := loads.Unfactored{Dead: f.dead, Live: f.live}
	if u.IsZero() {
		return g, nil, g.Validate()
	}
	if err := u.Validate(); err != nil {
		return g, nil, fmt.Errorf("%w: %v", crane.ErrInvalidLoad, err)
	}

	w, combo := loads.Governing(u, loads.Combinations)
	g.Load = w
	return g, &report.LoadInfo{Unfactored: u, Combination: combo}, g.Validate()
}

func init() {
	rootCmd.AddCommand(craneCmd)
}
