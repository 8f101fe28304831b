package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Composite section properties",
	Long: `Compute the properties of a section built from parts.

Each part is given by its area, the distance of its own centroid from a
common reference axis, and its second moment of area about its own
centroidal axis. The parallel-axis theorem combines the parts into the
composite centroid, the second moment about the reference axis and about
the neutral axis, and the radius of gyration.

Subcommands:
  analyze  - Analyze a section defined in a JSON, YAML or Excel file
  ibeam    - Analyze a built-up I-section from plate dimensions

Example JSON file structure:
{
  "name": "Built-up tee",
  "reference": "bottom face",
  "rectangles": [
    {"label": "web",    "width": 20,  "height": 180, "bottom": 0},
    {"label": "flange", "width": 200, "height": 20,  "bottom": 180}
  ],
  "shapes": [
    {"label": "angle", "area": 1500, "offset": 30, "own_i": 1200000}
  ]
}`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
