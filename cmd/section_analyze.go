package cmd

import (
	"fmt"
	"log/slog"

	"github.com/alexiusacademia/gomech/internal/report"
	"github.com/alexiusacademia/gomech/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectionAnalyzeFile string
	sectionExport      sectionExportFlags
)

var sectionAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a composite section defined in a file",
	Long: `Calculate the centroid, second moments of area and radius of gyration
of a composite section defined in a JSON, YAML or Excel file.

JSON and YAML files may list parts directly ("shapes"), as rectangles
("rectangles") or as polygons ("polygons"). Excel files use the first
sheet: a header row followed by rows of Label, Area, Offset, OwnI.

Examples:
  gomech section analyze --file tee.json
  gomech section analyze -f tee.yaml --diagram
  gomech section analyze -f parts.xlsx --xlsx out/results.xlsx --pdf out/results.pdf`,
	Run: runSectionAnalyze,
}

func init() {
	sectionCmd.AddCommand(sectionAnalyzeCmd)

	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeFile, "file", "f", "", "Path to section file (.json, .yaml, .xlsx) [required]")
	sectionAnalyzeCmd.MarkFlagRequired("file")

	sectionExport.register(sectionAnalyzeCmd)
}

func runSectionAnalyze(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	def, err := section.LoadFromFile(sectionAnalyzeFile)
	if err != nil {
		fmt.Fprintf(out, "Error loading section: %v\n", err)
		return
	}

	shapes, err := def.Parts()
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	slog.Debug("section loaded", "file", sectionAnalyzeFile, "name", def.Name, "parts", len(shapes))

	result, err := section.Analyze(shapes)
	if err != nil {
		fmt.Fprintf(out, "Error analyzing section: %v\n", err)
		return
	}
	slog.Debug("section analyzed", "area", result.TotalArea, "centroid", result.Centroid, "i_na", result.ICentroid)

	info := report.SectionInfo{
		Name:      def.Name,
		Unit:      def.UnitOrDefault(),
		Reference: def.ReferenceOrDefault(),
	}
	if bottom, top, ok := result.Extent(); ok {
		info.Bottom, info.Top = bottom, top
	}
	if def.Description != "" {
		fmt.Fprintf(out, "\n  %s\n", def.Description)
	}

	if err := report.WriteSection(out, info, result); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	sectionExport.run(out, def.Name, info.Unit, result)
}
