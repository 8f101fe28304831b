package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alexiusacademia/gomech/internal/crane"
	"github.com/alexiusacademia/gomech/internal/diagram"
	"github.com/alexiusacademia/gomech/internal/export"
	"github.com/alexiusacademia/gomech/internal/section"
	"github.com/spf13/cobra"
)

// sectionExportFlags are the diagram and export options shared by the
// section commands
type sectionExportFlags struct {
	showDiagram bool
	image       string
	xlsx        string
	pdf         string
}

func (f *sectionExportFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.showDiagram, "diagram", false, "Show ASCII section sketch")
	cmd.Flags().StringVarP(&f.image, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
	cmd.Flags().StringVar(&f.xlsx, "xlsx", "", "Export parts table and results to an Excel workbook")
	cmd.Flags().StringVar(&f.pdf, "pdf", "", "Export a PDF calculation sheet")
}

func (f *sectionExportFlags) run(out io.Writer, name, unit string, r *section.Result) {
	if f.showDiagram {
		if sketch := diagram.DrawASCIISection(r); sketch != "" {
			fmt.Fprintln(out, sketch)
		} else {
			fmt.Fprintln(out, "  (no part outlines to sketch)")
			fmt.Fprintln(out)
		}
	}

	if f.image != "" {
		if err := diagram.ExportSectionDiagram(name, unit, r, f.image); err != nil {
			fmt.Fprintf(out, "Error exporting diagram: %v\n", err)
		} else {
			exported(out, "Section diagram", f.image)
		}
	}

	if f.xlsx != "" {
		if err := export.WriteSectionWorkbook(f.xlsx, name, unit, r); err != nil {
			fmt.Fprintf(out, "Error exporting workbook: %v\n", err)
		} else {
			exported(out, "Workbook", f.xlsx)
		}
	}

	if f.pdf != "" {
		if err := export.WriteSectionPDF(f.pdf, name, unit, r); err != nil {
			fmt.Fprintf(out, "Error exporting PDF: %v\n", err)
		} else {
			exported(out, "Calculation sheet", f.pdf)
		}
	}
}

// sweepExportFlags are the chart and export options of crane sweep
type sweepExportFlags struct {
	showChart bool
	image     string
	xlsx      string
	pdf       string
}

func (f *sweepExportFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.showChart, "chart", false, "Show ASCII force chart")
	cmd.Flags().StringVarP(&f.image, "output", "o", "", "Export force and angle charts to file (png, svg, pdf)")
	cmd.Flags().StringVar(&f.xlsx, "xlsx", "", "Export all samples and optima to an Excel workbook")
	cmd.Flags().StringVar(&f.pdf, "pdf", "", "Export a PDF calculation sheet")
}

func (f *sweepExportFlags) run(out io.Writer, r *crane.Result, current *crane.Sample) {
	if f.showChart {
		fmt.Fprintln(out, diagram.DrawASCIISweepChart(r))
	}

	if f.image != "" {
		files, err := diagram.ExportSweepChart(r, current, f.image)
		if err != nil {
			fmt.Fprintf(out, "Error exporting charts: %v\n", err)
		} else {
			for _, file := range files {
				exported(out, "Chart", file)
			}
		}
	}

	if f.xlsx != "" {
		if err := export.WriteSweepWorkbook(f.xlsx, r); err != nil {
			fmt.Fprintf(out, "Error exporting workbook: %v\n", err)
		} else {
			exported(out, "Workbook", f.xlsx)
		}
	}

	if f.pdf != "" {
		if err := export.WriteSweepPDF(f.pdf, r); err != nil {
			fmt.Fprintf(out, "Error exporting PDF: %v\n", err)
		} else {
			exported(out, "Calculation sheet", f.pdf)
		}
	}
}

func exported(out io.Writer, what, file string) {
	slog.Info("exported", "kind", what, "file", file)
	fmt.Fprintf(out, "  %s exported to: %s\n", what, file)
}
