// Package export writes calculation results to spreadsheet and PDF files.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gomech/internal/crane"
	"github.com/alexiusacademia/gomech/internal/section"
)

// Sheet names used in exported workbooks
const (
	PartsSheet   = "Parts"
	ResultsSheet = "Results"
	SweepSheet   = "Sweep"
	OptimaSheet  = "Optima"
)

// WriteSectionWorkbook writes the parts table and the section results with
// lengths in unit ("mm" when empty). The Parts sheet uses the Label, Area,
// Offset, OwnI layout accepted by section.LoadFromFile, followed by the A·y
// and A·y² columns.
func WriteSectionWorkbook(path, name, unit string, r *section.Result) error {
	u := unitOrDefault(unit)
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", PartsSheet); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	rows := [][]any{{
		"Label",
		fmt.Sprintf("Area (%s²)", u),
		fmt.Sprintf("Offset (%s)", u),
		fmt.Sprintf("Iown (%s⁴)", u),
		fmt.Sprintf("A·y (%s³)", u),
		fmt.Sprintf("A·y² (%s⁴)", u),
	}}
	for _, p := range r.Parts {
		rows = append(rows, []any{p.Label, p.Area, p.Offset, p.OwnI, p.Ay, p.Ay2})
	}
	if err := writeRows(f, PartsSheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(PartsSheet, "A1", "F1", bold); err != nil {
		return err
	}
	if err := f.SetColWidth(PartsSheet, "A", "F", 16); err != nil {
		return err
	}

	if _, err := f.NewSheet(ResultsSheet); err != nil {
		return err
	}
	results := [][]any{
		{"Section", name},
		{fmt.Sprintf("Total area (%s²)", u), r.TotalArea},
		{fmt.Sprintf("ΣA·y (%s³)", u), r.SumAy},
		{fmt.Sprintf("ΣA·y² (%s⁴)", u), r.SumAy2},
		{fmt.Sprintf("ΣIown (%s⁴)", u), r.SumOwnI},
		{fmt.Sprintf("Centroid ȳ (%s)", u), r.Centroid},
		{fmt.Sprintf("I about reference (%s⁴)", u), r.IReference},
		{fmt.Sprintf("I about neutral axis (%s⁴)", u), r.ICentroid},
		{fmt.Sprintf("Radius of gyration (%s)", u), r.RadiusOfGyration},
	}
	if err := writeRows(f, ResultsSheet, results); err != nil {
		return err
	}
	if err := f.SetCellStyle(ResultsSheet, "A1", fmt.Sprintf("A%d", len(results)), bold); err != nil {
		return err
	}
	if err := f.SetColWidth(ResultsSheet, "A", "A", 28); err != nil {
		return err
	}

	return save(f, path)
}

// WriteSweepWorkbook writes every valid sample of a sweep and its optima
func WriteSweepWorkbook(path string, r *crane.Result) error {
	if r == nil || len(r.Samples) == 0 {
		return crane.ErrNoValidGeometry
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SweepSheet); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	rows := [][]any{{"Tie (m)", "θ post (°)", "θ tie (°)", "θ jib (°)", "Jib force (kN)", "Tie force (kN)", "Total (kN)"}}
	for _, s := range r.Samples {
		rows = append(rows, []any{
			s.Tie,
			crane.Degrees(s.AnglePost),
			crane.Degrees(s.AngleTie),
			crane.Degrees(s.AngleJib),
			s.ForceJib,
			s.ForceTie,
			s.Total(),
		})
	}
	if err := writeRows(f, SweepSheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(SweepSheet, "A1", "G1", bold); err != nil {
		return err
	}
	if err := f.SetColWidth(SweepSheet, "A", "G", 14); err != nil {
		return err
	}

	if _, err := f.NewSheet(OptimaSheet); err != nil {
		return err
	}
	g := r.Geometry
	optima := [][]any{
		{"Post (m)", g.Post},
		{"Jib (m)", g.Jib},
		{"Load (kN)", g.Load},
		{"Skipped tie lengths", r.Skipped},
		{},
		{"Configuration", "Tie (m)", "Jib force (kN)", "Tie force (kN)", "Total (kN)", "Jib angle (°)"},
	}
	for _, o := range []struct {
		name string
		s    crane.Sample
	}{
		{"Minimum jib force", r.MinJib()},
		{"Minimum tie force", r.MinTie()},
		{"Minimum total force", r.MinTotal()},
	} {
		optima = append(optima, []any{o.name, o.s.Tie, o.s.ForceJib, o.s.ForceTie, o.s.Total(), o.s.JibAngle()})
	}
	if err := writeRows(f, OptimaSheet, optima); err != nil {
		return err
	}
	if err := f.SetCellStyle(OptimaSheet, "A6", "F6", bold); err != nil {
		return err
	}
	if err := f.SetColWidth(OptimaSheet, "A", "A", 22); err != nil {
		return err
	}

	return save(f, path)
}

func unitOrDefault(unit string) string {
	if unit == "" {
		return "mm"
	}
	return unit
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func save(f *excelize.File, path string) error {
	if err := ensureParent(path); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func ensureParent(path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}
