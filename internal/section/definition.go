package section

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Definition is a composite section as written in an input file.
//
// Parts can be listed directly with their area, offset and own second moment,
// or described geometrically as rectangles and polygons. All offsets and
// coordinates are measured from the same reference axis.
type Definition struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Length unit used for display, "mm" when empty
	Unit string `json:"unit,omitempty" yaml:"unit,omitempty"`

	// Description of the reference axis, e.g. "bottom face"
	Reference string `json:"reference,omitempty" yaml:"reference,omitempty"`

	Shapes     []Shape         `json:"shapes,omitempty" yaml:"shapes,omitempty"`
	Rectangles []RectangleSpec `json:"rectangles,omitempty" yaml:"rectangles,omitempty"`
	Polygons   []PolygonSpec   `json:"polygons,omitempty" yaml:"polygons,omitempty"`
}

// RectangleSpec is a rectangular part given by its dimensions
type RectangleSpec struct {
	Label  string  `json:"label" yaml:"label"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Bottom float64 `json:"bottom" yaml:"bottom"` // distance of the bottom edge from the reference axis
}

// PolygonSpec is a part bounded by a simple polygon
type PolygonSpec struct {
	Label    string  `json:"label" yaml:"label"`
	Vertices []Point `json:"vertices" yaml:"vertices"`
}

// UnitOrDefault returns the display unit
func (d *Definition) UnitOrDefault() string {
	if d.Unit == "" {
		return "mm"
	}
	return d.Unit
}

// ReferenceOrDefault returns the reference axis description
func (d *Definition) ReferenceOrDefault() string {
	if d.Reference == "" {
		return "reference axis"
	}
	return d.Reference
}

// Validate checks that the definition describes at least one usable part
func (d *Definition) Validate() error {
	if len(d.Shapes)+len(d.Rectangles)+len(d.Polygons) == 0 {
		return &ValidationError{"section must have at least one part"}
	}
	for i, r := range d.Rectangles {
		if !(r.Width > 0) || !(r.Height > 0) {
			return &ValidationError{msg: fmt.Sprintf("rectangle %d (%s) must have positive width and height", i+1, r.Label)}
		}
	}
	for i, p := range d.Polygons {
		if len(p.Vertices) < 3 {
			return &ValidationError{msg: fmt.Sprintf("polygon %d (%s) must have at least 3 vertices", i+1, p.Label)}
		}
	}
	for i, s := range d.Shapes {
		if err := s.Validate(); err != nil {
			return &ValidationError{msg: fmt.Sprintf("shape %d: %v", i+1, err)}
		}
	}
	return nil
}

// Parts expands the definition into shapes: listed shapes first, then
// rectangles, then polygons, each in file order.
func (d *Definition) Parts() ([]Shape, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	parts := make([]Shape, 0, len(d.Shapes)+len(d.Rectangles)+len(d.Polygons))
	parts = append(parts, d.Shapes...)
	for _, r := range d.Rectangles {
		parts = append(parts, Rectangle(r.Label, r.Width, r.Height, r.Bottom))
	}
	for _, p := range d.Polygons {
		s, err := Polygon(p.Label, p.Vertices)
		if err != nil {
			return nil, err
		}
		parts = append(parts, s)
	}
	return parts, nil
}

// LoadFromFile loads a section definition from a JSON, YAML or Excel file.
// The format is chosen by extension.
func LoadFromFile(path string) (*Definition, error) {
	var (
		def *Definition
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		def, err = loadJSON(path)
	case ".yaml", ".yml":
		def, err = loadYAML(path)
	case ".xlsx":
		def, err = loadWorkbook(path)
	default:
		return nil, fmt.Errorf("unsupported section file %q (use .json, .yaml or .xlsx)", path)
	}
	if err != nil {
		return nil, err
	}

	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

func loadJSON(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &def, nil
}

func loadYAML(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &def, nil
}

// loadWorkbook reads the parts table from the first sheet of a workbook.
// The first row is a header; each following row is Label, Area, Offset, OwnI.
// Blank rows are ignored.
func loadWorkbook(path string) (*Definition, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, &ValidationError{msg: fmt.Sprintf("sheet %q has no part rows", sheet)}
	}

	def := &Definition{}
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}
		if len(row) < 4 {
			return nil, &ValidationError{msg: fmt.Sprintf("row %d: expected label, area, offset and own I", i+1)}
		}

		values := make([]float64, 3)
		for j := 0; j < 3; j++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[j+1]), 64)
			if err != nil {
				return nil, &ValidationError{msg: fmt.Sprintf("row %d column %d: %q is not a number", i+1, j+2, row[j+1])}
			}
			values[j] = v
		}

		def.Shapes = append(def.Shapes, Shape{
			Label:  strings.TrimSpace(row[0]),
			Area:   values[0],
			Offset: values[1],
			OwnI:   values[2],
		})
	}
	return def, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
