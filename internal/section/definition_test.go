package section

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFileJSON(t *testing.T) {
	path := writeFile(t, "tee.json", `{
  "name": "Built-up tee",
  "reference": "bottom face",
  "rectangles": [
    {"label": "web", "width": 20, "height": 180, "bottom": 0},
    {"label": "flange", "width": 200, "height": 20, "bottom": 180}
  ],
  "shapes": [
    {"label": "bar", "area": 314, "offset": 40, "own_i": 0}
  ]
}`)

	def, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Built-up tee", def.Name)
	assert.Equal(t, "bottom face", def.ReferenceOrDefault())
	assert.Equal(t, "mm", def.UnitOrDefault())

	parts, err := def.Parts()
	require.NoError(t, err)
	require.Len(t, parts, 3)
	assert.Equal(t, "bar", parts[0].Label)
	assert.Equal(t, "web", parts[1].Label)
	assert.Equal(t, 190.0, parts[2].Offset)
}

func TestLoadFromFileYAML(t *testing.T) {
	path := writeFile(t, "girder.yaml", `
unit: mm
shapes:
  - label: top
    area: 2400
    offset: 215
    own_i: 80000
  - label: web
    area: 2700
    offset: 120
    own_i: 7290000
  - label: bottom
    area: 4800
    offset: 15
    own_i: 360000
polygons:
  - label: gusset
    vertices:
      - {x: 0, y: 0}
      - {x: 120, y: 0}
      - {x: 60, y: 90}
`)

	def, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "girder", def.Name, "name defaults to the file name")

	parts, err := def.Parts()
	require.NoError(t, err)
	require.Len(t, parts, 4)
	assert.Equal(t, "gusset", parts[3].Label)
	assert.InDelta(t, 5400, parts[3].Area, 1e-9)

	r, err := Analyze(parts[:3])
	require.NoError(t, err)
	assert.InDelta(t, 9900, r.TotalArea, 1e-9)
}

func TestLoadFromFileWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parts.xlsx")

	f := excelize.NewFile()
	rows := [][]any{
		{"Label", "Area", "Offset", "OwnI"},
		{"top", 2400, 215, 80000},
		{"web", 2700, 120, 7290000},
		{},
		{"bottom", 4800, 15, 360000},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		if len(row) > 0 {
			require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
		}
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	def, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "parts", def.Name)
	require.Len(t, def.Shapes, 3)

	parts, err := def.Parts()
	require.NoError(t, err)
	r, err := Analyze(parts)
	require.NoError(t, err)
	assert.InDelta(t, 158630000, r.IReference, 1e-3)
}

func TestLoadFromFileErrors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := LoadFromFile(writeFile(t, "section.txt", "x"))
		assert.ErrorContains(t, err, "unsupported section file")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := LoadFromFile(writeFile(t, "bad.json", "{"))
		assert.Error(t, err)
	})

	t.Run("no parts", func(t *testing.T) {
		_, err := LoadFromFile(writeFile(t, "empty.json", `{"name": "empty"}`))
		assert.ErrorIs(t, err, ErrInvalidGeometry)
	})

	t.Run("bad rectangle", func(t *testing.T) {
		_, err := LoadFromFile(writeFile(t, "rect.yaml", "rectangles:\n  - {label: r, width: 0, height: 10}\n"))
		assert.ErrorIs(t, err, ErrInvalidGeometry)
	})

	t.Run("bad shape", func(t *testing.T) {
		_, err := LoadFromFile(writeFile(t, "shape.json", `{"shapes": [{"label": "s", "area": -1, "offset": 0}]}`))
		assert.ErrorIs(t, err, ErrInvalidGeometry)
	})
}
