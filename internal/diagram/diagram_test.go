package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gomech/internal/crane"
	"github.com/alexiusacademia/gomech/internal/section"
)

func sweepResult(t *testing.T) *crane.Result {
	t.Helper()
	ties, err := crane.Linspace(5, 20, 50)
	require.NoError(t, err)
	r, err := crane.Sweep(crane.Geometry{Post: 8, Jib: 13, Load: 20}, ties)
	require.NoError(t, err)
	return r
}

func girder(t *testing.T) *section.Result {
	t.Helper()
	r, err := section.Analyze(section.SymmetricISection(300, 20, 560, 12).Shapes())
	require.NoError(t, err)
	return r
}

func TestExportSweepChart(t *testing.T) {
	r := sweepResult(t)
	current, err := crane.Solve(r.Geometry, 9)
	require.NoError(t, err)

	dir := t.TempDir()
	files, err := ExportSweepChart(r, &current, filepath.Join(dir, "charts", "forces.png"))
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "charts", "forces-angle.png"), files[1])

	for _, f := range files {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestExportSweepChartDefaultsToPNG(t *testing.T) {
	files, err := ExportSweepChart(sweepResult(t), nil, filepath.Join(t.TempDir(), "forces"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(files[0], "forces.png"))
	assert.True(t, strings.HasSuffix(files[1], "forces-angle.png"))
}

func TestExportSweepChartEmpty(t *testing.T) {
	_, err := ExportSweepChart(&crane.Result{}, nil, filepath.Join(t.TempDir(), "x.png"))
	assert.ErrorIs(t, err, crane.ErrNoValidGeometry)
}

func TestExportSectionDiagram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "girder.svg")
	require.NoError(t, ExportSectionDiagram("Plate girder", "in", girder(t), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, string(data), "y from reference (in)")
	assert.NotContains(t, string(data), "(mm)")
}

func TestExportSectionDiagramNeedsOutlines(t *testing.T) {
	r, err := section.Analyze([]section.Shape{{Label: "a", Area: 100, Offset: 10}})
	require.NoError(t, err)

	err = ExportSectionDiagram("", "", r, filepath.Join(t.TempDir(), "a.png"))
	assert.Error(t, err)
}

func TestAngleChartName(t *testing.T) {
	assert.Equal(t, "out/forces-angle.svg", AngleChartName("out/forces.svg"))
}

func TestDrawASCIISweepChart(t *testing.T) {
	out := DrawASCIISweepChart(sweepResult(t))
	assert.Contains(t, out, "Force (kN) vs tie length")
	assert.Greater(t, strings.Count(out, "\n"), 15)

	assert.Empty(t, DrawASCIISweepChart(nil))
}

func TestDrawASCIISection(t *testing.T) {
	out := DrawASCIISection(girder(t))
	assert.Contains(t, out, "N.A. (ȳ = 300.00)")
	assert.Contains(t, out, "reference at y = 0")

	lines := strings.Split(out, "\n")
	// Flanges are drawn wider than the web
	var widest, narrowest int
	narrowest = 1 << 30
	for _, l := range lines {
		n := strings.Count(l, "█")
		if n == 0 {
			continue
		}
		widest = max(widest, n)
		narrowest = min(narrowest, n)
	}
	assert.Equal(t, 30, widest)
	assert.Less(t, narrowest, widest)
}

func TestDrawASCIISectionWithoutOutlines(t *testing.T) {
	r, err := section.Analyze([]section.Shape{{Label: "a", Area: 100, Offset: 10}})
	require.NoError(t, err)
	assert.Empty(t, DrawASCIISection(r))
}

func TestWidthAtY(t *testing.T) {
	square := []section.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	assert.InDelta(t, 10, widthAtY(square, 5), 1e-12)
	assert.Zero(t, widthAtY(square, 11))
}
