package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// resetFlags puts every flag back to its default so runs do not leak into
// each other through the package-level flag variables.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	resetFlags(rootCmd)

	if args == nil {
		args = []string{}
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestRootBanner(t *testing.T) {
	out := execute(t)
	assert.Contains(t, out, "gomech v")
	assert.Contains(t, out, "Composite section properties")
}

func TestVersion(t *testing.T) {
	out := execute(t, "version")
	assert.Contains(t, out, "gomech v")
}

func TestLoads(t *testing.T) {
	out := execute(t, "loads", "--dead", "5", "--live", "10")
	assert.Contains(t, out, "1.2D + 1.6L")
	assert.Contains(t, out, "← GOVERNS")
	assert.Contains(t, out, "FACTORED LOAD (W) = 22.00 kN")

	out = execute(t, "loads")
	assert.Contains(t, out, "Error: Please provide at least one unfactored load.")
}

func TestCraneSolve(t *testing.T) {
	out := execute(t, "crane", "solve", "--post", "8", "--jib", "13", "--tie", "9", "--load", "20")
	assert.Contains(t, out, "JIB CRANE FORCE ANALYSIS")
	assert.Contains(t, out, "32.5000 kN")
	assert.Contains(t, out, "22.5000 kN")
	assert.NotContains(t, out, "Governing combination")
}

func TestCraneSolveFactoredLoad(t *testing.T) {
	out := execute(t, "crane", "solve", "--tie", "9", "--dead", "5", "--live", "10")
	assert.Contains(t, out, "Governing combination:")
	assert.Contains(t, out, "35.7500 kN")
}

func TestCraneSolveErrors(t *testing.T) {
	out := execute(t, "crane", "solve", "--tie", "30")
	assert.Contains(t, out, "Error: invalid geometry")

	out = execute(t, "crane", "solve", "--tie", "9", "--load", "-1")
	assert.Contains(t, out, "Error: invalid load")

	out = execute(t, "crane", "solve", "--tie", "9", "--dead", "-1")
	assert.Contains(t, out, "Error: invalid load")
}

func TestCraneSolveVerbose(t *testing.T) {
	out := execute(t, "crane", "solve", "--tie", "9", "-v")
	assert.Contains(t, out, "configuration solved")
}

func TestCraneSweep(t *testing.T) {
	dir := t.TempDir()
	xlsx := filepath.Join(dir, "sweep.xlsx")
	pdf := filepath.Join(dir, "sweep.pdf")
	png := filepath.Join(dir, "forces.png")

	out := execute(t, "crane", "sweep", "--current", "9", "--chart", "--table",
		"--xlsx", xlsx, "--pdf", pdf, "-o", png)

	assert.Contains(t, out, "OPTIMIZATION RESULTS")
	assert.Contains(t, out, "CURRENT CONFIGURATION (TIE = 9 M):")
	assert.Contains(t, out, "MINIMUM TOTAL FORCE = 45.38 kN at tie 5.15 m")
	assert.Contains(t, out, "Force (kN) vs tie length")

	for _, f := range []string{xlsx, pdf, png, filepath.Join(dir, "forces-angle.png")} {
		assert.FileExists(t, f)
		assert.Contains(t, out, f)
	}
}

func TestCraneSweepParallel(t *testing.T) {
	sequential := execute(t, "crane", "sweep", "--samples", "400")
	parallel := execute(t, "crane", "sweep", "--samples", "400", "--workers", "4")
	assert.Equal(t, sequential, parallel)
}

func TestCraneSweepNoValidGeometry(t *testing.T) {
	out := execute(t, "crane", "sweep", "--tie-min", "1", "--tie-max", "3")
	assert.Contains(t, out, "Error: no valid geometry")

	out = execute(t, "crane", "sweep", "--samples", "0")
	assert.Contains(t, out, "Error: invalid geometry")
}

func TestCraneSweepCurrentOutOfRange(t *testing.T) {
	out := execute(t, "crane", "sweep", "--current", "40")
	assert.Contains(t, out, "Warning: current tie length 40 m")
	assert.NotContains(t, out, "CURRENT CONFIGURATION")
	assert.Contains(t, out, "MINIMUM TOTAL FORCE")
}

func TestSectionIBeam(t *testing.T) {
	dir := t.TempDir()
	xlsx := filepath.Join(dir, "girder.xlsx")
	svg := filepath.Join(dir, "girder.svg")

	out := execute(t, "section", "ibeam", "--diagram", "--xlsx", xlsx, "-o", svg)
	assert.Contains(t, out, "COMPOSITE SECTION PROPERTIES")
	assert.Contains(t, out, "18720 mm²")
	assert.Contains(t, out, "I about neutral axis = 1185.22 × 10⁶ mm⁴")
	assert.Contains(t, out, "N.A. (ȳ = 300.00)")
	assert.FileExists(t, xlsx)
	assert.FileExists(t, svg)
}

func TestSectionIBeamInvalid(t *testing.T) {
	out := execute(t, "section", "ibeam", "--web-thickness", "0")
	assert.Contains(t, out, "Error: web thickness must be positive")
}

func TestSectionAnalyze(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tee.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "name": "Built-up tee",
  "description": "Flange plate on a web plate",
  "reference": "bottom face",
  "rectangles": [
    {"label": "web", "width": 20, "height": 180, "bottom": 0},
    {"label": "flange", "width": 200, "height": 20, "bottom": 180}
  ]
}`), 0644))
	pdf := filepath.Join(dir, "tee.pdf")

	out := execute(t, "section", "analyze", "-f", path, "--diagram", "--pdf", pdf)
	assert.Contains(t, out, "Section: Built-up tee")
	assert.Contains(t, out, "Flange plate on a web plate")
	assert.Contains(t, out, "7600 mm²")
	assert.Contains(t, out, "Centroid from bottom face")
	assert.Contains(t, out, "Section modulus, bottom:")
	assert.Contains(t, out, "N.A.")
	assert.FileExists(t, pdf)
}

func TestSectionAnalyzeMixedParts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stiffened.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "name": "Stiffened plate",
  "unit": "in",
  "rectangles": [
    {"label": "plate", "width": 200, "height": 20, "bottom": 0}
  ],
  "shapes": [
    {"label": "stiffener", "area": 4000, "offset": 500, "own_i": 1000000}
  ]
}`), 0644))
	xlsx := filepath.Join(dir, "stiffened.xlsx")

	out := execute(t, "section", "analyze", "-f", path, "--xlsx", xlsx)
	assert.Contains(t, out, "Centroid from reference axis (ȳ):")
	assert.Contains(t, out, "255.00 in")
	assert.NotContains(t, out, "Section modulus")

	f, err := excelize.OpenFile(xlsx)
	require.NoError(t, err)
	defer f.Close()
	header, err := f.GetCellValue("Parts", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Area (in²)", header)
}

func TestSectionAnalyzeMissingFile(t *testing.T) {
	out := execute(t, "section", "analyze", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Contains(t, out, "Error loading section:")
}
