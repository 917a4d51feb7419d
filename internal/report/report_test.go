package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/engine"
)

func testDiagram(reactions *engine.Reactions) engine.Diagram {
	return engine.Diagram{
		X:         []float64{0, 2, 6, 10},
		Shear:     []float64{10, 0, -10, -10},
		Moment:    []float64{0, 20, 20, 0},
		Reactions: reactions,
	}
}

func exportPlots(t *testing.T, dir string, d engine.Diagram) (string, string) {
	t.Helper()
	sfd := filepath.Join(dir, "sfd.png")
	bmd := filepath.Join(dir, "bmd.png")
	require.NoError(t, diagram.ExportShear(d, sfd))
	require.NoError(t, diagram.ExportMoment(d, bmd))
	return sfd, bmd
}

func TestWriteFullReport(t *testing.T) {
	dir := t.TempDir()
	d := testDiagram(&engine.Reactions{RA: 10, RB: 10})
	sfd, bmd := exportPlots(t, dir, d)

	out := filepath.Join(dir, "out", "report.pdf")
	err := Write(Params{
		Title:  "Test Beam",
		Author: "QA",
		Source: "data/forces.xlsx",
		Loads: []engine.LoadPoint{
			{Position: 2, Magnitude: 10},
			{Position: 6, Magnitude: 10},
		},
		Span:        10,
		Diagram:     d,
		ShearImage:  sfd,
		MomentImage: bmd,
		Schematic:   filepath.Join(dir, "missing-beam.png"),
	}, out)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteWithoutReactions(t *testing.T) {
	// precomputed-diagram path: no reactions section, no load table
	dir := t.TempDir()
	d := testDiagram(nil)
	sfd, bmd := exportPlots(t, dir, d)

	out := filepath.Join(dir, "report.pdf")
	err := Write(Params{
		Diagram:     d,
		ShearImage:  sfd,
		MomentImage: bmd,
	}, out)
	require.NoError(t, err)

	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestWriteMissingDiagramImage(t *testing.T) {
	dir := t.TempDir()
	d := testDiagram(nil)

	err := Write(Params{
		Diagram:     d,
		ShearImage:  filepath.Join(dir, "missing.png"),
		MomentImage: filepath.Join(dir, "missing.png"),
	}, filepath.Join(dir, "report.pdf"))
	assert.Error(t, err)
}
