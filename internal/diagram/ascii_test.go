package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobeam/internal/engine"
)

func testDiagram() engine.Diagram {
	return engine.Diagram{
		X:      []float64{0, 2, 6, 10},
		Shear:  []float64{10, 0, -10, -10},
		Moment: []float64{0, 20, 20, 0},
	}
}

func TestRenderShear(t *testing.T) {
	out := RenderShear(testDiagram())
	require.NotEmpty(t, out)
	assert.Contains(t, out, "Shear Force Diagram (SFD)")
}

func TestRenderMoment(t *testing.T) {
	out := RenderMoment(testDiagram())
	require.NotEmpty(t, out)
	assert.Contains(t, out, "Bending Moment Diagram (BMD)")
}

func TestRenderEmptyDiagram(t *testing.T) {
	assert.Empty(t, RenderShear(engine.Diagram{}))
	assert.Empty(t, RenderMoment(engine.Diagram{}))
}

func TestDrawBeamSchematic(t *testing.T) {
	loads := []engine.LoadPoint{
		{Position: 2, Magnitude: 10},
		{Position: 6, Magnitude: 10},
	}
	out := DrawBeamSchematic(loads, 10)

	assert.Contains(t, out, "x=0")
	assert.Contains(t, out, "x=10")
	assert.Equal(t, 2, strings.Count(out, "▼"))
	assert.Equal(t, 2, strings.Count(out, "▲"))
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("KEY RESULTS", []string{
		"Max shear:  10.000 N at x = 0.000 m",
		"Max moment: 20.000 N-m at x = 2.000 m",
	})
	assert.Contains(t, out, "KEY RESULTS")
	assert.Contains(t, out, "Max moment")
	assert.Equal(t, 6, strings.Count(out, "\n"))
}
