package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gobeam/internal/engine"
)

// Console plot dimensions. Width counts value columns, not the axis labels
// asciigraph adds on the left.
const (
	plotWidth  = 72
	plotHeight = 12
)

// RenderShear draws the shear force diagram as a console line plot.
func RenderShear(d engine.Diagram) string {
	return renderSeries(d.Shear, "Shear Force Diagram (SFD)")
}

// RenderMoment draws the bending moment diagram as a console line plot.
func RenderMoment(d engine.Diagram) string {
	return renderSeries(d.Moment, "Bending Moment Diagram (BMD)")
}

func renderSeries(values []float64, caption string) string {
	if len(values) == 0 {
		return ""
	}
	return asciigraph.Plot(values,
		asciigraph.Width(plotWidth),
		asciigraph.Height(plotHeight),
		asciigraph.Caption(caption),
		asciigraph.Precision(2),
	)
}

// DrawBeamSchematic sketches the beam with its supports and load arrows,
// scaled to the span.
func DrawBeamSchematic(loads []engine.LoadPoint, span float64) string {
	const width = 60

	arrows := []rune(strings.Repeat(" ", width+1))
	for _, p := range loads {
		col := int(p.Position / span * float64(width))
		if col < 0 || col > width {
			continue
		}
		arrows[col] = '▼'
	}

	var sb strings.Builder
	sb.WriteString("  " + string(arrows) + "\n")
	sb.WriteString("  " + strings.Repeat("━", width+1) + "\n")
	sb.WriteString("  ▲" + strings.Repeat(" ", width-1) + "▲\n")
	sb.WriteString(fmt.Sprintf("  x=0%sx=%.3g\n", strings.Repeat(" ", width-6), span))
	return sb.String()
}

// DrawSummaryBox frames a titled block of result lines.
func DrawSummaryBox(title string, lines []string) string {
	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	var sb strings.Builder
	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))
	return sb.String()
}
