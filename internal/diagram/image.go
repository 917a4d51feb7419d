package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gobeam/internal/engine"
)

// ExportShear exports the shear force diagram to an image file. The format
// follows the file extension (.png, .svg or .pdf; anything else gets .png
// appended).
func ExportShear(d engine.Diagram, filename string) error {
	return exportSeries(d.X, d.Shear,
		"Shear Force Diagram", "Shear (N)",
		color.RGBA{R: 31, G: 119, B: 180, A: 255}, filename)
}

// ExportMoment exports the bending moment diagram to an image file.
func ExportMoment(d engine.Diagram, filename string) error {
	return exportSeries(d.X, d.Moment,
		"Bending Moment Diagram", "Moment (N·m)",
		color.RGBA{R: 214, G: 39, B: 40, A: 255}, filename)
}

func exportSeries(x, values []float64, title, yLabel string, c color.Color, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: values[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = c
	p.Add(line)

	// zero reference line marks the beam axis
	if len(x) > 0 {
		zero, err := plotter.NewLine(plotter.XYs{
			{X: x[0], Y: 0},
			{X: x[len(x)-1], Y: 0},
		})
		if err != nil {
			return err
		}
		zero.LineStyle.Width = vg.Points(1)
		zero.LineStyle.Color = color.Gray{Y: 96}
		zero.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(zero)
	}

	return savePlot(p, filename)
}

func savePlot(p *plot.Plot, filename string) error {
	width := 8 * vg.Inch
	height := 4 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
