package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/engine"
	"github.com/alexiusacademia/gobeam/internal/report"
	"github.com/alexiusacademia/gobeam/internal/table"
)

var (
	diagramInput  string
	diagramSheet  string
	diagramSFD    string
	diagramBMD    string
	diagramReport string
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Plot a precomputed SFD/BMD series without re-analyzing",
	Long: `Read an already-computed (x, shear, moment) table and export the
diagram plots, bypassing the reaction solver and the sampler. Use this
when the analysis was done elsewhere and only rendering is needed.

The table must contain all three columns by name (case-insensitive):
x/position, shear force, bending moment. There is no positional fallback
on this path. No support reactions are computed or shown.

Examples:
  # Export SFD and BMD plots from a precomputed series
  gobeam diagram --input data/forces.xlsx

  # Also assemble a PDF around the plots
  gobeam diagram --input data/forces.xlsx --report output/report.pdf`,
	RunE: runDiagram,
}

func init() {
	rootCmd.AddCommand(diagramCmd)

	diagramCmd.Flags().StringVarP(&diagramInput, "input", "i", "data/forces.xlsx", "Input workbook with x, shear and moment columns")
	diagramCmd.Flags().StringVar(&diagramSheet, "sheet", "", "Worksheet name (default: first sheet)")
	diagramCmd.Flags().StringVar(&diagramSFD, "sfd", "output/sfd.png", "Shear force plot output path (.png/.svg/.pdf)")
	diagramCmd.Flags().StringVar(&diagramBMD, "bmd", "output/bmd.png", "Bending moment plot output path (.png/.svg/.pdf)")
	diagramCmd.Flags().StringVar(&diagramReport, "report", "", "Also write a PDF report to this path")
}

func runDiagram(cmd *cobra.Command, args []string) error {
	opts := table.DefaultOptions()
	opts.Sheet = diagramSheet

	log.Infof("reading precomputed series from %s", diagramInput)
	series, err := table.ReadSeries(diagramInput, opts)
	if err != nil {
		return err
	}
	if err := engine.ValidateSeries(series); err != nil {
		return err
	}

	d := engine.FromSeries(series)
	if err := diagram.ExportShear(d, diagramSFD); err != nil {
		return err
	}
	if err := diagram.ExportMoment(d, diagramBMD); err != nil {
		return err
	}
	log.Infof("wrote diagram plots %s, %s", diagramSFD, diagramBMD)

	if diagramReport == "" {
		return nil
	}
	err = report.Write(report.Params{
		Source:      diagramInput,
		Diagram:     d,
		ShearImage:  diagramSFD,
		MomentImage: diagramBMD,
	}, diagramReport)
	if err != nil {
		return err
	}
	log.Infof("wrote report %s", diagramReport)
	return nil
}
