package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/engine"
	"github.com/alexiusacademia/gobeam/internal/report"
	"github.com/alexiusacademia/gobeam/internal/table"
)

var (
	reportInput      string
	reportSheet      string
	reportSpan       float64
	reportResolution int
	reportOut        string
	reportTitle      string
	reportAuthor     string
	reportSchematic  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a PDF analysis report from a load table",
	Long: `Run the full pipeline: read the point-load table, compute support
reactions, sample the shear force and bending moment diagrams, export the
diagram plots and assemble a PDF report.

The SFD and BMD plot images are written next to the report and embedded
into it. A beam schematic image is included when present at the path
given by --schematic.

Examples:
  # Default pipeline: data/forces.xlsx -> output/report.pdf
  gobeam report

  # Custom input, span and title
  gobeam report -i loads.xlsx -L 12 --title "Warehouse Girder B-3"`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportInput, "input", "i", "data/forces.xlsx", "Input workbook with the load table")
	reportCmd.Flags().StringVar(&reportSheet, "sheet", "", "Worksheet name (default: first sheet)")
	reportCmd.Flags().Float64VarP(&reportSpan, "span", "L", 0, "Span length; 0 derives it from the loads")
	reportCmd.Flags().IntVarP(&reportResolution, "resolution", "n", engine.DefaultResolution, "Number of sample points along the beam")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "output/report.pdf", "Output PDF path")
	reportCmd.Flags().StringVar(&reportTitle, "title", "", "Report title")
	reportCmd.Flags().StringVar(&reportAuthor, "author", "", "Report author")
	reportCmd.Flags().StringVar(&reportSchematic, "schematic", "assets/beam.png", "Beam schematic image to embed when present")
}

func runReport(cmd *cobra.Command, args []string) error {
	opts := table.DefaultOptions()
	opts.Sheet = reportSheet

	log.Infof("reading loads from %s", reportInput)
	loads, err := table.ReadLoads(reportInput, opts)
	if err != nil {
		return err
	}
	log.Debugf("parsed %d loads", len(loads))

	d, err := engine.Analyze(loads, reportSpan, reportResolution)
	if err != nil {
		return err
	}
	span := d.X[len(d.X)-1]
	log.Infof("reactions: RA=%.3f RB=%.3f (L=%.3f)", d.Reactions.RA, d.Reactions.RB, span)

	outDir := filepath.Dir(reportOut)
	sfdPath := filepath.Join(outDir, "sfd.png")
	bmdPath := filepath.Join(outDir, "bmd.png")
	if err := diagram.ExportShear(d, sfdPath); err != nil {
		return err
	}
	if err := diagram.ExportMoment(d, bmdPath); err != nil {
		return err
	}
	log.Infof("wrote diagram plots %s, %s", sfdPath, bmdPath)

	err = report.Write(report.Params{
		Title:       reportTitle,
		Author:      reportAuthor,
		Source:      reportInput,
		Loads:       loads,
		Span:        span,
		Diagram:     d,
		ShearImage:  sfdPath,
		MomentImage: bmdPath,
		Schematic:   reportSchematic,
	}, reportOut)
	if err != nil {
		return err
	}
	log.Infof("wrote report %s", reportOut)
	return nil
}
