package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

var (
	sampleOut  string
	sampleKind string
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a sample input workbook",
	Long: `Write an example Excel workbook to try the other commands with.

Two kinds are available:
  loads   - a point-load table (position + magnitude columns)
  series  - a precomputed SFD/BMD table (x + shear + moment columns)
            with a linear shear run and a parabolic moment curve

Examples:
  gobeam sample --kind loads --out data/forces.xlsx
  gobeam sample --kind series --out data/forces.xlsx`,
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().StringVarP(&sampleOut, "out", "o", "data/forces.xlsx", "Output workbook path")
	sampleCmd.Flags().StringVarP(&sampleKind, "kind", "k", "loads", "Sample kind: loads or series")
}

func runSample(cmd *cobra.Command, args []string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	switch sampleKind {
	case "loads":
		if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"Position (m)", "Load (N)"}); err != nil {
			return err
		}
		rows := [][]interface{}{
			{2.0, 10.0},
			{4.0, 5.0},
			{6.0, 10.0},
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return err
			}
		}
	case "series":
		if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"X", "Shear force", "Bending Moment"}); err != nil {
			return err
		}
		// linear shear from +5 to -5 and the matching parabolic moment
		const n = 101
		for i := 0; i < n; i++ {
			x := 10.0 * float64(i) / float64(n-1)
			shear := 5.0 - 10.0*float64(i)/float64(n-1)
			moment := 5.0*x - 0.25*x*x
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet, cell, &[]interface{}{x, shear, moment}); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown sample kind %q (want loads or series)", sampleKind)
	}

	if dir := filepath.Dir(sampleOut); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := f.SaveAs(sampleOut); err != nil {
		return err
	}
	log.Infof("wrote sample %s workbook %s", sampleKind, sampleOut)
	return nil
}
