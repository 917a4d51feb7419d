package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/engine"
	"github.com/alexiusacademia/gobeam/internal/table"
)

var (
	analyzeInput      string
	analyzeSheet      string
	analyzeSpan       float64
	analyzeResolution int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze point loads and print reactions with SFD/BMD",
	Long: `Read a point-load table from an Excel workbook, compute the support
reactions of the simply supported beam and print the shear force and
bending moment diagrams to the console.

The position and magnitude columns are inferred from the header names
(case-insensitive keywords like "pos", "x", "dist" / "load", "force",
"magnitude"). When neither role can be matched the first two columns are
used as position and magnitude, in that order.

When --span is omitted the span is derived from the loads so that every
load lies inside the supports: max(1.2*maxpos, maxpos+1.0).

Examples:
  # Analyze with an auto-derived span
  gobeam analyze --input data/forces.xlsx

  # Fix the span and sample more densely
  gobeam analyze --input data/forces.xlsx --span 10 --resolution 801`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "data/forces.xlsx", "Input workbook with the load table")
	analyzeCmd.Flags().StringVar(&analyzeSheet, "sheet", "", "Worksheet name (default: first sheet)")
	analyzeCmd.Flags().Float64VarP(&analyzeSpan, "span", "L", 0, "Span length; 0 derives it from the loads")
	analyzeCmd.Flags().IntVarP(&analyzeResolution, "resolution", "n", engine.DefaultResolution, "Number of sample points along the beam")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	opts := table.DefaultOptions()
	opts.Sheet = analyzeSheet

	loads, err := table.ReadLoads(analyzeInput, opts)
	if err != nil {
		return err
	}

	d, err := engine.Analyze(loads, analyzeSpan, analyzeResolution)
	if err != nil {
		return err
	}
	span := d.X[len(d.X)-1]

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("        SIMPLY SUPPORTED BEAM - SFD / BMD ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println(diagram.DrawBeamSchematic(loads, span))

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tPosition (m)\tLoad (N)\n")
	for i, p := range loads {
		fmt.Fprintf(w, "  %d\t%.3f\t%.3f\n", i+1, p.Position, p.Magnitude)
	}
	fmt.Fprintf(w, "  Span (L):\t%.3f m\t\n", span)
	fmt.Fprintf(w, "  Total load:\t%.3f N\t\n", engine.TotalLoad(loads))
	w.Flush()
	fmt.Println()

	fmt.Println("SUPPORT REACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  RA (x=0) = %.3f N\n", d.Reactions.RA)
	fmt.Printf("  RB (x=L) = %.3f N\n", d.Reactions.RB)
	fmt.Println()

	fmt.Println(diagram.RenderShear(d))
	fmt.Println()
	fmt.Println(diagram.RenderMoment(d))
	fmt.Println()

	shear, moment := engine.Extrema(d)
	fmt.Println(diagram.DrawSummaryBox("KEY RESULTS", []string{
		fmt.Sprintf("Max shear:  %.3f N at x = %.3f m", shear.Value, shear.At),
		fmt.Sprintf("Max moment: %.3f N-m at x = %.3f m", moment.Value, moment.At),
	}))

	return nil
}
