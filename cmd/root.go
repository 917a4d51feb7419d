package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alexiusacademia/gobeam/internal/version"
)

var (
	verbose bool

	// log carries pipeline progress messages for the file-producing
	// commands. Results themselves print to stdout; the analysis engine
	// never logs.
	log *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Simply Supported Beam Diagram Tool",
	Long: `gobeam - Go Beam Diagram and Report Generator

A CLI tool that turns a table of point loads on a simply supported beam
into shear force and bending moment diagrams and a PDF report.

This tool helps structural engineers perform:
  - Support reaction calculation by static equilibrium
  - Shear force diagram (SFD) sampling and plotting
  - Bending moment diagram (BMD) sampling and plotting
  - Rendering of precomputed diagrams from upstream analyses
  - PDF report generation with embedded diagrams

Loads are vertical point loads, positive downward, read from an Excel
workbook with position and magnitude columns.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobeam v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Beam Diagram and Report Generator                    ║")
		fmt.Printf("  ║   %s ©  %s                              ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for shear and bending moment diagrams of simply")
		fmt.Println("  supported beams under point loads.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Load table import from Excel with column inference")
		fmt.Println("    • Support reactions by static equilibrium")
		fmt.Println("    • SFD/BMD sampling, console plots and image export")
		fmt.Println("    • PDF report generation")
		fmt.Println()
		fmt.Println("  Use 'gobeam --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		log = newLogger(verbose)
	}
}

func newLogger(verbose bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	return zap.Must(cfg.Build()).Sugar()
}
