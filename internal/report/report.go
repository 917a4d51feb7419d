// Package report builds the beam analysis PDF document from a sampled
// diagram and its input data.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gobeam/internal/engine"
)

// Params carries everything the document needs. ShearImage and MomentImage
// are paths to already-exported plot files; Schematic is optional and
// skipped with a note when the file does not exist.
type Params struct {
	Title  string
	Author string
	Source string

	Loads []engine.LoadPoint
	Span  float64

	Diagram engine.Diagram

	ShearImage  string
	MomentImage string
	Schematic   string
}

const (
	pageWidth  = 210.0 // A4 portrait, mm
	marginLR   = 15.0
	imageWidth = pageWidth - 2*marginLR
)

// Write renders the report and saves it to outPath, creating parent
// directories as needed.
func Write(p Params, outPath string) error {
	if p.Title == "" {
		p.Title = "Simply Supported Beam Analysis Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLR, 20, marginLR)
	pdf.AddPage()

	// title block
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, p.Title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	if p.Author != "" {
		pdf.CellFormat(0, 6, p.Author, "", 1, "C", false, 0, "")
	}
	pdf.CellFormat(0, 6, time.Now().Format("2006-01-02"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	sectionTitle(pdf, "Introduction")
	paragraph(pdf, "This report presents a structural analysis of a simply supported beam "+
		"subjected to vertical point loads. The support reactions, shear force diagram (SFD) "+
		"and bending moment diagram (BMD) are computed and plotted.")

	sectionTitle(pdf, "Beam Description")
	desc := "Beam supports: simple supports at x=0 and x=L. Units are consistent (e.g. meters and Newtons)."
	if p.Span > 0 {
		desc += fmt.Sprintf(" Span length L = %.3f m.", p.Span)
	}
	paragraph(pdf, desc)
	if p.Schematic != "" {
		if _, err := os.Stat(p.Schematic); err == nil {
			embedImage(pdf, p.Schematic)
		} else {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.MultiCell(0, 5, fmt.Sprintf("Beam schematic not found at %s - add the image to include it in the report.", p.Schematic), "", "L", false)
			pdf.Ln(2)
		}
	}

	if p.Source != "" {
		sectionTitle(pdf, "Data Source")
		paragraph(pdf, fmt.Sprintf("Input data read from %s. The table below reproduces the data used for analysis.", p.Source))
	}

	if len(p.Loads) > 0 {
		sectionTitle(pdf, "Input Data")
		loadTable(pdf, p.Loads)
	}

	sectionTitle(pdf, "Analysis")
	if r := p.Diagram.Reactions; r != nil {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 6, fmt.Sprintf("Reaction at A (x=0):  RA = %.3f N", r.RA), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("Reaction at B (x=L):  RB = %.3f N", r.RB), "", 1, "L", false, 0, "")
		pdf.Ln(4)
	} else {
		paragraph(pdf, "Diagram values were provided by an upstream analysis; support reactions were not computed.")
	}

	subsectionTitle(pdf, "Shear Force Diagram (SFD)")
	if err := requireImage(pdf, p.ShearImage); err != nil {
		return err
	}

	subsectionTitle(pdf, "Bending Moment Diagram (BMD)")
	if err := requireImage(pdf, p.MomentImage); err != nil {
		return err
	}

	subsectionTitle(pdf, "Summary")
	shear, moment := engine.Extrema(p.Diagram)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Maximum shear:  %.3f N at x = %.3f m", shear.Value, shear.At), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Maximum moment: %.3f N-m at x = %.3f m", moment.Value, moment.At), "", 1, "L", false, 0, "")
	pdf.Ln(4)
	paragraph(pdf, "The SFD shows the internal shear force along the beam; abrupt jumps correspond "+
		"to point loads or support reactions. The BMD shows the internal bending moment; its "+
		"largest values mark the locations critical for section design and checks.")

	if dir := filepath.Dir(outPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return pdf.OutputFileAndClose(outPath)
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func subsectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func paragraph(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 5, text, "", "L", false)
	pdf.Ln(3)
}

func loadTable(pdf *gofpdf.Fpdf, loads []engine.LoadPoint) {
	const colW = 45.0

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colW, 7, "Position (m)", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colW, 7, "Load (N)", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, p := range loads {
		pdf.CellFormat(colW, 6, fmt.Sprintf("%.3f", p.Position), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW, 6, fmt.Sprintf("%.3f", p.Magnitude), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func requireImage(pdf *gofpdf.Fpdf, path string) error {
	if path == "" {
		return fmt.Errorf("report: diagram image path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("report: diagram image %q: %w", path, err)
	}
	embedImage(pdf, path)
	return nil
}

func embedImage(pdf *gofpdf.Fpdf, path string) {
	opts := gofpdf.ImageOptions{ImageType: "", ReadDpi: true}
	pdf.ImageOptions(path, marginLR, 0, imageWidth, 0, true, opts, 0, "")
	pdf.Ln(4)
}
