// Package report renders the pump selection report as a PDF document.
package report

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"
)

// Entry is a labeled value line in the report. Entries are ordered, so the
// report layout is stable across runs.
type Entry struct {
	Label string
	Value string
}

// Data holds the report content.
type Data struct {
	Inputs          []Entry
	Results         []Entry
	Recommendations []string
}

// Render produces the PDF document as bytes.
func Render(data Data) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(200, 10, "Submersible Pump Selection Report", "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(200, 10, "Input Parameters:", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, entry := range data.Inputs {
		pdf.CellFormat(200, 6, fmt.Sprintf("%s: %s", entry.Label, entry.Value), "", 1, "", false, 0, "")
	}

	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(200, 10, "Calculation Results:", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, entry := range data.Results {
		pdf.CellFormat(200, 6, fmt.Sprintf("%s: %s", entry.Label, entry.Value), "", 1, "", false, 0, "")
	}

	if len(data.Recommendations) > 0 {
		pdf.Ln(5)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(200, 10, "Recommendations:", "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, rec := range data.Recommendations {
			pdf.CellFormat(200, 6, "- "+rec, "", 1, "", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

// Write renders the report and writes it to path.
func Write(data Data, path string) error {
	content, err := Render(data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
