package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/jarenas/migasto/internal/model"
)

var pdfWidths = []float64{90, 70, 110, 70, 175}

// PDF renders the subset as an A4 document with a title header and one
// table row per transaction.
func PDF(transactions []model.Transaction, year, month int) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	// Core fonts are cp1252; the translator keeps accented category
	// names and descriptions intact.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(40, 50, tr(Title(year, month)))

	pdf.SetXY(40, 80)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(11, 102, 255)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range columns {
		pdf.CellFormat(pdfWidths[i], 18, tr(header), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, t := range transactions {
		pdf.SetX(40)
		for i, value := range row(t) {
			pdf.CellFormat(pdfWidths[i], 16, tr(value), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buffer.Bytes(), nil
}
