package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/k1ske/gigpay/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

// Generate renders the client payments statement as a one-page A4 pdf.
func (g *Generator) Generate(statement model.ClientPaymentsStatement) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Best clients by settled payments", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Period: %s to %s",
		formatDate(statement.PeriodStart), formatDate(statement.PeriodEnd)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Client", "Profession", "Total paid"}
	colWidths := []float64{80, 60, 40}
	drawTableRow(pdf, g.fontName, headers, colWidths, true)

	for _, row := range statement.Rows {
		drawTableRow(pdf, g.fontName, []string{
			row.FirstName + " " + row.LastName,
			row.Profession,
			row.TotalPaid.StringFixed(2),
		}, colWidths, false)
	}

	drawTableRow(pdf, g.fontName, []string{"Total", "", statement.Total.StringFixed(2)}, colWidths, true)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		pdf.CellFormat(widths[i], 7, col, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
