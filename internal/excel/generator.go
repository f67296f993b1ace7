package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/k1ske/gigpay/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the client payments statement as a single-sheet
// workbook: period header, one row per client, total row.
func (g *Generator) Generate(statement model.ClientPaymentsStatement) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Best clients"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Report")
	set("B1", "Best clients by settled payments")
	set("A2", "Period start")
	set("B2", formatDate(statement.PeriodStart))
	set("A3", "Period end")
	set("B3", formatDate(statement.PeriodEnd))

	tableRow := 5
	headers := []string{"Client", "Profession", "Total paid"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i, row := range statement.Rows {
		rowIndex := tableRow + 1 + i
		set(fmt.Sprintf("A%d", rowIndex), row.FirstName+" "+row.LastName)
		set(fmt.Sprintf("B%d", rowIndex), row.Profession)
		set(fmt.Sprintf("C%d", rowIndex), row.TotalPaid.StringFixed(2))
	}

	totalRow := tableRow + 1 + len(statement.Rows)
	set(fmt.Sprintf("A%d", totalRow), "Total")
	set(fmt.Sprintf("C%d", totalRow), statement.Total.StringFixed(2))

	_ = file.SetColWidth(sheet, "A", "A", 32)
	_ = file.SetColWidth(sheet, "B", "B", 24)
	_ = file.SetColWidth(sheet, "C", "C", 16)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
