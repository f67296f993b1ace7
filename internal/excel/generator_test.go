package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/k1ske/gigpay/internal/model"
)

func TestGenerate(t *testing.T) {
	statement := model.ClientPaymentsStatement{
		PeriodStart: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Rows: []model.ClientPayment{
			{
				Profile: model.Profile{
					FirstName:  "Nora",
					LastName:   "Vance",
					Profession: "Product Manager",
				},
				TotalPaid: decimal.RequireFromString("350.00"),
			},
		},
		Total: decimal.RequireFromString("350.00"),
	}

	content, err := NewGenerator().Generate(statement)
	require.NoError(t, err)
	require.NotEmpty(t, content)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	client, err := file.GetCellValue("Best clients", "A6")
	require.NoError(t, err)
	assert.Equal(t, "Nora Vance", client)

	total, err := file.GetCellValue("Best clients", "C7")
	require.NoError(t, err)
	assert.Equal(t, "350.00", total)
}
