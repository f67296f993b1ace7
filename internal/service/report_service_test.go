package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/k1ske/gigpay/internal/dbtest"
	"github.com/k1ske/gigpay/internal/excel"
	"github.com/k1ske/gigpay/internal/model"
	"github.com/k1ske/gigpay/internal/pdf"
	"github.com/k1ske/gigpay/internal/repository"
)

func newReportService(t *testing.T) (*ReportService, *gorm.DB) {
	t.Helper()
	database := dbtest.New(t)
	reports := NewReportService(repository.NewReportRepository(database), excel.NewGenerator(), pdf.NewGenerator())
	return reports, database
}

func seedPaidJob(t *testing.T, database *gorm.DB, price string, createdAt time.Time) (model.Profile, model.Profile) {
	t.Helper()
	client := dbtest.Profile(t, database, model.ProfileTypeClient, "0.00")
	contractor := dbtest.Profile(t, database, model.ProfileTypeContractor, "0.00")
	contract := dbtest.Contract(t, database, client.ID, contractor.ID, model.ContractStatusInProgress)
	dbtest.Job(t, database, contract.ID, price, dbtest.Bool(true), createdAt)
	return client, contractor
}

func TestReportService_BestProfession(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("rejects an inverted range", func(t *testing.T) {
		reports, _ := newReportService(t)
		_, err := reports.BestProfession(ctx, end, start)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("returns the top contractor", func(t *testing.T) {
		reports, database := newReportService(t)
		_, contractor := seedPaidJob(t, database, "300.00", start.AddDate(0, 0, 5))

		best, err := reports.BestProfession(ctx, start, end)
		require.NoError(t, err)
		require.NotNil(t, best)
		assert.Equal(t, contractor.ID, best.ID)
		assert.True(t, best.TotalReceived.Equal(decimal.RequireFromString("300.00")))
	})

	t.Run("empty window returns nil without error", func(t *testing.T) {
		reports, _ := newReportService(t)
		best, err := reports.BestProfession(ctx, start, end)
		require.NoError(t, err)
		assert.Nil(t, best)
	})
}

func TestReportService_BestClients(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("inverted range is accepted and matches nothing", func(t *testing.T) {
		reports, database := newReportService(t)
		seedPaidJob(t, database, "300.00", start.AddDate(0, 0, 5))

		clients, err := reports.BestClients(ctx, end, start)
		require.NoError(t, err)
		assert.Empty(t, clients)
	})

	t.Run("caps the ranking at two clients", func(t *testing.T) {
		reports, database := newReportService(t)
		seedPaidJob(t, database, "300.00", start.AddDate(0, 0, 5))
		seedPaidJob(t, database, "200.00", start.AddDate(0, 0, 5))
		seedPaidJob(t, database, "100.00", start.AddDate(0, 0, 5))

		clients, err := reports.BestClients(ctx, start, end)
		require.NoError(t, err)
		require.Len(t, clients, 2)
		assert.True(t, clients[0].TotalPaid.Equal(decimal.RequireFromString("300.00")))
		assert.True(t, clients[1].TotalPaid.Equal(decimal.RequireFromString("200.00")))
	})
}

func TestReportService_ExportBestClients(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("renders xlsx and pdf", func(t *testing.T) {
		reports, database := newReportService(t)
		seedPaidJob(t, database, "300.00", start.AddDate(0, 0, 5))

		xlsx, err := reports.ExportBestClients(ctx, start, end, ExportFormatXLSX)
		require.NoError(t, err)
		assert.NotEmpty(t, xlsx.Content)
		assert.Contains(t, xlsx.FileName, ".xlsx")
		assert.Contains(t, xlsx.ContentType, "spreadsheetml")

		pdfResult, err := reports.ExportBestClients(ctx, start, end, ExportFormatPDF)
		require.NoError(t, err)
		assert.NotEmpty(t, pdfResult.Content)
		assert.Equal(t, "application/pdf", pdfResult.ContentType)
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		reports, _ := newReportService(t)
		_, err := reports.ExportBestClients(ctx, start, end, ExportFormat("csv"))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
