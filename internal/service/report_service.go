package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/k1ske/gigpay/internal/model"
	"github.com/k1ske/gigpay/internal/repository"
)

// bestClientsLimit matches the admin report contract: top two clients.
const bestClientsLimit = 2

type ExportFormat string

const (
	ExportFormatXLSX ExportFormat = "xlsx"
	ExportFormatPDF  ExportFormat = "pdf"
)

type StatementGenerator interface {
	Generate(statement model.ClientPaymentsStatement) ([]byte, error)
}

type ReportService struct {
	reports *repository.ReportRepository
	excel   StatementGenerator
	pdf     StatementGenerator
}

type ExportResult struct {
	FileName    string
	ContentType string
	Content     []byte
}

func NewReportService(reports *repository.ReportRepository, excel, pdf StatementGenerator) *ReportService {
	return &ReportService{reports: reports, excel: excel, pdf: pdf}
}

// BestProfession returns the contractor with the highest settled
// earnings for jobs created inside [start, end], or nil when the window
// holds no paid jobs. Rejects zero or inverted ranges.
func (s *ReportService) BestProfession(ctx context.Context, start, end time.Time) (*model.ContractorEarnings, error) {
	if start.IsZero() || end.IsZero() || start.After(end) {
		return nil, ErrInvalidDateRange
	}
	return s.reports.BestProfession(ctx, start, end)
}

// BestClients returns the top two clients by settled payment volume
// inside [start, end]. An inverted range is accepted as-is and simply
// matches nothing; only unparseable dates are rejected.
func (s *ReportService) BestClients(ctx context.Context, start, end time.Time) ([]model.ClientPayment, error) {
	if start.IsZero() || end.IsZero() {
		return nil, ErrInvalidDateRange
	}
	return s.reports.BestClients(ctx, start, end, bestClientsLimit)
}

// ExportBestClients renders the best-clients aggregation as a
// downloadable statement in the requested format.
func (s *ReportService) ExportBestClients(ctx context.Context, start, end time.Time, format ExportFormat) (*ExportResult, error) {
	rows, err := s.BestClients(ctx, start, end)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.TotalPaid)
	}
	statement := model.ClientPaymentsStatement{
		PeriodStart: start,
		PeriodEnd:   end,
		Rows:        rows,
		Total:       total,
	}

	var generator StatementGenerator
	var contentType string
	switch format {
	case ExportFormatXLSX:
		generator = s.excel
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ExportFormatPDF:
		generator = s.pdf
		contentType = "application/pdf"
	default:
		return nil, fmt.Errorf("%w: unknown export format", ErrInvalidInput)
	}

	content, err := generator.Generate(statement)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		FileName: fmt.Sprintf("best-clients-%s-%s.%s",
			start.Format("2006-01-02"), end.Format("2006-01-02"), format),
		ContentType: contentType,
		Content:     content,
	}, nil
}
