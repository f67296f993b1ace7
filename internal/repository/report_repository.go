package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/k1ske/gigpay/internal/model"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

type earningsRow struct {
	ID         uuid.UUID
	FirstName  string
	LastName   string
	Profession string
	Balance    decimal.Decimal
	Type       model.ProfileType
	CreatedAt  time.Time
	Total      decimal.Decimal
}

// BestProfession returns the contractor who earned the most from jobs
// paid for work created inside the window, or nil when nothing
// qualifies. Grouping is per contractor profile, so two contractors
// sharing a profession are ranked independently.
func (r *ReportRepository) BestProfession(ctx context.Context, start, end time.Time) (*model.ContractorEarnings, error) {
	var row earningsRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.first_name,
			p.last_name,
			p.profession,
			p.balance,
			p.type,
			p.created_at,
			SUM(j.price) AS total
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles p ON p.id = c.contractor_id
		WHERE j.paid IS TRUE
			AND j.created_at BETWEEN ? AND ?
		GROUP BY p.id, p.first_name, p.last_name, p.profession, p.balance, p.type, p.created_at
		ORDER BY total DESC
		LIMIT 1
	`, start, end).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}

	return &model.ContractorEarnings{
		Profile:       rowProfile(row),
		TotalReceived: row.Total,
	}, nil
}

// BestClients returns the top clients by settled payment volume inside
// the window, highest first.
func (r *ReportRepository) BestClients(ctx context.Context, start, end time.Time, limit int) ([]model.ClientPayment, error) {
	var rows []earningsRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.first_name,
			p.last_name,
			p.profession,
			p.balance,
			p.type,
			p.created_at,
			SUM(j.price) AS total
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles p ON p.id = c.client_id
		WHERE j.paid IS TRUE
			AND j.created_at BETWEEN ? AND ?
		GROUP BY p.id, p.first_name, p.last_name, p.profession, p.balance, p.type, p.created_at
		ORDER BY total DESC
		LIMIT ?
	`, start, end, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	clients := make([]model.ClientPayment, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, model.ClientPayment{
			Profile:   rowProfile(row),
			TotalPaid: row.Total,
		})
	}
	return clients, nil
}

func rowProfile(row earningsRow) model.Profile {
	return model.Profile{
		ID:         row.ID,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		Profession: row.Profession,
		Balance:    row.Balance,
		Type:       row.Type,
		CreatedAt:  row.CreatedAt,
	}
}
