package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/k1ske/gigpay/internal/model"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// GetForClient loads a job joined to its contract, requiring the
// contract's client to be the caller. Jobs under other clients'
// contracts come back as not found, same as absent ones. The
// contractor id is returned alongside for the settlement credit.
func (r *JobRepository) GetForClient(ctx context.Context, jobID, clientID uuid.UUID) (*model.Job, uuid.UUID, error) {
	var row struct {
		ID           uuid.UUID
		ContractID   uuid.UUID
		Description  string
		Price        decimal.Decimal
		Paid         *bool
		PaymentDate  *time.Time
		CreatedAt    time.Time
		ContractorID uuid.UUID
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			j.id,
			j.contract_id,
			j.description,
			j.price,
			j.paid,
			j.payment_date,
			j.created_at,
			c.contractor_id
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE j.id = ? AND c.client_id = ?
		LIMIT 1
	`, jobID, clientID).Scan(&row).Error
	if err != nil {
		return nil, uuid.Nil, err
	}
	if row.ID == uuid.Nil {
		return nil, uuid.Nil, gorm.ErrRecordNotFound
	}

	return &model.Job{
		ID:          row.ID,
		ContractID:  row.ContractID,
		Description: row.Description,
		Price:       row.Price,
		Paid:        row.Paid,
		PaymentDate: row.PaymentDate,
		CreatedAt:   row.CreatedAt,
	}, row.ContractorID, nil
}

// ListUnpaidForProfile returns the caller's unpaid jobs under contracts
// still in progress. The caller may sit on either side of the contract.
func (r *JobRepository) ListUnpaidForProfile(ctx context.Context, profileID uuid.UUID) ([]model.Job, error) {
	jobs := make([]model.Job, 0)
	err := r.db.WithContext(ctx).Raw(`
		SELECT j.id, j.contract_id, j.description, j.price, j.paid, j.payment_date, j.created_at
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE j.paid IS NOT TRUE
			AND c.status = ?
			AND (c.client_id = ? OR c.contractor_id = ?)
		ORDER BY j.created_at
	`, model.ContractStatusInProgress, profileID, profileID).Scan(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// Settle moves a job's price from the client to the contractor and
// flags the job paid, all in one transaction. Every statement is
// guarded by its own precondition so two racing settlements of the
// same job cannot both commit: the loser's paid-flag update touches
// zero rows and the whole transaction rolls back.
func (r *JobRepository) Settle(ctx context.Context, jobID, clientID, contractorID uuid.UUID, price decimal.Decimal, paidAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Exec(`
			UPDATE jobs
			SET paid = TRUE, payment_date = ?
			WHERE id = ? AND paid IS NOT TRUE
		`, paidAt, jobID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobAlreadyPaid
		}

		result = tx.Exec(`
			UPDATE profiles
			SET balance = balance - ?
			WHERE id = ? AND balance >= ?
		`, price, clientID, price)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInsufficientBalance
		}

		result = tx.Exec(`
			UPDATE profiles
			SET balance = balance + ?
			WHERE id = ?
		`, price, contractorID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
