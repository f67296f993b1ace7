package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/k1ske/gigpay/internal/model"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, first_name, last_name, profession, balance, type, created_at
		FROM profiles
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&profile).Error
	if err != nil {
		return nil, err
	}
	if profile.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &profile, nil
}

// Deposit tops up a client balance, capped at 125% of the client's
// outstanding unpaid job total. Balance and pending total are re-read
// inside the transaction so the cap decision and the write see the
// same state.
func (r *ProfileRepository) Deposit(ctx context.Context, clientID uuid.UUID, amount decimal.Decimal) error {
	capMultiplier := decimal.NewFromFloat(1.25)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var balance decimal.Decimal
		err := tx.Raw(`
			SELECT balance FROM profiles WHERE id = ?
		`, clientID).Scan(&balance).Error
		if err != nil {
			return err
		}

		var pendingTotal decimal.Decimal
		err = tx.Raw(`
			SELECT COALESCE(SUM(j.price), 0)
			FROM jobs j
			JOIN contracts c ON c.id = j.contract_id
			WHERE c.client_id = ?
				AND j.paid IS NOT TRUE
		`, clientID).Scan(&pendingTotal).Error
		if err != nil {
			return err
		}

		next := balance.Add(amount)
		if next.GreaterThan(pendingTotal.Mul(capMultiplier)) {
			return ErrDepositCapExceeded
		}

		result := tx.Exec(`
			UPDATE profiles SET balance = ? WHERE id = ?
		`, next, clientID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
