package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/k1ske/gigpay/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// GetForClient returns the contract only when the caller is its client.
// A contract owned by someone else is indistinguishable from a missing one.
func (r *ContractRepository) GetForClient(ctx context.Context, id, clientID uuid.UUID) (*model.Contract, error) {
	var contract model.Contract
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, terms, status, client_id, contractor_id, created_at
		FROM contracts
		WHERE id = ? AND client_id = ?
		LIMIT 1
	`, id, clientID).Scan(&contract).Error
	if err != nil {
		return nil, err
	}
	if contract.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &contract, nil
}

// ListForProfile returns the caller's non-terminated contracts, on
// either side of the agreement.
func (r *ContractRepository) ListForProfile(ctx context.Context, profileID uuid.UUID) ([]model.Contract, error) {
	contracts := make([]model.Contract, 0)
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, terms, status, client_id, contractor_id, created_at
		FROM contracts
		WHERE status <> ?
			AND (client_id = ? OR contractor_id = ?)
		ORDER BY created_at
	`, model.ContractStatusTerminated, profileID, profileID).Scan(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}
