package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/k1ske/gigpay/internal/model"
	"github.com/k1ske/gigpay/internal/repository"
)

type ContractService struct {
	contracts *repository.ContractRepository
}

func NewContractService(contracts *repository.ContractRepository) *ContractService {
	return &ContractService{contracts: contracts}
}

// GetByID returns the contract when the caller is its client. Contracts
// owned by other clients surface as ErrNotFound, never as a permission
// error, so ownership is not leaked.
func (s *ContractService) GetByID(ctx context.Context, id uuid.UUID, caller model.Profile) (*model.Contract, error) {
	contract, err := s.contracts.GetForClient(ctx, id, caller.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return contract, nil
}

// List returns the caller's non-terminated contracts, whether the
// caller is the client or the contractor.
func (s *ContractService) List(ctx context.Context, caller model.Profile) ([]model.Contract, error) {
	return s.contracts.ListForProfile(ctx, caller.ID)
}
