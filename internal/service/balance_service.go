package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/k1ske/gigpay/internal/repository"
)

type BalanceService struct {
	profiles *repository.ProfileRepository
}

func NewBalanceService(profiles *repository.ProfileRepository) *BalanceService {
	return &BalanceService{profiles: profiles}
}

// Deposit tops up a client's balance. The new balance may not exceed
// 125% of the client's total pending (unpaid) job value; landing
// exactly on the cap is allowed. A profile that does not exist or is
// not a client is rejected the same way.
func (s *BalanceService) Deposit(ctx context.Context, profileID uuid.UUID, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidDeposit
	}

	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotClient
		}
		return err
	}
	if !profile.IsClient() {
		return ErrNotClient
	}

	err = s.profiles.Deposit(ctx, profileID, amount)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDepositCapExceeded):
		return ErrDepositCapExceeded
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotClient
	default:
		return err
	}
}
