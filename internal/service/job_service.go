package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/k1ske/gigpay/internal/model"
	"github.com/k1ske/gigpay/internal/repository"
)

type JobService struct {
	jobs *repository.JobRepository
	now  func() time.Time
}

func NewJobService(jobs *repository.JobRepository) *JobService {
	return &JobService{jobs: jobs, now: time.Now}
}

// ListUnpaid returns the caller's not-yet-paid jobs under contracts
// still in progress.
func (s *JobService) ListUnpaid(ctx context.Context, caller model.Profile) ([]model.Job, error) {
	return s.jobs.ListUnpaidForProfile(ctx, caller.ID)
}

// PayForJob settles a job: the caller must be the client of the job's
// contract and hold at least the job's price. The debit, the credit and
// the paid flag commit together or not at all. The pre-checks give the
// caller a precise error; the transactional guards re-assert the same
// conditions so a concurrent settlement or withdrawal cannot slip
// through between read and write.
func (s *JobService) PayForJob(ctx context.Context, jobID uuid.UUID, caller model.Profile) error {
	if !caller.IsClient() {
		return ErrPermissionDenied
	}

	job, contractorID, err := s.jobs.GetForClient(ctx, jobID, caller.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if job.IsPaid() {
		return ErrAlreadyPaid
	}
	if caller.Balance.LessThan(job.Price) {
		return ErrInsufficientBalance
	}

	err = s.jobs.Settle(ctx, job.ID, caller.ID, contractorID, job.Price, s.now().UTC())
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrJobAlreadyPaid):
		return ErrAlreadyPaid
	case errors.Is(err, repository.ErrInsufficientBalance):
		return ErrInsufficientBalance
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return err
	}
}
