package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/k1ske/gigpay/internal/dbtest"
	"github.com/k1ske/gigpay/internal/model"
)

func TestJobRepository_GetForClient(t *testing.T) {
	database := dbtest.New(t)
	jobs := NewJobRepository(database)
	ctx := context.Background()

	client := dbtest.Profile(t, database, model.ProfileTypeClient, "500.00")
	otherClient := dbtest.Profile(t, database, model.ProfileTypeClient, "500.00")
	contractor := dbtest.Profile(t, database, model.ProfileTypeContractor, "0.00")
	contract := dbtest.Contract(t, database, client.ID, contractor.ID, model.ContractStatusInProgress)
	job := dbtest.Job(t, database, contract.ID, "200.00", nil, time.Now().UTC())

	t.Run("owner sees the job with its contractor", func(t *testing.T) {
		found, contractorID, err := jobs.GetForClient(ctx, job.ID, client.ID)
		require.NoError(t, err)
		assert.Equal(t, job.ID, found.ID)
		assert.Equal(t, contractor.ID, contractorID)
		assert.True(t, found.Price.Equal(decimal.RequireFromString("200.00")))
		assert.False(t, found.IsPaid())
	})

	t.Run("another client gets not found", func(t *testing.T) {
		_, _, err := jobs.GetForClient(ctx, job.ID, otherClient.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("unknown job gets not found", func(t *testing.T) {
		_, _, err := jobs.GetForClient(ctx, uuid.New(), client.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestJobRepository_ListUnpaidForProfile(t *testing.T) {
	database := dbtest.New(t)
	jobs := NewJobRepository(database)
	ctx := context.Background()
	now := time.Now().UTC()

	client := dbtest.Profile(t, database, model.ProfileTypeClient, "500.00")
	contractor := dbtest.Profile(t, database, model.ProfileTypeContractor, "0.00")
	stranger := dbtest.Profile(t, database, model.ProfileTypeClient, "0.00")

	active := dbtest.Contract(t, database, client.ID, contractor.ID, model.ContractStatusInProgress)
	pending := dbtest.Contract(t, database, client.ID, contractor.ID, model.ContractStatusNew)
	terminated := dbtest.Contract(t, database, client.ID, contractor.ID, model.ContractStatusTerminated)

	neverPaid := dbtest.Job(t, database, active.ID, "100.00", nil, now)
	explicitlyUnpaid := dbtest.Job(t, database, active.ID, "150.00", dbtest.Bool(false), now)
	dbtest.Job(t, database, active.ID, "200.00", dbtest.Bool(true), now)
	dbtest.Job(t, database, pending.ID, "300.00", nil, now)
	dbtest.Job(t, database, terminated.ID, "400.00", nil, now)

	t.Run("client sees unpaid jobs of in-progress contracts only", func(t *testing.T) {
		unpaid, err := jobs.ListUnpaidForProfile(ctx, client.ID)
		require.NoError(t, err)
		require.Len(t, unpaid, 2)
		assert.Equal(t, neverPaid.ID, unpaid[0].ID)
		assert.Equal(t, explicitlyUnpaid.ID, unpaid[1].ID)
	})

	t.Run("contractor side sees the same jobs", func(t *testing.T) {
		unpaid, err := jobs.ListUnpaidForProfile(ctx, contractor.ID)
		require.NoError(t, err)
		assert.Len(t, unpaid, 2)
	})

	t.Run("uninvolved profile sees nothing", func(t *testing.T) {
		unpaid, err := jobs.ListUnpaidForProfile(ctx, stranger.ID)
		require.NoError(t, err)
		assert.Empty(t, unpaid)
	})
}

func TestJobRepository_Settle(t *testing.T) {
	ctx := context.Background()
	paidAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	setup := func(t *testing.T, clientBalance string) (*gorm.DB, *JobRepository, model.Profile, model.Profile, model.Job) {
		database := dbtest.New(t)
		client := dbtest.Profile(t, database, model.ProfileTypeClient, clientBalance)
		contractor := dbtest.Profile(t, database, model.ProfileTypeContractor, "64.00")
		contract := dbtest.Contract(t, database, client.ID, contractor.ID, model.ContractStatusInProgress)
		job := dbtest.Job(t, database, contract.ID, "200.00", nil, time.Now().UTC())
		return database, NewJobRepository(database), client, contractor, job
	}

	t.Run("moves the price and flags the job", func(t *testing.T) {
		database, jobs, client, contractor, job := setup(t, "1150.00")

		err := jobs.Settle(ctx, job.ID, client.ID, contractor.ID, job.Price, paidAt)
		require.NoError(t, err)

		assert.True(t, balanceOf(t, database, client.ID).Equal(decimal.RequireFromString("950.00")))
		assert.True(t, balanceOf(t, database, contractor.ID).Equal(decimal.RequireFromString("264.00")))

		settled := jobState(t, database, job.ID)
		require.NotNil(t, settled.Paid)
		assert.True(t, *settled.Paid)
		require.NotNil(t, settled.PaymentDate)
	})

	t.Run("second settlement of the same job fails", func(t *testing.T) {
		database, jobs, client, contractor, job := setup(t, "1150.00")

		require.NoError(t, jobs.Settle(ctx, job.ID, client.ID, contractor.ID, job.Price, paidAt))
		err := jobs.Settle(ctx, job.ID, client.ID, contractor.ID, job.Price, paidAt)
		assert.ErrorIs(t, err, ErrJobAlreadyPaid)

		// Only one transfer happened.
		assert.True(t, balanceOf(t, database, client.ID).Equal(decimal.RequireFromString("950.00")))
		assert.True(t, balanceOf(t, database, contractor.ID).Equal(decimal.RequireFromString("264.00")))
	})

	t.Run("insufficient balance rolls back the paid flag", func(t *testing.T) {
		database, jobs, client, contractor, job := setup(t, "50.00")

		err := jobs.Settle(ctx, job.ID, client.ID, contractor.ID, job.Price, paidAt)
		assert.ErrorIs(t, err, ErrInsufficientBalance)

		// The flag update ran first inside the transaction; the failed
		// debit must undo it.
		settled := jobState(t, database, job.ID)
		assert.Nil(t, settled.Paid)
		assert.Nil(t, settled.PaymentDate)
		assert.True(t, balanceOf(t, database, client.ID).Equal(decimal.RequireFromString("50.00")))
		assert.True(t, balanceOf(t, database, contractor.ID).Equal(decimal.RequireFromString("64.00")))
	})
}

func balanceOf(t *testing.T, database *gorm.DB, id uuid.UUID) decimal.Decimal {
	t.Helper()
	profile, err := NewProfileRepository(database).GetByID(context.Background(), id)
	require.NoError(t, err)
	return profile.Balance
}

func jobState(t *testing.T, database *gorm.DB, id uuid.UUID) model.Job {
	t.Helper()
	var job model.Job
	err := database.Raw(`
		SELECT id, contract_id, description, price, paid, payment_date, created_at
		FROM jobs WHERE id = ?
	`, id).Scan(&job).Error
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, job.ID)
	return job
}
