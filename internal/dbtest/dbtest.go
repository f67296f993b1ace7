// Package dbtest provides in-memory sqlite fixtures for repository,
// service and handler tests.
package dbtest

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/k1ske/gigpay/internal/db"
	"github.com/k1ske/gigpay/internal/model"
)

// New opens a fresh in-memory database with the full schema applied.
// The pool is pinned to one connection so every query sees the same
// memory database.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.RunMigrations(database))
	return database
}

var profileSeq int

// Profile inserts a profile of the given type and balance and returns it.
func Profile(t *testing.T, database *gorm.DB, profileType model.ProfileType, balance string) model.Profile {
	t.Helper()

	profileSeq++
	profile := model.Profile{
		ID:         uuid.New(),
		FirstName:  fmt.Sprintf("First%d", profileSeq),
		LastName:   fmt.Sprintf("Last%d", profileSeq),
		Profession: "Programmer",
		Balance:    mustDecimal(t, balance),
		Type:       profileType,
		CreatedAt:  time.Now().UTC(),
	}

	err := database.Exec(`
		INSERT INTO profiles (id, first_name, last_name, profession, balance, type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, profile.ID, profile.FirstName, profile.LastName, profile.Profession,
		profile.Balance, profile.Type, profile.CreatedAt).Error
	require.NoError(t, err)
	return profile
}

// Contract inserts a contract between the two profiles and returns it.
func Contract(t *testing.T, database *gorm.DB, clientID, contractorID uuid.UUID, status model.ContractStatus) model.Contract {
	t.Helper()

	contract := model.Contract{
		ID:           uuid.New(),
		Terms:        "standard terms",
		Status:       status,
		ClientID:     clientID,
		ContractorID: contractorID,
		CreatedAt:    time.Now().UTC(),
	}

	err := database.Exec(`
		INSERT INTO contracts (id, terms, status, client_id, contractor_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, contract.ID, contract.Terms, contract.Status, contract.ClientID,
		contract.ContractorID, contract.CreatedAt).Error
	require.NoError(t, err)
	return contract
}

// Job inserts a job under the contract. Paid may be nil for the
// tri-state "never touched" case.
func Job(t *testing.T, database *gorm.DB, contractID uuid.UUID, price string, paid *bool, createdAt time.Time) model.Job {
	t.Helper()

	job := model.Job{
		ID:          uuid.New(),
		ContractID:  contractID,
		Description: "work item",
		Price:       mustDecimal(t, price),
		Paid:        paid,
		CreatedAt:   createdAt,
	}
	if job.IsPaid() {
		paidAt := createdAt
		job.PaymentDate = &paidAt
	}

	err := database.Exec(`
		INSERT INTO jobs (id, contract_id, description, price, paid, payment_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, job.ID, job.ContractID, job.Description, job.Price, job.Paid,
		job.PaymentDate, job.CreatedAt).Error
	require.NoError(t, err)
	return job
}

// Bool returns a pointer for the tri-state paid column.
func Bool(v bool) *bool {
	return &v
}

func mustDecimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	parsed, err := decimal.NewFromString(value)
	require.NoError(t, err)
	return parsed
}
