package db

import (
	"fmt"

	"gorm.io/gorm"
)

// Schema statements are kept portable between postgres and sqlite:
// uuid keys as text, money as NUMERIC(12,2), no engine-specific types.
var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id VARCHAR(36) PRIMARY KEY,
		first_name VARCHAR(255) NOT NULL,
		last_name VARCHAR(255) NOT NULL,
		profession VARCHAR(255) NOT NULL,
		balance NUMERIC(12,2) NOT NULL DEFAULT 0,
		type VARCHAR(16) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id VARCHAR(36) PRIMARY KEY,
		terms TEXT NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'new',
		client_id VARCHAR(36) NOT NULL REFERENCES profiles(id),
		contractor_id VARCHAR(36) NOT NULL REFERENCES profiles(id),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id VARCHAR(36) PRIMARY KEY,
		contract_id VARCHAR(36) NOT NULL REFERENCES contracts(id),
		description TEXT NOT NULL,
		price NUMERIC(12,2) NOT NULL,
		paid BOOLEAN,
		payment_date TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_client_id ON contracts (client_id);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_contractor_id ON contracts (contractor_id);`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_contract_id ON jobs (contract_id);`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_paid ON jobs (paid);`,
}

// RunMigrations applies the schema statements in order. Statements are
// idempotent so a restart against an existing database is a no-op.
func RunMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
