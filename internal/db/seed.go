package db

import (
	"fmt"

	"gorm.io/gorm"
)

// Development fixtures: two clients, two contractors, three contracts
// and a spread of paid and unpaid jobs. Inserts are conflict-tolerant
// so seeding an already seeded database changes nothing.
var seedStatements = []string{
	`INSERT INTO profiles (id, first_name, last_name, profession, balance, type) VALUES
		('3f1c2a34-9d1e-4a7b-8b10-6a2f8c1d0001', 'Nora', 'Vance', 'Product Manager', 1150.00, 'client'),
		('3f1c2a34-9d1e-4a7b-8b10-6a2f8c1d0002', 'Silas', 'Drummond', 'Founder', 231.11, 'client'),
		('3f1c2a34-9d1e-4a7b-8b10-6a2f8c1d0003', 'Imre', 'Kovacs', 'Programmer', 1214.00, 'contractor'),
		('3f1c2a34-9d1e-4a7b-8b10-6a2f8c1d0004', 'Leda', 'Okafor', 'Designer', 64.00, 'contractor')
	ON CONFLICT DO NOTHING;`,
	`INSERT INTO contracts (id, terms, status, client_id, contractor_id) VALUES
		('7b9e5d10-2c4f-4e6a-9f33-1d8a4b2c0001', 'Backend rework, milestone billing', 'in_progress',
			'3f1c2a34-9d1e-4a7b-8b10-6a2f8c1d0001', '3f1c2a34-9d1e-4a7b-8b10-6a2f8c1d0003'),
		('7b9e5d10-2c4f-4e6a-9f33-1d8a4b2c0002', 'Brand refresh, fixed fee', 'in_progress',
			'3f1c2a34-9d1e-4a7b-8b10-6a2f8c1d0002', '3f1c2a34-9d1e-4a7b-8b10-6a2f8c1d0004'),
		('7b9e5d10-2c4f-4e6a-9f33-1d8a4b2c0003', 'Legacy maintenance, wound down', 'terminated',
			'3f1c2a34-9d1e-4a7b-8b10-6a2f8c1d0001', '3f1c2a34-9d1e-4a7b-8b10-6a2f8c1d0004')
	ON CONFLICT DO NOTHING;`,
	`INSERT INTO jobs (id, contract_id, description, price, paid, payment_date) VALUES
		('c5d7e821-6a3b-4f59-b0c2-9e4f7a1b0001', '7b9e5d10-2c4f-4e6a-9f33-1d8a4b2c0001', 'API migration', 201.00, NULL, NULL),
		('c5d7e821-6a3b-4f59-b0c2-9e4f7a1b0002', '7b9e5d10-2c4f-4e6a-9f33-1d8a4b2c0001', 'Schema redesign', 202.00, NULL, NULL),
		('c5d7e821-6a3b-4f59-b0c2-9e4f7a1b0003', '7b9e5d10-2c4f-4e6a-9f33-1d8a4b2c0001', 'Worker queue', 200.00, TRUE, '2020-08-15 19:11:26'),
		('c5d7e821-6a3b-4f59-b0c2-9e4f7a1b0004', '7b9e5d10-2c4f-4e6a-9f33-1d8a4b2c0002', 'Logo exploration', 121.00, NULL, NULL),
		('c5d7e821-6a3b-4f59-b0c2-9e4f7a1b0005', '7b9e5d10-2c4f-4e6a-9f33-1d8a4b2c0002', 'Style guide', 121.00, TRUE, '2020-08-17 19:11:26')
	ON CONFLICT DO NOTHING;`,
}

func Seed(db *gorm.DB) error {
	for i, stmt := range seedStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("seed %d failed: %w", i+1, err)
		}
	}
	return nil
}
