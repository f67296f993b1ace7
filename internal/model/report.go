package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractorEarnings is the best-profession aggregation row: one
// contractor profile plus everything it received in the window.
// The grouping key is the contractor profile, not the profession
// string, so two contractors sharing a profession rank separately.
type ContractorEarnings struct {
	Profile
	TotalReceived decimal.Decimal `json:"totalReceived"`
}

// ClientPayment is one best-clients aggregation row.
type ClientPayment struct {
	Profile
	TotalPaid decimal.Decimal `json:"totalPaid"`
}

// ClientPaymentsStatement is the exportable form of the best-clients
// report, rendered to xlsx or pdf by the generators.
type ClientPaymentsStatement struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	Rows        []ClientPayment
	Total       decimal.Decimal
}
