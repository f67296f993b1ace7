package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Job is a unit of payable work under a contract. Paid is tri-state:
// nil and false both mean "not yet paid", only an explicit true means
// the job has been settled. PaymentDate is set exactly once, at
// settlement time.
type Job struct {
	ID          uuid.UUID       `json:"id"`
	ContractID  uuid.UUID       `json:"contractId"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Paid        *bool           `json:"paid"`
	PaymentDate *time.Time      `json:"paymentDate"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func (j Job) IsPaid() bool {
	return j.Paid != nil && *j.Paid
}
