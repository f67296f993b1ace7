package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProfileType string

const (
	ProfileTypeClient     ProfileType = "client"
	ProfileTypeContractor ProfileType = "contractor"
)

// Profile is a marketplace account: a client pays for jobs, a contractor
// performs them. Balance is mutated only through settlement and deposit.
type Profile struct {
	ID         uuid.UUID       `json:"id"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Profession string          `json:"profession"`
	Balance    decimal.Decimal `json:"balance"`
	Type       ProfileType     `json:"type"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func (p Profile) IsClient() bool {
	return p.Type == ProfileTypeClient
}

func (p Profile) IsContractor() bool {
	return p.Type == ProfileTypeContractor
}
