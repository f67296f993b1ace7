package model

import (
	"time"

	"github.com/google/uuid"
)

type ContractStatus string

const (
	ContractStatusNew        ContractStatus = "new"
	ContractStatusInProgress ContractStatus = "in_progress"
	ContractStatusTerminated ContractStatus = "terminated"
)

// Contract links exactly one client profile and one contractor profile.
type Contract struct {
	ID           uuid.UUID      `json:"id"`
	Terms        string         `json:"terms"`
	Status       ContractStatus `json:"status"`
	ClientID     uuid.UUID      `json:"clientId"`
	ContractorID uuid.UUID      `json:"contractorId"`
	CreatedAt    time.Time      `json:"createdAt"`
}
