package repository

import "errors"

// Guard failures surfaced by transactional writes. The service layer
// maps these onto its own error taxonomy.
var (
	ErrJobAlreadyPaid      = errors.New("job already paid")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrDepositCapExceeded  = errors.New("deposit cap exceeded")
)
