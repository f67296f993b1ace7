package service

import "errors"

// Domain failures, translated to HTTP statuses at the request boundary.
// Error text doubles as the response message.
var (
	ErrNotFound            = errors.New("not found")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrAlreadyPaid         = errors.New("job is already paid")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidDeposit      = errors.New("invalid deposit value")
	ErrNotClient           = errors.New("profile is not a client")
	ErrDepositCapExceeded  = errors.New("balance cannot exceed 25% of total pending job value")
)
