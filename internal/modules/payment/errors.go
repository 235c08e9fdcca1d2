package payment

import "errors"

var (
	ErrDuplicateTransaction   = errors.New("transaction id already recorded")
	ErrInvalidAmount          = errors.New("payment amount must be positive")
	ErrInvalidStatus          = errors.New("unknown payment status")
	ErrInvalidStateTransition = errors.New("payment status transition not allowed")
	ErrNotFound               = errors.New("payment or booking not found")
)
