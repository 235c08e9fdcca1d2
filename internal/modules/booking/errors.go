package booking

import "errors"

var (
	ErrInvalidDateRange       = errors.New("check-in date must be before check-out date")
	ErrInvalidDiscount        = errors.New("discount code unknown, inactive or expired")
	ErrRoomUnavailable        = errors.New("room is not available for the requested dates")
	ErrInvalidStateTransition = errors.New("booking status transition not allowed")
	ErrNotFound               = errors.New("booking or room not found")
)
