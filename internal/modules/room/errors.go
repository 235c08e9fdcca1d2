package room

import "errors"

var (
	ErrInvalidStatus = errors.New("unknown room status")
	ErrDuplicateRoom = errors.New("room number already exists for hotel")
	ErrNotFound      = errors.New("room not found")
	ErrValidation    = errors.New("validation error")
)
