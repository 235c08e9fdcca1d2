package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound             = errors.New("record not found")
	ErrRoomUnavailable      = errors.New("room unavailable for requested dates")
	ErrDuplicateRoom        = errors.New("room number already exists for hotel")
	ErrDuplicateTransaction = errors.New("transaction id already recorded")
	ErrInvalidTransition    = errors.New("state transition not allowed")
)

func isUniqueConstraintError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique failed")
}

// isExclusionViolation detects the PostgreSQL bookings_no_overlap constraint
// firing. SQLite has no exclusion constraints; there the in-transaction
// availability count is the only guard.
func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}
