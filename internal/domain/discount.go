package domain

import "time"

// Discount is referenced by bookings but owned by hotel management.
type Discount struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	Code       string    `json:"code" gorm:"uniqueIndex" validate:"required"`
	Percentage float64   `json:"percentage" validate:"gt=0,lte=100"`
	ValidFrom  time.Time `json:"valid_from"`
	ValidTo    time.Time `json:"valid_to"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// UsableAt reports whether the discount can be applied at the given moment.
func (d *Discount) UsableAt(at time.Time) bool {
	if !d.IsActive {
		return false
	}
	if at.Before(d.ValidFrom) || at.After(d.ValidTo) {
		return false
	}
	return true
}
