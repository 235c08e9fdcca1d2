package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking holds a room for a guest over the half-open date interval
// [CheckInDate, CheckOutDate). Bookings are never hard-deleted; cancellation
// is a status change so payment and audit history stay intact.
type Booking struct {
	ID            int64         `json:"id" gorm:"primaryKey"`
	UserID        int64         `json:"user_id" validate:"required"`
	HotelID       int64         `json:"hotel_id" validate:"required"`
	RoomID        int64         `json:"room_id" gorm:"index" validate:"required"`
	CheckInDate   time.Time     `json:"check_in_date" gorm:"type:date"`
	CheckOutDate  time.Time     `json:"check_out_date" gorm:"type:date"`
	Status        BookingStatus `json:"status"`
	TotalAmount   float64       `json:"total_amount" validate:"gte=0"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	DiscountID    *int64        `json:"discount_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	CancelledAt   *time.Time    `json:"cancelled_at,omitempty"`
}

// Nights returns the number of nights covered by the stay.
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate) / (24 * time.Hour))
}
