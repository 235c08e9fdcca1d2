package domain

import "time"

// TxnStatus is the state of a single payment attempt. A booking may carry
// several attempts; the booking-level PaymentStatus is derived from them.
type TxnStatus string

const (
	TxnPending   TxnStatus = "pending"
	TxnCompleted TxnStatus = "completed"
	TxnFailed    TxnStatus = "failed"
	TxnRefunded  TxnStatus = "refunded"
)

func (s TxnStatus) Valid() bool {
	switch s {
	case TxnPending, TxnCompleted, TxnFailed, TxnRefunded:
		return true
	}
	return false
}

type Payment struct {
	ID            int64      `json:"id" gorm:"primaryKey"`
	BookingID     int64      `json:"booking_id" gorm:"index" validate:"required"`
	Amount        float64    `json:"amount" validate:"gt=0"`
	Method        string     `json:"method"`
	TransactionID string     `json:"transaction_id" gorm:"uniqueIndex" validate:"required"`
	Status        TxnStatus  `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}
