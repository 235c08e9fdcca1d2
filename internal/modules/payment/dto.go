package payment

type RecordPaymentRequest struct {
	BookingID     int64   `json:"booking_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Method        string  `json:"method" binding:"required"`
	TransactionID string  `json:"transaction_id" binding:"required"`
}

type SettlePaymentRequest struct {
	Status string `json:"status" binding:"required"`
}
