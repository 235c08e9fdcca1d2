package payment

import (
	"context"

	"hotelier/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error)
	Settle(ctx context.Context, transactionID string, newStatus domain.TxnStatus) (*domain.Payment, *domain.Booking, error)
}

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type EventPublisher interface {
	PublishBooking(eventType string, b *domain.Booking)
	PublishPayment(eventType string, p *domain.Payment)
}
