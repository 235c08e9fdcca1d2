package payment

import (
	"context"
	"errors"

	"hotelier/internal/domain"
	"hotelier/internal/modules/events"
	"hotelier/internal/repository"
)

type Service struct {
	payments PaymentRepository
	bookings BookingRepository
	events   EventPublisher
}

func NewService(payments PaymentRepository, bookings BookingRepository, events EventPublisher) *Service {
	return &Service{
		payments: payments,
		bookings: bookings,
		events:   events,
	}
}

// RecordPayment registers a payment attempt against a booking. The attempt
// starts pending; the gateway outcome arrives later through SettlePayment.
// transaction_id is globally unique and the storage unique index decides
// races: the second writer gets ErrDuplicateTransaction.
func (s *Service) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*domain.Payment, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if _, err := s.bookings.GetByID(ctx, req.BookingID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p := &domain.Payment{
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		Method:        req.Method,
		TransactionID: req.TransactionID,
		Status:        domain.TxnPending,
	}

	if err := s.payments.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicateTransaction) {
			return nil, ErrDuplicateTransaction
		}
		return nil, err
	}

	if s.events != nil {
		s.events.PublishPayment(events.EventPaymentRecorded, p)
	}

	return p, nil
}

// SettlePayment applies the gateway outcome. Completing a payment that covers
// the booking total marks the booking paid and auto-confirms it when still
// pending; refunding flips the booking to refunded but never cancels it.
func (s *Service) SettlePayment(ctx context.Context, transactionID string, status string) (*domain.Payment, error) {
	target := domain.TxnStatus(status)
	if !target.Valid() || target == domain.TxnPending {
		return nil, ErrInvalidStatus
	}

	p, b, err := s.payments.Settle(ctx, transactionID, target)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repository.ErrInvalidTransition):
			return nil, ErrInvalidStateTransition
		}
		return nil, err
	}

	if s.events != nil {
		s.events.PublishPayment(events.EventPaymentSettled, p)
		if target == domain.TxnCompleted && b.Status == domain.BookingConfirmed {
			s.events.PublishBooking(events.EventBookingConfirmed, b)
		}
	}

	return p, nil
}

func (s *Service) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	p, err := s.payments.GetByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) ListForBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	if _, err := s.bookings.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.payments.ListByBooking(ctx, bookingID)
}
