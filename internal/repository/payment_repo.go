package repository

import (
	"context"
	"errors"
	"time"

	"hotelier/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create inserts a new payment attempt. The transaction_id unique index is
// the source of truth for idempotency: a second insert with the same id fails
// with ErrDuplicateTransaction no matter how the race interleaves.
func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if isUniqueConstraintError(err) {
			return ErrDuplicateTransaction
		}
		return err
	}
	return nil
}

func (r *PaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	var out []domain.Payment
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Settle moves a payment to its terminal state and reconciles the owning
// booking in the same transaction. Allowed transitions:
// pending -> completed|failed, completed -> refunded.
//
// A completed payment covering the full booking amount flips the booking to
// paid and auto-confirms it when still pending. A refund flips the booking to
// refunded but never cancels it; cancellation stays an explicit call.
func (r *PaymentRepository) Settle(ctx context.Context, transactionID string, newStatus domain.TxnStatus) (*domain.Payment, *domain.Booking, error) {
	var p domain.Payment
	var b bookingModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("transaction_id = ?", transactionID).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if !settleAllowed(p.Status, newStatus) {
			return ErrInvalidTransition
		}

		updates := map[string]interface{}{"status": string(newStatus)}
		if newStatus == domain.TxnCompleted {
			now := time.Now().UTC()
			updates["paid_at"] = now
		}
		if err := tx.Model(&domain.Payment{}).Where("id = ?", p.ID).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&b, p.BookingID).Error; err != nil {
			return err
		}

		switch newStatus {
		case domain.TxnCompleted:
			if p.Amount >= b.TotalAmount && b.PaymentStatus == string(domain.PaymentUnpaid) {
				if err := tx.Model(&bookingModel{}).Where("id = ?", b.ID).
					Update("payment_status", string(domain.PaymentPaid)).Error; err != nil {
					return err
				}
				b.PaymentStatus = string(domain.PaymentPaid)

				if b.Status == string(domain.BookingPending) {
					if err := tx.Model(&bookingModel{}).Where("id = ?", b.ID).
						Update("status", string(domain.BookingConfirmed)).Error; err != nil {
						return err
					}
					b.Status = string(domain.BookingConfirmed)
				}
			}
		case domain.TxnRefunded:
			if err := tx.Model(&bookingModel{}).Where("id = ?", b.ID).
				Update("payment_status", string(domain.PaymentRefunded)).Error; err != nil {
				return err
			}
			b.PaymentStatus = string(domain.PaymentRefunded)
		}

		p.Status = newStatus
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &p, toDomainBooking(b), nil
}

func settleAllowed(from, to domain.TxnStatus) bool {
	switch from {
	case domain.TxnPending:
		return to == domain.TxnCompleted || to == domain.TxnFailed
	case domain.TxnCompleted:
		return to == domain.TxnRefunded
	}
	return false
}
