package payment

import (
	"context"
	"testing"

	"hotelier/internal/domain"
	"hotelier/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil {
		p.ID = 77
	}
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Settle(ctx context.Context, transactionID string, newStatus domain.TxnStatus) (*domain.Payment, *domain.Booking, error) {
	args := m.Called(ctx, transactionID, newStatus)
	var p *domain.Payment
	var b *domain.Booking
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Payment)
	}
	if args.Get(1) != nil {
		b = args.Get(1).(*domain.Booking)
	}
	return p, b, args.Error(2)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func newTestService() (*Service, *MockPaymentRepository, *MockBookingRepository) {
	payments := new(MockPaymentRepository)
	bookings := new(MockBookingRepository)
	return NewService(payments, bookings, nil), payments, bookings
}

func TestRecordPayment_Success(t *testing.T) {
	svc, payments, bookings := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(5)).Return(&domain.Booking{ID: 5, TotalAmount: 300.00}, nil)
	payments.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)

	p, err := svc.RecordPayment(ctx, RecordPaymentRequest{
		BookingID:     5,
		Amount:        300.00,
		Method:        "card",
		TransactionID: "txn-abc",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(77), p.ID)
	assert.Equal(t, domain.TxnPending, p.Status)
	assert.Equal(t, "txn-abc", p.TransactionID)
	payments.AssertExpectations(t)
	bookings.AssertExpectations(t)
}

func TestRecordPayment_NonPositiveAmount(t *testing.T) {
	svc, payments, _ := newTestService()

	for _, amount := range []float64{0, -10} {
		_, err := svc.RecordPayment(context.Background(), RecordPaymentRequest{
			BookingID:     5,
			Amount:        amount,
			Method:        "card",
			TransactionID: "txn-neg",
		})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecordPayment_UnknownBooking(t *testing.T) {
	svc, payments, bookings := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(404)).Return(nil, repository.ErrNotFound)

	_, err := svc.RecordPayment(ctx, RecordPaymentRequest{
		BookingID:     404,
		Amount:        100.00,
		Method:        "card",
		TransactionID: "txn-x",
	})

	assert.ErrorIs(t, err, ErrNotFound)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecordPayment_DuplicateTransaction(t *testing.T) {
	svc, payments, bookings := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(5)).Return(&domain.Booking{ID: 5}, nil)
	payments.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(repository.ErrDuplicateTransaction)

	_, err := svc.RecordPayment(ctx, RecordPaymentRequest{
		BookingID:     5,
		Amount:        100.00,
		Method:        "card",
		TransactionID: "txn-dup",
	})

	assert.ErrorIs(t, err, ErrDuplicateTransaction)
}

func TestSettlePayment_Completed(t *testing.T) {
	svc, payments, _ := newTestService()
	ctx := context.Background()

	settled := &domain.Payment{ID: 77, TransactionID: "txn-abc", Status: domain.TxnCompleted}
	booking := &domain.Booking{ID: 5, Status: domain.BookingConfirmed, PaymentStatus: domain.PaymentPaid}
	payments.On("Settle", ctx, "txn-abc", domain.TxnCompleted).Return(settled, booking, nil)

	p, err := svc.SettlePayment(ctx, "txn-abc", "completed")

	assert.NoError(t, err)
	assert.Equal(t, domain.TxnCompleted, p.Status)
	payments.AssertExpectations(t)
}

func TestSettlePayment_RejectsUnknownStatus(t *testing.T) {
	svc, payments, _ := newTestService()

	for _, status := range []string{"bogus", "", "pending"} {
		_, err := svc.SettlePayment(context.Background(), "txn-abc", status)
		assert.ErrorIs(t, err, ErrInvalidStatus, "status %q", status)
	}
	payments.AssertNotCalled(t, "Settle", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettlePayment_InvalidTransition(t *testing.T) {
	svc, payments, _ := newTestService()
	ctx := context.Background()

	payments.On("Settle", ctx, "txn-abc", domain.TxnRefunded).Return(nil, nil, repository.ErrInvalidTransition)

	_, err := svc.SettlePayment(ctx, "txn-abc", "refunded")
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestSettlePayment_NotFound(t *testing.T) {
	svc, payments, _ := newTestService()
	ctx := context.Background()

	payments.On("Settle", ctx, "txn-missing", domain.TxnCompleted).Return(nil, nil, repository.ErrNotFound)

	_, err := svc.SettlePayment(ctx, "txn-missing", "completed")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListForBooking(t *testing.T) {
	svc, payments, bookings := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(5)).Return(&domain.Booking{ID: 5}, nil)
	payments.On("ListByBooking", ctx, int64(5)).Return([]domain.Payment{
		{ID: 1, TransactionID: "txn-a"},
		{ID: 2, TransactionID: "txn-b"},
	}, nil)

	out, err := svc.ListForBooking(ctx, 5)

	assert.NoError(t, err)
	assert.Len(t, out, 2)
}
