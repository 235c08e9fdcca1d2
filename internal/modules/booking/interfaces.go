package booking

import (
	"context"
	"time"

	"hotelier/internal/domain"
	"hotelier/internal/repository"
)

// BookingRepository defines the storage operations of the admission engine.
type BookingRepository interface {
	Admit(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	CheckAvailability(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error)
	BusyRanges(ctx context.Context, roomID int64, from, to time.Time) ([]repository.BusyRange, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error)
	ListByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error)
	TransitionStatus(ctx context.Context, id int64, from []domain.BookingStatus, to domain.BookingStatus) error
}

// RoomRepository is the registry view the engine needs: pricing on admission
// and status routing on completion.
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	SetStatus(ctx context.Context, roomID int64, status domain.RoomStatus, changedBy int64) (*domain.Room, error)
}

type DiscountRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Discount, error)
}

// EventPublisher receives state transitions for the read-only event stream.
type EventPublisher interface {
	PublishBooking(eventType string, b *domain.Booking)
}
