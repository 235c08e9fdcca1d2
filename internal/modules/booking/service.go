package booking

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"hotelier/internal/domain"
	"hotelier/internal/modules/events"
	"hotelier/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

const dateLayout = "2006-01-02"

type Service struct {
	bookings  BookingRepository
	rooms     RoomRepository
	discounts DiscountRepository
	events    EventPublisher
}

func NewService(
	bookings BookingRepository,
	rooms RoomRepository,
	discounts DiscountRepository,
	events EventPublisher,
) *Service {
	return &Service{
		bookings:  bookings,
		rooms:     rooms,
		discounts: discounts,
		events:    events,
	}
}

// CreateBooking admits a new stay. Dates are calendar dates; the stay is the
// half-open interval [check_in, check_out). The availability check and the
// insert run as one storage transaction, so a concurrent admission for an
// overlapping range on the same room fails with ErrRoomUnavailable.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	checkIn, err := parseDate(req.CheckInDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	checkOut, err := parseDate(req.CheckOutDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidDateRange
	}

	var discountID *int64
	pct := 0.0
	if req.DiscountCode != "" {
		d, err := s.discounts.GetByCode(ctx, req.DiscountCode)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrInvalidDiscount
			}
			return nil, err
		}
		if !d.UsableAt(time.Now().UTC()) {
			return nil, ErrInvalidDiscount
		}
		pct = d.Percentage
		discountID = &d.ID
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	nights := float64(int(checkOut.Sub(checkIn) / (24 * time.Hour)))
	total := nights * room.Price * (1 - pct/100)
	total = math.Round(total*100) / 100

	b := &domain.Booking{
		UserID:        userID,
		HotelID:       req.HotelID,
		RoomID:        req.RoomID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		Status:        domain.BookingPending,
		TotalAmount:   total,
		PaymentStatus: domain.PaymentUnpaid,
		DiscountID:    discountID,
	}

	if err := s.bookings.Admit(ctx, b); err != nil {
		if errors.Is(err, repository.ErrRoomUnavailable) {
			return nil, ErrRoomUnavailable
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		if pgErr, ok := err.(*pgconn.PgError); ok && (pgErr.Code == "23P01" || pgErr.Code == "23505") {
			return nil, ErrRoomUnavailable
		}
		return nil, err
	}

	if s.events != nil {
		s.events.PublishBooking(events.EventBookingCreated, b)
	}

	return b, nil
}

// ConfirmBooking moves a pending booking to confirmed. Payment reconciliation
// normally triggers this; the endpoint exists for manual confirmation.
func (s *Service) ConfirmBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.transition(ctx, id,
		[]domain.BookingStatus{domain.BookingPending},
		domain.BookingConfirmed,
		events.EventBookingConfirmed,
	)
}

// CancelBooking is allowed from pending and confirmed only; cancelled and
// completed are terminal, so a second cancel fails with
// ErrInvalidStateTransition and leaves the row untouched.
func (s *Service) CancelBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.transition(ctx, id,
		[]domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed},
		domain.BookingCancelled,
		events.EventBookingCancelled,
	)
}

// CompleteBooking closes out a confirmed stay at/after checkout and routes
// the room to cleaning through the registry, which records the status change
// in the audit history.
func (s *Service) CompleteBooking(ctx context.Context, id, actorID int64) (*domain.Booking, error) {
	b, err := s.transition(ctx, id,
		[]domain.BookingStatus{domain.BookingConfirmed},
		domain.BookingCompleted,
		events.EventBookingCompleted,
	)
	if err != nil {
		return nil, err
	}

	if _, err := s.rooms.SetStatus(ctx, b.RoomID, domain.RoomCleaning, actorID); err != nil {
		log.Printf("booking: room %d not routed to cleaning after checkout: %v", b.RoomID, err)
	}

	return b, nil
}

func (s *Service) transition(ctx context.Context, id int64, from []domain.BookingStatus, to domain.BookingStatus, eventType string) (*domain.Booking, error) {
	if err := s.bookings.TransitionStatus(ctx, id, from, to); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repository.ErrInvalidTransition):
			return nil, ErrInvalidStateTransition
		}
		return nil, err
	}

	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.PublishBooking(eventType, b)
	}
	return b, nil
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) GetMyBookings(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) GetRoomBookings(ctx context.Context, roomID int64) ([]domain.Booking, error) {
	return s.bookings.ListByRoom(ctx, roomID)
}

// CheckAvailability answers whether the room is free for [checkIn, checkOut).
// It is a fast-path pre-filter; the admission transaction remains the source
// of truth under concurrency.
func (s *Service) CheckAvailability(ctx context.Context, roomID int64, checkInStr, checkOutStr string) (*AvailabilityResponse, error) {
	checkIn, err := parseDate(checkInStr)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	checkOut, err := parseDate(checkOutStr)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidDateRange
	}

	ok, err := s.bookings.CheckAvailability(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	return &AvailabilityResponse{
		RoomID:       roomID,
		CheckInDate:  checkInStr,
		CheckOutDate: checkOutStr,
		Available:    ok,
	}, nil
}

// BusyRanges lists the blocking stays on the room intersecting [from, to).
func (s *Service) BusyRanges(ctx context.Context, roomID int64, fromStr, toStr string) ([]repository.BusyRange, error) {
	from, err := parseDate(fromStr)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	to, err := parseDate(toStr)
	if err != nil {
		return nil, ErrInvalidDateRange
	}

	return s.bookings.BusyRanges(ctx, roomID, from, to)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
