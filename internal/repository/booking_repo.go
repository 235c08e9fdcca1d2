package repository

import (
	"context"
	"errors"
	"time"

	"hotelier/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// blockingStatuses are the booking statuses that make a date range
// unavailable. Cancelled and completed bookings never block.
var blockingStatuses = []string{
	string(domain.BookingPending),
	string(domain.BookingConfirmed),
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            int64      `gorm:"column:id;primaryKey"`
	UserID        int64      `gorm:"column:user_id"`
	HotelID       int64      `gorm:"column:hotel_id"`
	RoomID        int64      `gorm:"column:room_id"`
	CheckInDate   time.Time  `gorm:"column:check_in_date"`
	CheckOutDate  time.Time  `gorm:"column:check_out_date"`
	Status        string     `gorm:"column:status"`
	TotalAmount   float64    `gorm:"column:total_amount"`
	PaymentStatus string     `gorm:"column:payment_status"`
	DiscountID    *int64     `gorm:"column:discount_id"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
	CancelledAt   *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:            m.ID,
		UserID:        m.UserID,
		HotelID:       m.HotelID,
		RoomID:        m.RoomID,
		CheckInDate:   m.CheckInDate,
		CheckOutDate:  m.CheckOutDate,
		Status:        domain.BookingStatus(m.Status),
		TotalAmount:   m.TotalAmount,
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		DiscountID:    m.DiscountID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		CancelledAt:   m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:            b.ID,
		UserID:        b.UserID,
		HotelID:       b.HotelID,
		RoomID:        b.RoomID,
		CheckInDate:   b.CheckInDate,
		CheckOutDate:  b.CheckOutDate,
		Status:        string(b.Status),
		TotalAmount:   b.TotalAmount,
		PaymentStatus: string(b.PaymentStatus),
		DiscountID:    b.DiscountID,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		CancelledAt:   b.CancelledAt,
	}
}

// Admit performs the atomic check-and-insert for a new booking. The room row
// is locked for the duration of the transaction so two admissions for the
// same room serialize; the overlap count then sees any booking committed by
// an earlier writer. On PostgreSQL the bookings_no_overlap exclusion
// constraint backstops this check.
func (r *BookingRepository) Admit(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room domain.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, b.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var cnt int64
		err := tx.Model(&bookingModel{}).
			Where("room_id = ? AND status IN ? AND check_in_date < ? AND ? < check_out_date",
				b.RoomID, blockingStatuses, m.CheckOutDate, m.CheckInDate).
			Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrRoomUnavailable
		}

		return tx.Create(&m).Error
	})
	if err != nil {
		if isExclusionViolation(err) {
			return ErrRoomUnavailable
		}
		return err
	}
	*b = *toDomainBooking(m)
	return nil
}

// CheckAvailability reports whether the half-open interval [checkIn, checkOut)
// is free of pending/confirmed bookings on the room. Intervals [a,b) and
// [c,d) overlap iff a < d and c < b, so back-to-back stays do not collide.
func (r *BookingRepository) CheckAvailability(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("room_id = ? AND status IN ? AND check_in_date < ? AND ? < check_out_date",
			roomID, blockingStatuses, checkOut, checkIn).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt == 0, nil
}

type BusyRange struct {
	CheckIn  time.Time `json:"check_in_date"`
	CheckOut time.Time `json:"check_out_date"`
	Status   string    `json:"status"`
}

// BusyRanges lists the pending/confirmed stays on the room intersecting
// [from, to), ordered by check-in date.
func (r *BookingRepository) BusyRanges(ctx context.Context, roomID int64, from, to time.Time) ([]BusyRange, error) {
	var out []BusyRange
	err := r.db.WithContext(ctx).Model(&bookingModel{}).
		Select("check_in_date AS check_in, check_out_date AS check_out, status").
		Where("room_id = ? AND status IN ? AND check_in_date < ? AND ? < check_out_date",
			roomID, blockingStatuses, to, from).
		Order("check_in_date").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("check_in_date DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("check_in_date").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// TransitionStatus moves a booking from one of the allowed source statuses to
// the target status in a single guarded UPDATE. When nothing is updated it
// distinguishes a missing booking from a disallowed transition.
func (r *BookingRepository) TransitionStatus(ctx context.Context, id int64, from []domain.BookingStatus, to domain.BookingStatus) error {
	src := make([]string, 0, len(from))
	for _, s := range from {
		src = append(src, string(s))
	}

	updates := map[string]interface{}{"status": string(to)}
	if to == domain.BookingCancelled {
		now := time.Now().UTC()
		updates["cancelled_at"] = now
	}

	res := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ? AND status IN ?", id, src).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var existing int64
	if err := r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", id).Count(&existing).Error; err != nil {
		return err
	}
	if existing == 0 {
		return ErrNotFound
	}
	return ErrInvalidTransition
}
