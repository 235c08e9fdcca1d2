package repository

import (
	"context"
	"errors"
	"time"

	"hotelier/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	if err := r.db.WithContext(ctx).Create(room).Error; err != nil {
		if isUniqueConstraintError(err) {
			return ErrDuplicateRoom
		}
		return err
	}
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) GetPriceByID(ctx context.Context, roomID int64) (float64, error) {
	var price float64
	tx := r.db.WithContext(ctx).
		Table("rooms").
		Select("price").
		Where("id = ?", roomID).
		Scan(&price)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return price, nil
}

func (r *RoomRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	var rooms []domain.Room
	err := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("room_number").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// SetStatus updates the room status and appends the matching history row in
// one transaction. Setting the current status again is a no-op and leaves the
// history untouched. The transition is forced regardless of active bookings;
// maintenance overrides are an operator decision.
func (r *RoomRepository) SetStatus(ctx context.Context, roomID int64, newStatus domain.RoomStatus, changedBy int64) (*domain.Room, error) {
	var room domain.Room
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if room.Status == newStatus {
			return nil
		}

		old := room.Status
		if err := tx.Model(&domain.Room{}).Where("id = ?", roomID).Update("status", newStatus).Error; err != nil {
			return err
		}

		hist := domain.RoomStatusHistory{
			RoomID:    roomID,
			OldStatus: old,
			NewStatus: newStatus,
			ChangedAt: time.Now().UTC(),
			ChangedBy: changedBy,
		}
		if err := tx.Create(&hist).Error; err != nil {
			return err
		}

		room.Status = newStatus
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &room, nil
}
