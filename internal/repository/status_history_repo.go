package repository

import (
	"context"

	"hotelier/internal/domain"

	"gorm.io/gorm"
)

// StatusHistoryRepository is the read side of the room status audit trail.
// Rows are appended by RoomRepository.SetStatus inside the status-change
// transaction; nothing else writes here.
type StatusHistoryRepository struct {
	db *gorm.DB
}

func NewStatusHistoryRepository(db *gorm.DB) *StatusHistoryRepository {
	return &StatusHistoryRepository{db: db}
}

func (r *StatusHistoryRepository) ListByRoom(ctx context.Context, roomID int64) ([]domain.RoomStatusHistory, error) {
	var out []domain.RoomStatusHistory
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("changed_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
