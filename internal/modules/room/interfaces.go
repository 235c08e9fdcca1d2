package room

import (
	"context"

	"hotelier/internal/domain"
)

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error)
	SetStatus(ctx context.Context, roomID int64, status domain.RoomStatus, changedBy int64) (*domain.Room, error)
}

type HistoryRepository interface {
	ListByRoom(ctx context.Context, roomID int64) ([]domain.RoomStatusHistory, error)
}
