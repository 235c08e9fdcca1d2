package room

import (
	"context"
	"errors"
	"math"

	"hotelier/internal/domain"
	"hotelier/internal/repository"
)

type Service struct {
	rooms   RoomRepository
	history HistoryRepository
}

func NewService(rooms RoomRepository, history HistoryRepository) *Service {
	return &Service{rooms: rooms, history: history}
}

// CreateRoom registers a room in the inventory. New rooms start available;
// (hotel_id, room_number) is unique per hotel.
func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	if req.Price <= 0 || req.RoomNumber == "" {
		return nil, ErrValidation
	}

	r := &domain.Room{
		HotelID:    req.HotelID,
		RoomNumber: req.RoomNumber,
		RoomType:   req.RoomType,
		Floor:      req.Floor,
		Status:     domain.RoomAvailable,
		Price:      math.Round(req.Price*100) / 100,
	}

	if err := s.rooms.Create(ctx, r); err != nil {
		if errors.Is(err, repository.ErrDuplicateRoom) {
			return nil, ErrDuplicateRoom
		}
		return nil, err
	}
	return r, nil
}

// SetStatus forces the room into the given status and records the change in
// the append-only history. Active bookings never block the transition;
// putting a booked room into maintenance is an operator call.
func (s *Service) SetStatus(ctx context.Context, roomID int64, status string, changedBy int64) (*domain.Room, error) {
	st := domain.RoomStatus(status)
	if !st.Valid() {
		return nil, ErrInvalidStatus
	}

	r, err := s.rooms.SetStatus(ctx, roomID, st, changedBy)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	r, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *Service) ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	return s.rooms.ListByHotel(ctx, hotelID)
}

func (s *Service) History(ctx context.Context, roomID int64) ([]domain.RoomStatusHistory, error) {
	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.history.ListByRoom(ctx, roomID)
}
