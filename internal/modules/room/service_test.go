package room

import (
	"context"
	"testing"

	"hotelier/internal/domain"
	"hotelier/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	if args.Error(0) == nil {
		room.ID = 11
	}
	return args.Error(0)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) SetStatus(ctx context.Context, roomID int64, status domain.RoomStatus, changedBy int64) (*domain.Room, error) {
	args := m.Called(ctx, roomID, status, changedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) ListByRoom(ctx context.Context, roomID int64) ([]domain.RoomStatusHistory, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoomStatusHistory), args.Error(1)
}

func newTestService() (*Service, *MockRoomRepository, *MockHistoryRepository) {
	rooms := new(MockRoomRepository)
	history := new(MockHistoryRepository)
	return NewService(rooms, history), rooms, history
}

func TestCreateRoom_StartsAvailable(t *testing.T) {
	svc, rooms, _ := newTestService()
	ctx := context.Background()

	rooms.On("Create", ctx, mock.AnythingOfType("*domain.Room")).Return(nil)

	r, err := svc.CreateRoom(ctx, CreateRoomRequest{
		HotelID:    1,
		RoomNumber: "101",
		RoomType:   "double",
		Floor:      1,
		Price:      120.005,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(11), r.ID)
	assert.Equal(t, domain.RoomAvailable, r.Status)
	assert.Equal(t, 120.01, r.Price)
	rooms.AssertExpectations(t)
}

func TestCreateRoom_Validation(t *testing.T) {
	svc, rooms, _ := newTestService()

	_, err := svc.CreateRoom(context.Background(), CreateRoomRequest{HotelID: 1, RoomNumber: "", RoomType: "double", Price: 100})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateRoom(context.Background(), CreateRoomRequest{HotelID: 1, RoomNumber: "101", RoomType: "double", Price: 0})
	assert.ErrorIs(t, err, ErrValidation)

	rooms.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRoom_Duplicate(t *testing.T) {
	svc, rooms, _ := newTestService()
	ctx := context.Background()

	rooms.On("Create", ctx, mock.AnythingOfType("*domain.Room")).Return(repository.ErrDuplicateRoom)

	_, err := svc.CreateRoom(ctx, CreateRoomRequest{HotelID: 1, RoomNumber: "101", RoomType: "double", Price: 100})
	assert.ErrorIs(t, err, ErrDuplicateRoom)
}

func TestSetStatus_RejectsUnknownStatus(t *testing.T) {
	svc, rooms, _ := newTestService()

	for _, status := range []string{"broken", "", "AVAILABLE"} {
		_, err := svc.SetStatus(context.Background(), 1, status, 9)
		assert.ErrorIs(t, err, ErrInvalidStatus, "status %q", status)
	}
	rooms.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSetStatus_Success(t *testing.T) {
	svc, rooms, _ := newTestService()
	ctx := context.Background()

	rooms.On("SetStatus", ctx, int64(1), domain.RoomMaintenance, int64(9)).
		Return(&domain.Room{ID: 1, Status: domain.RoomMaintenance}, nil)

	r, err := svc.SetStatus(ctx, 1, "maintenance", 9)

	assert.NoError(t, err)
	assert.Equal(t, domain.RoomMaintenance, r.Status)
	rooms.AssertExpectations(t)
}

func TestSetStatus_NotFound(t *testing.T) {
	svc, rooms, _ := newTestService()
	ctx := context.Background()

	rooms.On("SetStatus", ctx, int64(404), domain.RoomCleaning, int64(9)).Return(nil, repository.ErrNotFound)

	_, err := svc.SetStatus(ctx, 404, "cleaning", 9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHistory_RequiresExistingRoom(t *testing.T) {
	svc, rooms, history := newTestService()
	ctx := context.Background()

	rooms.On("GetByID", ctx, int64(404)).Return(nil, repository.ErrNotFound)

	_, err := svc.History(ctx, 404)
	assert.ErrorIs(t, err, ErrNotFound)
	history.AssertNotCalled(t, "ListByRoom", mock.Anything, mock.Anything)
}

func TestHistory_Success(t *testing.T) {
	svc, rooms, history := newTestService()
	ctx := context.Background()

	rooms.On("GetByID", ctx, int64(1)).Return(&domain.Room{ID: 1}, nil)
	history.On("ListByRoom", ctx, int64(1)).Return([]domain.RoomStatusHistory{
		{RoomID: 1, OldStatus: domain.RoomAvailable, NewStatus: domain.RoomMaintenance},
	}, nil)

	items, err := svc.History(ctx, 1)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, domain.RoomMaintenance, items[0].NewStatus)
}
