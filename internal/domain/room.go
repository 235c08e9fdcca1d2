package domain

import "time"

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
	RoomCleaning    RoomStatus = "cleaning"
)

// Valid reports whether s is one of the known room statuses.
func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance, RoomCleaning:
		return true
	}
	return false
}

type Room struct {
	ID         int64      `json:"id" gorm:"primaryKey"`
	HotelID    int64      `json:"hotel_id" gorm:"uniqueIndex:idx_hotel_room_number"`
	RoomNumber string     `json:"room_number" gorm:"uniqueIndex:idx_hotel_room_number" validate:"required"`
	RoomType   string     `json:"room_type"`
	Floor      int        `json:"floor"`
	Status     RoomStatus `json:"status"`
	Price      float64    `json:"price" validate:"gte=0"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
