package room

type CreateRoomRequest struct {
	HotelID    int64   `json:"hotel_id" binding:"required"`
	RoomNumber string  `json:"room_number" binding:"required"`
	RoomType   string  `json:"room_type" binding:"required"`
	Floor      int     `json:"floor"`
	Price      float64 `json:"price" binding:"required,gt=0"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
