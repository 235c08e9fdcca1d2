package booking

type CreateBookingRequest struct {
	HotelID      int64  `json:"hotel_id" binding:"required"`
	RoomID       int64  `json:"room_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
	DiscountCode string `json:"discount_code"`
}

type AvailabilityResponse struct {
	RoomID       int64  `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Available    bool   `json:"available"`
}
