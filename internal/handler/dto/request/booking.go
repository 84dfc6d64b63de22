package request

import "strings"

type CreateBookingRequest struct {
	BookingID    string `json:"booking_id" binding:"required,max=64"`
	RoomNumber   int    `json:"room_number" binding:"required,gt=0"`
	CustomerName string `json:"customer_name" binding:"required,max=255"`
}

func (r CreateBookingRequest) TrimmedID() string {
	return strings.TrimSpace(r.BookingID)
}
