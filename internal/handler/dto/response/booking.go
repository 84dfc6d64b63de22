package response

import (
	"time"

	"hotel-desk/internal/usecase/queries"
)

type BookingResponse struct {
	ID           string    `json:"id"`
	RoomNumber   int       `json:"roomNumber"`
	CustomerName string    `json:"customerName"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:           rm.ID,
		RoomNumber:   rm.RoomNumber,
		CustomerName: rm.CustomerName,
		CreatedAt:    rm.CreatedAt,
	}
}
