package response

import (
	"time"

	"hotel-desk/internal/usecase/queries"
)

type RoomResponse struct {
	Number    int       `json:"number"`
	RoomType  string    `json:"roomType"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		Number:    rm.Number,
		RoomType:  rm.RoomType,
		Status:    rm.Status,
		CreatedAt: rm.CreatedAt,
	}
}

func FromRoomViews(rms []*queries.RoomView) []*RoomResponse {
	result := make([]*RoomResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromRoomView(rm)
	}
	return result
}
