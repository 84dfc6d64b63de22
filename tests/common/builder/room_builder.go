//go:build unit

package builder

import (
	"time"

	domroom "hotel-desk/internal/domain/room"
	reqdto "hotel-desk/internal/handler/dto/request"
)

type RoomBuilder struct {
	Number    int
	RoomType  string
	CreatedAt time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		Number:    101,
		RoomType:  "Single",
		CreatedAt: time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildDomain() (*domroom.Room, error) {
	return domroom.NewRoom(b.Number, b.RoomType, b.CreatedAt)
}

func (b *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		Number:   b.Number,
		RoomType: b.RoomType,
	}
}
