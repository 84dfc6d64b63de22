//go:build unit

package builder

import (
	"time"

	dombooking "hotel-desk/internal/domain/booking"
	reqdto "hotel-desk/internal/handler/dto/request"
)

type BookingBuilder struct {
	ID           string
	RoomNumber   int
	CustomerName string
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:           "B1",
		RoomNumber:   101,
		CustomerName: "Alice",
		CreatedAt:    time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(b.ID, b.RoomNumber, b.CustomerName, b.CreatedAt)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		BookingID:    b.ID,
		RoomNumber:   b.RoomNumber,
		CustomerName: b.CustomerName,
	}
}
