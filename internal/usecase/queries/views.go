package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RoomView struct {
	Number    int       `json:"number"`
	RoomType  string    `json:"room_type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type BookingView struct {
	ID           string    `json:"id"`
	RoomNumber   int       `json:"room_number"`
	CustomerName string    `json:"customer_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type CustomerView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ContactInfo    string    `json:"contact_info"`
	BookingHistory []string  `json:"booking_history"`
	CreatedAt      time.Time `json:"created_at"`
}

type InvoiceView struct {
	BookingID string    `json:"booking_id"`
	RoomType  string    `json:"room_type"`
	Days      int       `json:"days"`
	Amount    float64   `json:"amount"`
	IssuedAt  time.Time `json:"issued_at"`
}

type RateView struct {
	RoomType string  `json:"room_type"`
	PerDay   float64 `json:"per_day"`
}
