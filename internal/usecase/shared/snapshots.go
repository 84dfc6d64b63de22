package shared

import (
	"time"

	"github.com/google/uuid"
)

// Read-side snapshots keep the query layer off the domain entities.
type RoomSnapshot struct {
	Number    int
	RoomType  string
	Status    string
	CreatedAt time.Time
}

type BookingSnapshot struct {
	ID           string
	RoomNumber   int
	CustomerName string
	CreatedAt    time.Time
}

type CustomerSnapshot struct {
	ID             uuid.UUID
	Name           string
	ContactInfo    string
	BookingHistory []string
	CreatedAt      time.Time
}

type InvoiceSnapshot struct {
	BookingID string
	RoomType  string
	Days      int
	Amount    float64
	IssuedAt  time.Time
}

type RateSnapshot struct {
	RoomType string
	PerDay   float64
}
