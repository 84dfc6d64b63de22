package booking

import (
	"strings"
	"time"

	"hotel-desk/internal/pkg/errs"
)

var (
	ErrEmptyBookingID    = errs.New("booking id cannot be empty")
	ErrBookingIDTooLong  = errs.New("booking id is too long (max 64 characters)")
	ErrInvalidRoomNumber = errs.New("room number must be positive")
	ErrEmptyCustomerName = errs.New("customer name cannot be empty")
)

const (
	MaxBookingIDLength = 64
)

// Booking is the sole owner of the id -> (room, customer) association.
// Room and Customer keep back-references by value only.
type Booking struct {
	id           string
	roomNumber   int
	customerName string
	createdAt    time.Time
}

func NewBooking(id string, roomNumber int, customerName string, now time.Time) (*Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyBookingID
	}
	if len(id) > MaxBookingIDLength {
		return nil, ErrBookingIDTooLong
	}
	if roomNumber <= 0 {
		return nil, ErrInvalidRoomNumber
	}
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, ErrEmptyCustomerName
	}

	return &Booking{
		id:           id,
		roomNumber:   roomNumber,
		customerName: customerName,
		createdAt:    now,
	}, nil
}

func (b *Booking) ID() string           { return b.id }
func (b *Booking) RoomNumber() int      { return b.roomNumber }
func (b *Booking) CustomerName() string { return b.customerName }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
