package billing

import (
	"strings"
	"time"

	"hotel-desk/internal/pkg/errs"
)

var (
	ErrEmptyRoomType = errs.New("room type cannot be empty")
	ErrNegativeRate  = errs.New("rate cannot be negative")
	ErrInvalidDays   = errs.New("number of days must be at least 1")
)

// Rate is a per-day price for one room-type label.
type Rate struct {
	roomType string
	perDay   float64
}

func NewRate(roomType string, perDay float64) (Rate, error) {
	roomType = strings.TrimSpace(roomType)
	if roomType == "" {
		return Rate{}, ErrEmptyRoomType
	}
	if perDay < 0 {
		return Rate{}, ErrNegativeRate
	}
	return Rate{roomType: roomType, perDay: perDay}, nil
}

func (r Rate) RoomType() string { return r.roomType }
func (r Rate) PerDay() float64  { return r.perDay }

// Invoice is the stored result of one billing computation for a booking id.
// Recomputing for the same id replaces the prior invoice.
type Invoice struct {
	bookingID string
	roomType  string
	days      int
	amount    float64
	issuedAt  time.Time
}

func NewInvoice(bookingID string, rate Rate, days int, now time.Time) (*Invoice, error) {
	if days < 1 {
		return nil, ErrInvalidDays
	}

	return &Invoice{
		bookingID: bookingID,
		roomType:  rate.RoomType(),
		days:      days,
		amount:    rate.PerDay() * float64(days),
		issuedAt:  now,
	}, nil
}

func (i *Invoice) BookingID() string   { return i.bookingID }
func (i *Invoice) RoomType() string    { return i.roomType }
func (i *Invoice) Days() int           { return i.days }
func (i *Invoice) Amount() float64     { return i.amount }
func (i *Invoice) IssuedAt() time.Time { return i.issuedAt }
