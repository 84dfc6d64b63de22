package customer

import (
	"strings"
	"time"

	"hotel-desk/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyCustomerName   = errs.New("customer name cannot be empty")
	ErrCustomerNameTooLong = errs.New("customer name is too long (max 255 characters)")
	ErrEmptyContact        = errs.New("contact info cannot be empty")
)

const (
	MaxCustomerNameLength = 255

	// DefaultContact is recorded when a customer is auto-created during a
	// booking and no contact information was collected.
	DefaultContact = "N/A"
)

// Customer is looked up by name; the name acts as the directory key. The id
// exists so two views of the same customer can be told apart from a renamed
// record.
type Customer struct {
	id             uuid.UUID
	name           string
	contactInfo    string
	bookingHistory []string
	createdAt      time.Time
}

func NewCustomer(name, contactInfo string, now time.Time) (*Customer, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	contactInfo = strings.TrimSpace(contactInfo)
	if contactInfo == "" {
		return nil, ErrEmptyContact
	}

	return &Customer{
		id:          uuid.New(),
		name:        strings.TrimSpace(name),
		contactInfo: contactInfo,
		createdAt:   now,
	}, nil
}

// AddBooking appends to the history; insertion order is the chronological
// order of bookings and is never rewritten, not even on cancellation.
func (c *Customer) AddBooking(bookingID string) {
	c.bookingHistory = append(c.bookingHistory, bookingID)
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCustomerName
	}
	if len(name) > MaxCustomerNameLength {
		return ErrCustomerNameTooLong
	}
	return nil
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) ContactInfo() string  { return c.contactInfo }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

// BookingHistory returns a copy so callers cannot mutate the record.
func (c *Customer) BookingHistory() []string {
	history := make([]string, len(c.bookingHistory))
	copy(history, c.bookingHistory)
	return history
}
