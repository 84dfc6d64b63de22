package shared

import (
	"context"

	"hotel-desk/internal/domain/billing"
	"hotel-desk/internal/domain/booking"
	"hotel-desk/internal/domain/customer"
	"hotel-desk/internal/domain/room"
)

// UnitOfWork gives every cross-store workflow a single critical section.
// The stores themselves hold no locks; atomicity of the book/cancel
// protocols depends on all reads and writes of one workflow happening
// inside one Within call.
type UnitOfWork interface {
	// Within: exclusive access for write workflows
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: shared access for multi-store consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, r Reads) error) error
}

// Tx exposes the five stateful stores. Entities returned by the stores are
// live for the duration of the transaction; mutating them inside Within is
// how status transitions and history appends are applied.
type Tx interface {
	Rooms() RoomStore
	Bookings() BookingStore
	Customers() CustomerStore
	Billing() BillingStore
	Waitlist() WaitlistStore
	Reads() Reads
}

type RoomStore interface {
	Insert(ctx context.Context, r *room.Room) error
	FindByNumber(ctx context.Context, number int) (*room.Room, error)
	Delete(ctx context.Context, number int) error
}

type BookingStore interface {
	Insert(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id string) (*booking.Booking, error)
	Delete(ctx context.Context, id string) error
}

type CustomerStore interface {
	Insert(ctx context.Context, c *customer.Customer) error
	FindByName(ctx context.Context, name string) (*customer.Customer, error)
	Delete(ctx context.Context, name string) error
}

type BillingStore interface {
	UpsertRate(ctx context.Context, rate billing.Rate) error
	RateByType(ctx context.Context, roomType string) (billing.Rate, error)
	SaveInvoice(ctx context.Context, inv *billing.Invoice) error
	InvoiceByBookingID(ctx context.Context, bookingID string) (*billing.Invoice, error)
}

type WaitlistStore interface {
	Enqueue(ctx context.Context, reservationID string) error
	Dequeue(ctx context.Context) (string, error)
}

// Reads is the snapshot-producing side used by the query layer; snapshots
// are plain copies, safe to hold after the lock is released.
type Reads interface {
	RoomByNumber(ctx context.Context, number int) (*RoomSnapshot, error)
	AvailableRooms(ctx context.Context) ([]*RoomSnapshot, error)
	BookingByID(ctx context.Context, id string) (*BookingSnapshot, error)
	CustomerByName(ctx context.Context, name string) (*CustomerSnapshot, error)
	InvoiceByBookingID(ctx context.Context, bookingID string) (*InvoiceSnapshot, error)
	AllRates(ctx context.Context) ([]*RateSnapshot, error)
}
