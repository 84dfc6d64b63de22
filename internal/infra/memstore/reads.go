package memstore

import (
	"context"

	"hotel-desk/internal/domain/billing"
	"hotel-desk/internal/domain/booking"
	"hotel-desk/internal/domain/customer"
	"hotel-desk/internal/domain/room"
	"hotel-desk/internal/usecase/shared"
)

// Reads produces detached snapshots; callers may hold them after the store
// lock is released.
type Reads struct {
	store *Store
}

func (r *Reads) RoomByNumber(ctx context.Context, number int) (*shared.RoomSnapshot, error) {
	rm, err := r.store.rooms.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return toRoomSnapshot(rm), nil
}

func (r *Reads) AvailableRooms(_ context.Context) ([]*shared.RoomSnapshot, error) {
	rooms := r.store.rooms.listAvailable()

	result := make([]*shared.RoomSnapshot, len(rooms))
	for i, rm := range rooms {
		result[i] = toRoomSnapshot(rm)
	}
	return result, nil
}

func (r *Reads) BookingByID(ctx context.Context, id string) (*shared.BookingSnapshot, error) {
	b, err := r.store.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBookingSnapshot(b), nil
}

func (r *Reads) CustomerByName(ctx context.Context, name string) (*shared.CustomerSnapshot, error) {
	c, err := r.store.customers.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return toCustomerSnapshot(c), nil
}

func (r *Reads) InvoiceByBookingID(ctx context.Context, bookingID string) (*shared.InvoiceSnapshot, error) {
	inv, err := r.store.billing.InvoiceByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return toInvoiceSnapshot(inv), nil
}

func (r *Reads) AllRates(_ context.Context) ([]*shared.RateSnapshot, error) {
	rates := r.store.billing.allRates()

	result := make([]*shared.RateSnapshot, len(rates))
	for i, rate := range rates {
		result[i] = toRateSnapshot(rate)
	}
	return result, nil
}

func toRoomSnapshot(rm *room.Room) *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		Number:    rm.Number(),
		RoomType:  rm.Type(),
		Status:    rm.Status().String(),
		CreatedAt: rm.CreatedAt(),
	}
}

func toBookingSnapshot(b *booking.Booking) *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:           b.ID(),
		RoomNumber:   b.RoomNumber(),
		CustomerName: b.CustomerName(),
		CreatedAt:    b.CreatedAt(),
	}
}

func toCustomerSnapshot(c *customer.Customer) *shared.CustomerSnapshot {
	return &shared.CustomerSnapshot{
		ID:             c.ID(),
		Name:           c.Name(),
		ContactInfo:    c.ContactInfo(),
		BookingHistory: c.BookingHistory(),
		CreatedAt:      c.CreatedAt(),
	}
}

func toInvoiceSnapshot(inv *billing.Invoice) *shared.InvoiceSnapshot {
	return &shared.InvoiceSnapshot{
		BookingID: inv.BookingID(),
		RoomType:  inv.RoomType(),
		Days:      inv.Days(),
		Amount:    inv.Amount(),
		IssuedAt:  inv.IssuedAt(),
	}
}

func toRateSnapshot(rate billing.Rate) *shared.RateSnapshot {
	return &shared.RateSnapshot{
		RoomType: rate.RoomType(),
		PerDay:   rate.PerDay(),
	}
}
