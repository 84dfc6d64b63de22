package memstore

import (
	"context"

	"hotel-desk/internal/domain/booking"
	"hotel-desk/internal/infra"
)

// BookingStore is the ledger: the sole owner of booking records. It performs
// no cross-checks against rooms or customers; the command layer is
// responsible for having verified room availability first.
type BookingStore struct {
	byID map[string]*booking.Booking
}

func (bs *BookingStore) Insert(_ context.Context, b *booking.Booking) error {
	if _, exists := bs.byID[b.ID()]; exists {
		return infra.WrapStoreErr("booking id already taken", nil, infra.KindConflict)
	}

	bs.byID[b.ID()] = b
	return nil
}

func (bs *BookingStore) FindByID(_ context.Context, id string) (*booking.Booking, error) {
	b, ok := bs.byID[id]
	if !ok {
		return nil, infra.WrapStoreErr("booking not found", nil, infra.KindNotFound)
	}
	return b, nil
}

func (bs *BookingStore) Delete(_ context.Context, id string) error {
	if _, ok := bs.byID[id]; !ok {
		return infra.WrapStoreErr("booking not found", nil, infra.KindNotFound)
	}

	delete(bs.byID, id)
	return nil
}
