package uow

import (
	"context"

	"hotel-desk/internal/infra/memstore"
	"hotel-desk/internal/usecase/shared"
)

// MemoryUoW serializes workflows on the store's single lock. With one
// caller at a time this is a formality; under concurrent HTTP clients it is
// what keeps the book/cancel protocols atomic: commands validate before
// writing, and writes inside the critical section cannot fail, so a failed
// workflow leaves no partial state behind.
type MemoryUoW struct {
	store *memstore.Store
}

func NewMemoryUoW(store *memstore.Store) shared.UnitOfWork {
	return &MemoryUoW{store: store}
}

func (u *MemoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.Lock()
	defer u.store.Unlock()

	return fn(ctx, &memTx{store: u.store})
}

func (u *MemoryUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, r shared.Reads) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.RLock()
	defer u.store.RUnlock()

	return fn(ctx, u.store.Reads())
}

type memTx struct {
	store *memstore.Store
}

func (t *memTx) Rooms() shared.RoomStore         { return t.store.Rooms() }
func (t *memTx) Bookings() shared.BookingStore   { return t.store.Bookings() }
func (t *memTx) Customers() shared.CustomerStore { return t.store.Customers() }
func (t *memTx) Billing() shared.BillingStore    { return t.store.Billing() }
func (t *memTx) Waitlist() shared.WaitlistStore  { return t.store.Waitlist() }
func (t *memTx) Reads() shared.Reads             { return t.store.Reads() }
