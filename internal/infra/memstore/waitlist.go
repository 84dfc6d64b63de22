package memstore

import (
	"context"

	"hotel-desk/internal/infra"
)

// Waitlist is a strict FIFO of reservation request ids, independent of the
// other stores: requests are never cross-checked against room state.
type Waitlist struct {
	queue []string
}

func (w *Waitlist) Enqueue(_ context.Context, reservationID string) error {
	w.queue = append(w.queue, reservationID)
	return nil
}

func (w *Waitlist) Dequeue(_ context.Context) (string, error) {
	if len(w.queue) == 0 {
		return "", infra.WrapStoreErr("waitlist is empty", nil, infra.KindEmpty)
	}

	id := w.queue[0]
	w.queue[0] = "" // release the slot; the backing array outlives the entry
	w.queue = w.queue[1:]
	return id, nil
}

func (w *Waitlist) Len() int {
	return len(w.queue)
}
