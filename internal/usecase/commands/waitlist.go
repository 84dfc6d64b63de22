package commands

import (
	"context"
	"strings"

	reqdto "hotel-desk/internal/handler/dto/request"
	"hotel-desk/internal/infra"
	"hotel-desk/internal/pkg/errs"
	"hotel-desk/internal/usecase/shared"
)

// WaitlistCommands manages the FIFO of reservation requests. A queued id is
// a placeholder token only; it is never checked against room state.
type WaitlistCommands interface {
	Enqueue(ctx context.Context, req reqdto.EnqueueReservationRequest) error
	Process(ctx context.Context) (string, error)
}

type waitlistCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewWaitlistCommands(uow shared.UnitOfWork) WaitlistCommands {
	return &waitlistCommandsImpl{uow: uow}
}

func (c *waitlistCommandsImpl) Enqueue(ctx context.Context, req reqdto.EnqueueReservationRequest) error {
	id := strings.TrimSpace(req.ReservationID)
	if id == "" {
		return errs.ErrDomainValidation
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Waitlist().Enqueue(ctx, id)
	})
}

func (c *waitlistCommandsImpl) Process(ctx context.Context) (string, error) {
	var id string

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		next, err := tx.Waitlist().Dequeue(ctx)
		if err != nil {
			if infra.IsKind(err, infra.KindEmpty) {
				return errs.ErrQueueEmpty
			}
			return err
		}
		id = next
		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}
