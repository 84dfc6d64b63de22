package commands

import (
	"context"

	"hotel-desk/internal/domain/room"
	reqdto "hotel-desk/internal/handler/dto/request"
	"hotel-desk/internal/infra"
	"hotel-desk/internal/pkg/clock"
	"hotel-desk/internal/pkg/errs"
	"hotel-desk/internal/usecase/queries"
	"hotel-desk/internal/usecase/shared"
)

type RoomCommands interface {
	Add(ctx context.Context, req reqdto.CreateRoomRequest) (*queries.RoomView, error)
	Remove(ctx context.Context, number int) error
}

type roomCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRoomCommands(uow shared.UnitOfWork, clock clock.Clock) RoomCommands {
	return &roomCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (c *roomCommandsImpl) Add(ctx context.Context, req reqdto.CreateRoomRequest) (*queries.RoomView, error) {
	entity, err := room.NewRoom(req.Number, req.RoomType, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var view *queries.RoomView

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Rooms().Insert(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.ErrDuplicateRoom
			}
			return err
		}

		snap, err := tx.Reads().RoomByNumber(ctx, entity.Number())
		if err != nil {
			return err
		}
		view = roomViewFromSnapshot(snap)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// Remove rejects occupied rooms: deleting one would leave a live booking
// pointing at nothing.
func (c *roomCommandsImpl) Remove(ctx context.Context, number int) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Rooms().FindByNumber(ctx, number)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRoomNotFound
			}
			return err
		}

		if !entity.IsAvailable() {
			return errs.ErrRoomOccupied
		}

		return tx.Rooms().Delete(ctx, number)
	})
}

func roomViewFromSnapshot(snap *shared.RoomSnapshot) *queries.RoomView {
	return &queries.RoomView{
		Number:    snap.Number,
		RoomType:  snap.RoomType,
		Status:    snap.Status,
		CreatedAt: snap.CreatedAt,
	}
}
