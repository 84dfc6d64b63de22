package queries

import (
	"context"

	"hotel-desk/internal/infra"
	"hotel-desk/internal/pkg/errs"
	"hotel-desk/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type RoomQueries interface {
	GetByNumber(ctx context.Context, number int) (*RoomView, error)
	ListAvailable(ctx context.Context) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewRoomQueries(uow shared.UnitOfWork) RoomQueries {
	return &roomQueriesImpl{uow: uow}
}

func (q *roomQueriesImpl) GetByNumber(ctx context.Context, number int) (*RoomView, error) {
	var view RoomView

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		snap, err := r.RoomByNumber(ctx, number)
		if err != nil {
			return err
		}
		return copier.Copy(&view, snap)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, err
	}

	return &view, nil
}

func (q *roomQueriesImpl) ListAvailable(ctx context.Context) ([]*RoomView, error) {
	var views []*RoomView

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		snaps, err := r.AvailableRooms(ctx)
		if err != nil {
			return err
		}

		views = make([]*RoomView, len(snaps))
		for i, snap := range snaps {
			views[i] = &RoomView{}
			if err := copier.Copy(views[i], snap); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return views, nil
}
