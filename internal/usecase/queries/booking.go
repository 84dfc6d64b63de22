package queries

import (
	"context"

	"hotel-desk/internal/infra"
	"hotel-desk/internal/pkg/errs"
	"hotel-desk/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id string) (*BookingView, error)
}

type bookingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBookingQueries(uow shared.UnitOfWork) BookingQueries {
	return &bookingQueriesImpl{uow: uow}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id string) (*BookingView, error) {
	var view BookingView

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		snap, err := r.BookingByID(ctx, id)
		if err != nil {
			return err
		}
		return copier.Copy(&view, snap)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}

	return &view, nil
}
