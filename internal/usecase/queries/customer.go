package queries

import (
	"context"

	"hotel-desk/internal/infra"
	"hotel-desk/internal/pkg/errs"
	"hotel-desk/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type CustomerQueries interface {
	GetByName(ctx context.Context, name string) (*CustomerView, error)
}

type customerQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewCustomerQueries(uow shared.UnitOfWork) CustomerQueries {
	return &customerQueriesImpl{uow: uow}
}

func (q *customerQueriesImpl) GetByName(ctx context.Context, name string) (*CustomerView, error) {
	var view CustomerView

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		snap, err := r.CustomerByName(ctx, name)
		if err != nil {
			return err
		}
		return copier.Copy(&view, snap)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCustomerNotFound
		}
		return nil, err
	}

	return &view, nil
}
