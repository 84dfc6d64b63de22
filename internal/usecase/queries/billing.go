package queries

import (
	"context"

	"hotel-desk/internal/infra"
	"hotel-desk/internal/pkg/errs"
	"hotel-desk/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type BillingQueries interface {
	// GetInvoice answers "generate invoice": the stored amount for a booking
	// id, or ErrInvoiceNotFound when no bill was ever calculated for it.
	GetInvoice(ctx context.Context, bookingID string) (*InvoiceView, error)
	ListRates(ctx context.Context) ([]*RateView, error)
}

type billingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBillingQueries(uow shared.UnitOfWork) BillingQueries {
	return &billingQueriesImpl{uow: uow}
}

func (q *billingQueriesImpl) GetInvoice(ctx context.Context, bookingID string) (*InvoiceView, error) {
	var view InvoiceView

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		snap, err := r.InvoiceByBookingID(ctx, bookingID)
		if err != nil {
			return err
		}
		return copier.Copy(&view, snap)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvoiceNotFound
		}
		return nil, err
	}

	return &view, nil
}

func (q *billingQueriesImpl) ListRates(ctx context.Context) ([]*RateView, error) {
	var views []*RateView

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		snaps, err := r.AllRates(ctx)
		if err != nil {
			return err
		}

		views = make([]*RateView, len(snaps))
		for i, snap := range snaps {
			views[i] = &RateView{}
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
