package commands

import (
	"context"

	"hotel-desk/internal/domain/customer"
	reqdto "hotel-desk/internal/handler/dto/request"
	"hotel-desk/internal/infra"
	"hotel-desk/internal/pkg/clock"
	"hotel-desk/internal/pkg/errs"
	"hotel-desk/internal/usecase/queries"
	"hotel-desk/internal/usecase/shared"
)

type CustomerCommands interface {
	Add(ctx context.Context, req reqdto.CreateCustomerRequest) (*queries.CustomerView, error)
	Remove(ctx context.Context, name string) error
}

type customerCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCustomerCommands(uow shared.UnitOfWork, clock clock.Clock) CustomerCommands {
	return &customerCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (c *customerCommandsImpl) Add(ctx context.Context, req reqdto.CreateCustomerRequest) (*queries.CustomerView, error) {
	entity, err := customer.NewCustomer(req.Name, req.ContactInfo, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var view *queries.CustomerView

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Customers().Insert(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.ErrDuplicateCustomer
			}
			return err
		}

		snap, err := tx.Reads().CustomerByName(ctx, entity.Name())
		if err != nil {
			return err
		}
		view = customerViewFromSnapshot(snap)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// Remove deletes the directory record. Booking history disappears with it;
// the ledger keeps its own records, so live bookings stay intact.
func (c *customerCommandsImpl) Remove(ctx context.Context, name string) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Customers().Delete(ctx, name); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrCustomerNotFound
			}
			return err
		}
		return nil
	})
}

func customerViewFromSnapshot(snap *shared.CustomerSnapshot) *queries.CustomerView {
	return &queries.CustomerView{
		ID:             snap.ID,
		Name:           snap.Name,
		ContactInfo:    snap.ContactInfo,
		BookingHistory: snap.BookingHistory,
		CreatedAt:      snap.CreatedAt,
	}
}
