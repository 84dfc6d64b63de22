package commands

import (
	"context"

	"hotel-desk/internal/domain/billing"
	reqdto "hotel-desk/internal/handler/dto/request"
	"hotel-desk/internal/infra"
	"hotel-desk/internal/pkg/clock"
	"hotel-desk/internal/pkg/errs"
	"hotel-desk/internal/usecase/queries"
	"hotel-desk/internal/usecase/shared"
)

type BillingCommands interface {
	SetRate(ctx context.Context, roomType string, req reqdto.SetRateRequest) (*queries.RateView, error)
	// CalculateBill computes rate x days, stores the invoice under the
	// booking id and returns it. Recalculating replaces the stored amount.
	CalculateBill(ctx context.Context, req reqdto.CreateBillRequest) (*queries.InvoiceView, error)
}

type billingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBillingCommands(uow shared.UnitOfWork, clock clock.Clock) BillingCommands {
	return &billingCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (c *billingCommandsImpl) SetRate(ctx context.Context, roomType string, req reqdto.SetRateRequest) (*queries.RateView, error) {
	perDay := 0.0
	if req.PerDay != nil {
		perDay = *req.PerDay
	}

	rate, err := billing.NewRate(roomType, perDay)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Billing().UpsertRate(ctx, rate)
	})
	if err != nil {
		return nil, err
	}

	return &queries.RateView{RoomType: rate.RoomType(), PerDay: rate.PerDay()}, nil
}

func (c *billingCommandsImpl) CalculateBill(ctx context.Context, req reqdto.CreateBillRequest) (*queries.InvoiceView, error) {
	var view *queries.InvoiceView

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The booking must exist before money is attached to its id.
		if _, err := tx.Bookings().FindByID(ctx, req.BookingID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return err
		}

		// An unknown room type is an error, not a silent zero rate.
		rate, err := tx.Billing().RateByType(ctx, req.RoomType)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRateNotFound
			}
			return err
		}

		inv, err := billing.NewInvoice(req.BookingID, rate, req.Days, c.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tx.Billing().SaveInvoice(ctx, inv); err != nil {
			return err
		}

		snap, err := tx.Reads().InvoiceByBookingID(ctx, inv.BookingID())
		if err != nil {
			return err
		}
		view = invoiceViewFromSnapshot(snap)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

func invoiceViewFromSnapshot(snap *shared.InvoiceSnapshot) *queries.InvoiceView {
	return &queries.InvoiceView{
		BookingID: snap.BookingID,
		RoomType:  snap.RoomType,
		Days:      snap.Days,
		Amount:    snap.Amount,
		IssuedAt:  snap.IssuedAt,
	}
}
