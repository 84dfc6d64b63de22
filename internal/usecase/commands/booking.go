package commands

import (
	"context"

	"hotel-desk/internal/domain/booking"
	"hotel-desk/internal/domain/customer"
	reqdto "hotel-desk/internal/handler/dto/request"
	"hotel-desk/internal/infra"
	"hotel-desk/internal/pkg/clock"
	"hotel-desk/internal/pkg/errs"
	"hotel-desk/internal/usecase/queries"
	"hotel-desk/internal/usecase/shared"
)

// BookingCommands carries the two workflows where cross-store invariants
// are established and retracted. Each runs as one unit of work: every check
// happens before the first write, and the writes cannot fail, so a rejected
// request mutates nothing.
type BookingCommands interface {
	Book(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
	Cancel(ctx context.Context, bookingID string) error
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clock clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (c *bookingCommandsImpl) Book(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error) {
	entity, err := booking.NewBooking(req.TrimmedID(), req.RoomNumber, req.CustomerName, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var view *queries.BookingView

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByNumber(ctx, entity.RoomNumber())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRoomNotFound
			}
			return err
		}
		if !rm.IsAvailable() {
			return errs.ErrRoomUnavailable
		}

		if _, err := tx.Bookings().FindByID(ctx, entity.ID()); err == nil {
			return errs.ErrDuplicateBooking
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		guest, err := tx.Customers().FindByName(ctx, entity.CustomerName())
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}

			// Walk-in guest: register with a placeholder contact. The new
			// record gets the booking id too, so the history starts complete.
			guest, err = customer.NewCustomer(entity.CustomerName(), customer.DefaultContact, c.clock.Now())
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			if err := tx.Customers().Insert(ctx, guest); err != nil {
				return err
			}
		}

		// All checks passed; the writes below cannot fail.
		if err := rm.Occupy(); err != nil {
			return err
		}
		if err := tx.Bookings().Insert(ctx, entity); err != nil {
			return err
		}
		guest.AddBooking(entity.ID())

		snap, err := tx.Reads().BookingByID(ctx, entity.ID())
		if err != nil {
			return err
		}
		view = bookingViewFromSnapshot(snap)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID string) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return err
		}

		rm, err := tx.Rooms().FindByNumber(ctx, entity.RoomNumber())
		if err != nil {
			// A live booking always references a registered room; rooms with
			// bookings cannot be deleted.
			return errs.Wrap(err, "booked room missing from registry")
		}

		if err := rm.Release(); err != nil {
			return err
		}
		return tx.Bookings().Delete(ctx, bookingID)
	})
}

func bookingViewFromSnapshot(snap *shared.BookingSnapshot) *queries.BookingView {
	return &queries.BookingView{
		ID:           snap.ID,
		RoomNumber:   snap.RoomNumber,
		CustomerName: snap.CustomerName,
		CreatedAt:    snap.CreatedAt,
	}
}
