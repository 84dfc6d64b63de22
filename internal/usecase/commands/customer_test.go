//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-desk/internal/infra/memstore"
	"hotel-desk/internal/infra/uow"
	"hotel-desk/internal/pkg/clock"
	"hotel-desk/internal/pkg/errs"
	"hotel-desk/internal/usecase/commands"
	"hotel-desk/internal/usecase/queries"
	"hotel-desk/internal/usecase/shared"
	"hotel-desk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CustomerCommandsTestSuite struct {
	suite.Suite
	ctx   context.Context
	clock *clock.MockClock

	uow       shared.UnitOfWork
	customers commands.CustomerCommands

	customerQueries queries.CustomerQueries
	bookingQueries  queries.BookingQueries
}

func (s *CustomerCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC))

	store := memstore.New()
	s.uow = uow.NewMemoryUoW(store)
	s.customers = commands.NewCustomerCommands(s.uow, s.clock)

	s.customerQueries = queries.NewCustomerQueries(s.uow)
	s.bookingQueries = queries.NewBookingQueries(s.uow)
}

func (s *CustomerCommandsTestSuite) TestAdd() {
	s.Run("registered customer starts with empty history", func() {
		s.SetupTest()

		view, err := s.customers.Add(s.ctx, builder.NewCustomerBuilder().BuildCreateRequestDTO())
		s.Require().NoError(err)
		s.NotEqual(uuid.Nil, view.ID)
		s.Equal("Alice", view.Name)
		s.Equal("alice@example.com", view.ContactInfo)
		s.Empty(view.BookingHistory)
	})

	s.Run("duplicate name is rejected", func() {
		s.SetupTest()

		_, err := s.customers.Add(s.ctx, builder.NewCustomerBuilder().BuildCreateRequestDTO())
		s.Require().NoError(err)

		_, err = s.customers.Add(s.ctx, builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) {
			b.ContactInfo = "other@example.com"
		}).BuildCreateRequestDTO())
		s.Require().ErrorIs(err, errs.ErrDuplicateCustomer)
	})

	s.Run("blank name fails validation", func() {
		s.SetupTest()

		_, err := s.customers.Add(s.ctx, builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) {
			b.Name = "   "
		}).BuildCreateRequestDTO())
		s.Require().ErrorIs(err, errs.ErrDomainValidation)
	})
}

func (s *CustomerCommandsTestSuite) TestRemove() {
	s.Run("removed customer is gone from the directory", func() {
		s.SetupTest()

		_, err := s.customers.Add(s.ctx, builder.NewCustomerBuilder().BuildCreateRequestDTO())
		s.Require().NoError(err)

		s.Require().NoError(s.customers.Remove(s.ctx, "Alice"))

		_, err = s.customerQueries.GetByName(s.ctx, "Alice")
		s.Require().ErrorIs(err, errs.ErrCustomerNotFound)
	})

	s.Run("removing the directory record leaves ledger bookings intact", func() {
		s.SetupTest()

		rooms := commands.NewRoomCommands(s.uow, s.clock)
		bookings := commands.NewBookingCommands(s.uow, s.clock)

		_, err := rooms.Add(s.ctx, builder.NewRoomBuilder().BuildCreateRequestDTO())
		s.Require().NoError(err)
		_, err = bookings.Book(s.ctx, builder.NewBookingBuilder().BuildCreateRequestDTO())
		s.Require().NoError(err)

		s.Require().NoError(s.customers.Remove(s.ctx, "Alice"))

		bk, err := s.bookingQueries.GetByID(s.ctx, "B1")
		s.Require().NoError(err)
		s.Equal("Alice", bk.CustomerName)
	})

	s.Run("unknown customer", func() {
		s.SetupTest()

		err := s.customers.Remove(s.ctx, "Nobody")
		s.Require().ErrorIs(err, errs.ErrCustomerNotFound)
	})
}

func TestCustomerCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerCommandsTestSuite))
}
