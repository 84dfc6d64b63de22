//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-desk/internal/handler/api"
	resdto "hotel-desk/internal/handler/dto/response"
	"hotel-desk/internal/infra/memstore"
	"hotel-desk/internal/infra/uow"
	"hotel-desk/internal/pkg/clock"
	"hotel-desk/internal/usecase/commands"
	"hotel-desk/internal/usecase/queries"
	"hotel-desk/tests/common/builder"
	"hotel-desk/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	unit := uow.NewMemoryUoW(memstore.New())
	clk := clock.NewMockClock(time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC))

	roomHandler := api.NewRoomHandler(
		commands.NewRoomCommands(unit, clk),
		queries.NewRoomQueries(unit),
	)
	bookingHandler := api.NewBookingHandler(
		commands.NewBookingCommands(unit, clk),
		queries.NewBookingQueries(unit),
	)
	customerHandler := api.NewCustomerHandler(
		commands.NewCustomerCommands(unit, clk),
		queries.NewCustomerQueries(unit),
	)

	s.router.POST("/rooms", roomHandler.Create)
	s.router.GET("/rooms/:number", roomHandler.Get)
	s.router.POST("/bookings", bookingHandler.Create)
	s.router.GET("/bookings/:id", bookingHandler.Get)
	s.router.DELETE("/bookings/:id", bookingHandler.Delete)
	s.router.GET("/customers/:name", customerHandler.Get)
}

func (s *BookingHandlerTestSuite) addRoom(number int) {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms",
		builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.Number = number }).BuildCreateRequestDTO())
	s.Require().Equal(http.StatusCreated, w.Code)
}

func (s *BookingHandlerTestSuite) TestCreate() {
	s.Run("booking an available room", func() {
		s.SetupTest()
		s.addRoom(101)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings",
			builder.NewBookingBuilder().BuildCreateRequestDTO())

		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &got)
		s.Equal("B1", got.ID)
		s.Equal(101, got.RoomNumber)
		s.Equal("Alice", got.CustomerName)

		// Room flips to occupied.
		w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/101", nil)
		var rm resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &rm)
		s.Equal("occupied", rm.Status)
	})

	s.Run("walk-in customer is auto-registered with the booking in history", func() {
		s.SetupTest()
		s.addRoom(101)

		httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings",
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.CustomerName = "Carol" }).BuildCreateRequestDTO())

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/Carol", nil)
		var got resdto.CustomerResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal("N/A", got.ContactInfo)
		s.Equal([]string{"B1"}, got.BookingHistory)
	})

	s.Run("unknown room", func() {
		s.SetupTest()

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings",
			builder.NewBookingBuilder().BuildCreateRequestDTO())
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Room not found")
	})

	s.Run("occupied room", func() {
		s.SetupTest()
		s.addRoom(101)
		httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings",
			builder.NewBookingBuilder().BuildCreateRequestDTO())

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings",
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				b.ID = "B2"
				b.CustomerName = "Bob"
			}).BuildCreateRequestDTO())
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "not available")
	})

	s.Run("duplicate booking id", func() {
		s.SetupTest()
		s.addRoom(101)
		s.addRoom(102)
		httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings",
			builder.NewBookingBuilder().BuildCreateRequestDTO())

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings",
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.RoomNumber = 102 }).BuildCreateRequestDTO())
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already in use")
	})
}

func (s *BookingHandlerTestSuite) TestDelete() {
	s.Run("cancel releases the room", func() {
		s.SetupTest()
		s.addRoom(101)
		httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings",
			builder.NewBookingBuilder().BuildCreateRequestDTO())

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/B1", nil)
		s.Equal(http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/101", nil)
		var rm resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &rm)
		s.Equal("available", rm.Status)

		w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/B1", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})

	s.Run("unknown booking", func() {
		s.SetupTest()

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/B9", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})
}

func TestBookingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}
