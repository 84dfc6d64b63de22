//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-desk/internal/handler/api"
	reqdto "hotel-desk/internal/handler/dto/request"
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

type BillingHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *BillingHandlerTestSuite) SetupTest() {
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
	billingHandler := api.NewBillingHandler(
		commands.NewBillingCommands(unit, clk),
		queries.NewBillingQueries(unit),
	)

	s.router.POST("/rooms", roomHandler.Create)
	s.router.POST("/bookings", bookingHandler.Create)
	s.router.PUT("/billing/rates/:roomType", billingHandler.SetRate)
	s.router.GET("/billing/rates", billingHandler.ListRates)
	s.router.POST("/billing/bills", billingHandler.CalculateBill)
	s.router.GET("/billing/invoices/:bookingId", billingHandler.GetInvoice)
}

func (s *BillingHandlerTestSuite) setRate(roomType string, perDay float64) {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/billing/rates/"+roomType,
		reqdto.SetRateRequest{PerDay: &perDay})
	s.Require().Equal(http.StatusOK, w.Code)
}

func (s *BillingHandlerTestSuite) bookRoom(bookingID string, roomNumber int) {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms",
		builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.Number = roomNumber }).BuildCreateRequestDTO())
	s.Require().Equal(http.StatusCreated, w.Code)

	w = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings",
		builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = bookingID
			b.RoomNumber = roomNumber
		}).BuildCreateRequestDTO())
	s.Require().Equal(http.StatusCreated, w.Code)
}

func (s *BillingHandlerTestSuite) TestSetRate() {
	s.Run("set and list", func() {
		s.SetupTest()
		s.setRate("Single", 100.0)
		s.setRate("Double", 150.0)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/billing/rates", nil)
		var got []resdto.RateResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Require().Len(got, 2)
		s.Equal("Double", got[0].RoomType)
		s.Equal("Single", got[1].RoomType)
	})

	s.Run("negative rate is rejected at the boundary", func() {
		s.SetupTest()
		perDay := -10.0

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/billing/rates/Single",
			reqdto.SetRateRequest{PerDay: &perDay})
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("missing per-day price", func() {
		s.SetupTest()

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/billing/rates/Single",
			map[string]any{})
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BillingHandlerTestSuite) TestCalculateBill() {
	s.Run("invoice for three days", func() {
		s.SetupTest()
		s.setRate("Single", 100.0)
		s.bookRoom("B1", 101)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/billing/bills",
			reqdto.CreateBillRequest{BookingID: "B1", RoomType: "Single", Days: 3})

		var got resdto.InvoiceResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &got)
		s.Equal("B1", got.BookingID)
		s.Equal(300.0, got.Amount)

		// The stored invoice reads back the same.
		w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/billing/invoices/B1", nil)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal(300.0, got.Amount)
	})

	s.Run("unknown booking", func() {
		s.SetupTest()
		s.setRate("Single", 100.0)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/billing/bills",
			reqdto.CreateBillRequest{BookingID: "B9", RoomType: "Single", Days: 3})
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})

	s.Run("unknown room type", func() {
		s.SetupTest()
		s.bookRoom("B1", 101)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/billing/bills",
			reqdto.CreateBillRequest{BookingID: "B1", RoomType: "Penthouse", Days: 3})
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "No rate configured")
	})

	s.Run("zero days fails binding", func() {
		s.SetupTest()
		s.setRate("Single", 100.0)
		s.bookRoom("B1", 101)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/billing/bills",
			map[string]any{"booking_id": "B1", "room_type": "Single", "days": 0})
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("missing invoice", func() {
		s.SetupTest()

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/billing/invoices/B1", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Invoice not found")
	})
}

func TestBillingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BillingHandlerTestSuite))
}
