//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-desk/internal/handler/api"
	reqdto "hotel-desk/internal/handler/dto/request"
	resdto "hotel-desk/internal/handler/dto/response"
	"hotel-desk/internal/infra/memstore"
	"hotel-desk/internal/infra/uow"
	"hotel-desk/internal/usecase/commands"
	"hotel-desk/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type WaitlistHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *WaitlistHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	unit := uow.NewMemoryUoW(memstore.New())
	waitlistHandler := api.NewWaitlistHandler(commands.NewWaitlistCommands(unit))

	s.router.POST("/waitlist", waitlistHandler.Enqueue)
	s.router.POST("/waitlist/process", waitlistHandler.Process)
}

func (s *WaitlistHandlerTestSuite) TestEnqueueProcess() {
	s.Run("requests come back in arrival order", func() {
		s.SetupTest()

		for _, id := range []string{"R1", "R2", "R3"} {
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/waitlist",
				reqdto.EnqueueReservationRequest{ReservationID: id})
			s.Require().Equal(http.StatusAccepted, w.Code)
		}

		for _, want := range []string{"R1", "R2", "R3"} {
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/waitlist/process", nil)
			var got resdto.ProcessedReservationResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
			s.Equal(want, got.ReservationID)
		}
	})

	s.Run("processing an empty queue", func() {
		s.SetupTest()

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/waitlist/process", nil)
		httptest.AssertAbortedErrorResponse(s.T(), w, http.StatusNotFound, "No reservations to process")
	})

	s.Run("missing reservation id", func() {
		s.SetupTest()

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/waitlist", map[string]any{})
		httptest.AssertAbortedErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func TestWaitlistHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WaitlistHandlerTestSuite))
}
