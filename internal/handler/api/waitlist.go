package api

import (
	"errors"
	"net/http"

	reqdto "hotel-desk/internal/handler/dto/request"
	resdto "hotel-desk/internal/handler/dto/response"
	"hotel-desk/internal/handler/httperr"
	"hotel-desk/internal/pkg/errs"
	"hotel-desk/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WaitlistHandler struct {
	waitlistCommands commands.WaitlistCommands
}

func NewWaitlistHandler(waitlistCommands commands.WaitlistCommands) *WaitlistHandler {
	return &WaitlistHandler{
		waitlistCommands: waitlistCommands,
	}
}

// @Summary Enqueue reservation
// @Description Append a pending reservation to the back of the waitlist
// @Tags waitlist
// @Accept json
// @Produce json
// @Param request body reqdto.EnqueueReservationRequest true "Reservation to enqueue"
// @Success 202
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /waitlist [post]
func (h *WaitlistHandler) Enqueue(c *gin.Context) {
	var req reqdto.EnqueueReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.waitlistCommands.Enqueue(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusAccepted)
}

// @Summary Process reservation
// @Description Remove and return the oldest pending reservation
// @Tags waitlist
// @Produce json
// @Success 200 {object} resdto.ProcessedReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /waitlist/process [post]
func (h *WaitlistHandler) Process(c *gin.Context) {
	reservationID, err := h.waitlistCommands.Process(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrQueueEmpty):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No reservations to process", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, &resdto.ProcessedReservationResponse{
		ReservationID: reservationID,
	})
}
