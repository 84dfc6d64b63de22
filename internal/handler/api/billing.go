package api

import (
	"errors"
	"net/http"

	reqdto "hotel-desk/internal/handler/dto/request"
	resdto "hotel-desk/internal/handler/dto/response"
	"hotel-desk/internal/pkg/errs"
	"hotel-desk/internal/usecase/commands"
	"hotel-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	billingCommands commands.BillingCommands
	billingQueries  queries.BillingQueries
}

func NewBillingHandler(billingCommands commands.BillingCommands, billingQueries queries.BillingQueries) *BillingHandler {
	return &BillingHandler{
		billingCommands: billingCommands,
		billingQueries:  billingQueries,
	}
}

// @Summary Set rate
// @Description Set the nightly rate for a room type, replacing any previous rate
// @Tags billing
// @Accept json
// @Produce json
// @Param roomType path string true "Room type"
// @Param request body reqdto.SetRateRequest true "Nightly rate"
// @Success 200 {object} resdto.RateResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /billing/rates/{roomType} [put]
func (h *BillingHandler) SetRate(c *gin.Context) {
	var req reqdto.SetRateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.billingCommands.SetRate(c.Request.Context(), c.Param("roomType"), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRateView(view))
}

// @Summary List rates
// @Description List all configured nightly rates
// @Tags billing
// @Produce json
// @Success 200 {array} resdto.RateResponse
// @Router /billing/rates [get]
func (h *BillingHandler) ListRates(c *gin.Context) {
	views, err := h.billingQueries.ListRates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRateViews(views))
}

// @Summary Calculate bill
// @Description Compute and store the invoice for a booking; recalculating replaces the stored invoice
// @Tags billing
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBillRequest true "Billing details"
// @Success 201 {object} resdto.InvoiceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /billing/bills [post]
func (h *BillingHandler) CalculateBill(c *gin.Context) {
	var req reqdto.CreateBillRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.billingCommands.CalculateBill(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrRateNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No rate configured for room type",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromInvoiceView(view))
}

// @Summary Get invoice
// @Description Get the stored invoice for a booking
// @Tags billing
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 404 {object} map[string]string
// @Router /billing/invoices/{bookingId} [get]
func (h *BillingHandler) GetInvoice(c *gin.Context) {
	view, err := h.billingQueries.GetInvoice(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invoice not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}
