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

type CustomerHandler struct {
	customerCommands commands.CustomerCommands
	customerQueries  queries.CustomerQueries
}

func NewCustomerHandler(customerCommands commands.CustomerCommands, customerQueries queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{
		customerCommands: customerCommands,
		customerQueries:  customerQueries,
	}
}

// @Summary Add customer
// @Description Register a customer ahead of any booking
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} resdto.CustomerResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req reqdto.CreateCustomerRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.customerCommands.Add(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicateCustomer):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Customer already registered",
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

	c.JSON(http.StatusCreated, resdto.FromCustomerView(view))
}

// @Summary Get customer
// @Description Get one customer with their booking history
// @Tags customers
// @Produce json
// @Param name path string true "Customer name"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 404 {object} map[string]string
// @Router /customers/{name} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	view, err := h.customerQueries.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}

// @Summary Remove customer
// @Description Delete a customer record
// @Tags customers
// @Produce json
// @Param name path string true "Customer name"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /customers/{name} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.customerCommands.Remove(c.Request.Context(), c.Param("name")); err != nil {
		switch {
		case errors.Is(err, errs.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
