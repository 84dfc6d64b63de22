package response

import (
	"time"

	"hotel-desk/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ContactInfo    string    `json:"contactInfo"`
	BookingHistory []string  `json:"bookingHistory"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromCustomerView(rm *queries.CustomerView) *CustomerResponse {
	history := rm.BookingHistory
	if history == nil {
		history = []string{}
	}

	return &CustomerResponse{
		ID:             rm.ID,
		Name:           rm.Name,
		ContactInfo:    rm.ContactInfo,
		BookingHistory: history,
		CreatedAt:      rm.CreatedAt,
	}
}
