package response

import (
	"time"

	"hotel-desk/internal/usecase/queries"
)

type RateResponse struct {
	RoomType string  `json:"roomType"`
	PerDay   float64 `json:"perDay"`
}

type InvoiceResponse struct {
	BookingID string    `json:"bookingId"`
	RoomType  string    `json:"roomType"`
	Days      int       `json:"days"`
	Amount    float64   `json:"amount"`
	IssuedAt  time.Time `json:"issuedAt"`
}

func FromRateView(rm *queries.RateView) *RateResponse {
	return &RateResponse{
		RoomType: rm.RoomType,
		PerDay:   rm.PerDay,
	}
}

func FromRateViews(rms []*queries.RateView) []*RateResponse {
	result := make([]*RateResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromRateView(rm)
	}
	return result
}

func FromInvoiceView(rm *queries.InvoiceView) *InvoiceResponse {
	return &InvoiceResponse{
		BookingID: rm.BookingID,
		RoomType:  rm.RoomType,
		Days:      rm.Days,
		Amount:    rm.Amount,
		IssuedAt:  rm.IssuedAt,
	}
}
