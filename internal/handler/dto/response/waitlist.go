package response

type ProcessedReservationResponse struct {
	ReservationID string `json:"reservationId"`
}
