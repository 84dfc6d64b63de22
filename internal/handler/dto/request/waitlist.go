package request

type EnqueueReservationRequest struct {
	ReservationID string `json:"reservation_id" binding:"required,max=64"`
}
