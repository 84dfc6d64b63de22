package request

// SetRateRequest carries the per-day price; the room type comes from the
// URL. gte=0 rejects negative rates at the boundary, the domain enforces it
// again.
type SetRateRequest struct {
	PerDay *float64 `json:"per_day" binding:"required,gte=0"`
}

type CreateBillRequest struct {
	BookingID string `json:"booking_id" binding:"required,max=64"`
	RoomType  string `json:"room_type" binding:"required,max=64"`
	Days      int    `json:"days" binding:"required,gte=1"`
}
