package request

type CreateRoomRequest struct {
	Number   int    `json:"number" binding:"required,gt=0"`
	RoomType string `json:"room_type" binding:"required,max=64"`
}
