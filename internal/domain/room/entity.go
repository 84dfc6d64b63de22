package room

import (
	"strings"
	"time"

	"hotel-desk/internal/pkg/errs"
)

var (
	ErrInvalidRoomNumber = errs.New("room number must be positive")
	ErrEmptyRoomType     = errs.New("room type cannot be empty")
	ErrRoomTypeTooLong   = errs.New("room type is too long (max 64 characters)")
	ErrAlreadyOccupied   = errs.New("room is already occupied")
	ErrAlreadyAvailable  = errs.New("room is already available")
)

const (
	MaxRoomTypeLength = 64
)

type Room struct {
	number    int
	roomType  string
	status    Status
	createdAt time.Time
}

// NewRoom builds an Available room. Occupancy changes only through
// Occupy/Release, driven by the booking workflows.
func NewRoom(number int, roomType string, now time.Time) (*Room, error) {
	if number <= 0 {
		return nil, ErrInvalidRoomNumber
	}
	if err := validateRoomType(roomType); err != nil {
		return nil, err
	}

	return &Room{
		number:    number,
		roomType:  strings.TrimSpace(roomType),
		status:    StatusAvailable,
		createdAt: now,
	}, nil
}

func ReconstructRoom(number int, roomType string, status Status, createdAt time.Time) *Room {
	return &Room{
		number:    number,
		roomType:  roomType,
		status:    status,
		createdAt: createdAt,
	}
}

func (r *Room) IsAvailable() bool {
	return r.status == StatusAvailable
}

func (r *Room) Occupy() error {
	if r.status == StatusOccupied {
		return ErrAlreadyOccupied
	}
	r.status = StatusOccupied
	return nil
}

func (r *Room) Release() error {
	if r.status == StatusAvailable {
		return ErrAlreadyAvailable
	}
	r.status = StatusAvailable
	return nil
}

func validateRoomType(roomType string) error {
	roomType = strings.TrimSpace(roomType)
	if roomType == "" {
		return ErrEmptyRoomType
	}
	if len(roomType) > MaxRoomTypeLength {
		return ErrRoomTypeTooLong
	}
	return nil
}

func (r *Room) Number() int          { return r.number }
func (r *Room) Type() string         { return r.roomType }
func (r *Room) Status() Status       { return r.status }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
