package room

type Status string

const (
	StatusAvailable Status = "available"
	StatusOccupied  Status = "occupied"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied:
		return true
	default:
		return false
	}
}
