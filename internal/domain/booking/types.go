package booking

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusCancelled:
		return true
	default:
		return false
	}
}

// SlotKey identifies the resource a booking occupies. At most one booked
// booking may exist per key.
type SlotKey struct {
	Date string
	Slot string
}

func (k SlotKey) String() string {
	return k.Date + "T" + k.Slot
}
