package booking

const minutesPerDay = 24 * 60

// Grid is the ordered set of bookable slots in a day, independent of bookings.
// It covers [openHour, closeHour) in strides of strideMinutes; a trailing
// partial stride is dropped.
type Grid struct {
	openMinute    int
	closeMinute   int
	strideMinutes int
}

func NewGrid(openHour, closeHour, strideMinutes int) (Grid, error) {
	if strideMinutes <= 0 || openHour < 0 || closeHour*60 > minutesPerDay {
		return Grid{}, ErrInvalidGrid
	}
	return Grid{
		openMinute:    openHour * 60,
		closeMinute:   closeHour * 60,
		strideMinutes: strideMinutes,
	}, nil
}

func DefaultGrid() Grid {
	return Grid{openMinute: 9 * 60, closeMinute: 17 * 60, strideMinutes: 30}
}

func (g Grid) Size() int {
	if g.closeMinute <= g.openMinute {
		return 0
	}
	return (g.closeMinute - g.openMinute) / g.strideMinutes
}

// Slots returns the grid in ascending time order.
func (g Grid) Slots() []Slot {
	out := make([]Slot, 0, g.Size())
	for i := range g.Size() {
		out = append(out, slotAt(g.openMinute+i*g.strideMinutes))
	}
	return out
}

func (g Grid) Contains(s Slot) bool {
	offset := s.minutes - g.openMinute
	if offset < 0 || offset%g.strideMinutes != 0 {
		return false
	}
	return offset/g.strideMinutes < g.Size()
}

// Free removes taken slots from the grid, preserving order. Taken slots that
// are not on the grid are ignored.
func (g Grid) Free(taken map[Slot]struct{}) []Slot {
	out := make([]Slot, 0, g.Size())
	for _, s := range g.Slots() {
		if _, ok := taken[s]; ok {
			continue
		}
		out = append(out, s)
	}
	return out
}
