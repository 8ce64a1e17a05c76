package queries

import (
	"time"

	"appointment-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Date      string
	Slot      string
	Label     string
	Notes     string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewBookingView(b *booking.Booking) *BookingView {
	s := b.Snapshot()
	return &BookingView{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Date:      s.Date,
		Slot:      s.Slot,
		Label:     s.Label,
		Notes:     s.Notes,
		Status:    s.Status.String(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type ListFilter struct {
	// Email restricts the list to one identity; empty lists every booking.
	Email string
}
