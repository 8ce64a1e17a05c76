//go:build unit || e2e

package builder

import (
	"time"

	"appointment-booking/internal/domain/booking"
	reqdto "appointment-booking/internal/handler/dto/request"
	"appointment-booking/internal/pkg/clock"
	"appointment-booking/internal/usecase/commands"
	"appointment-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	Name  string
	Email string
	Date  string
	Slot  string
	Label string
	Notes string
	Now   time.Time
	Grid  booking.Grid
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Date:  "2030-01-15",
		Slot:  "10:00",
		Label: "Consultation",
		Notes: "",
		Now:   time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC),
		Grid:  booking.DefaultGrid(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.Email = email
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithSlot(slot string) *BookingBuilder {
	b.Slot = slot
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	contact, err := booking.NewContact(b.Name, b.Email)
	if err != nil {
		return nil, err
	}
	date, err := booking.NewDate(b.Date)
	if err != nil {
		return nil, err
	}
	slot, err := booking.ParseSlot(b.Slot)
	if err != nil {
		return nil, err
	}
	label, err := booking.NewLabel(b.Label, "Not specified")
	if err != nil {
		return nil, err
	}
	notes, err := booking.NewNotes(b.Notes)
	if err != nil {
		return nil, err
	}
	services := &booking.Services{Clock: clock.NewMockClock(b.Now), Grid: b.Grid}
	return booking.NewBooking(services, contact, date, slot, label, notes)
}

// MustBuildDomain is for fixtures whose values are known to be valid.
func (b *BookingBuilder) MustBuildDomain() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildAdmitInput() commands.AdmitBookingInput {
	label := b.Label
	notes := b.Notes
	return commands.AdmitBookingInput{
		Name:  b.Name,
		Email: b.Email,
		Date:  b.Date,
		Slot:  b.Slot,
		Label: &label,
		Notes: &notes,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	label := b.Label
	return reqdto.CreateBookingRequest{
		Name:  b.Name,
		Email: b.Email,
		Date:  b.Date,
		Slot:  b.Slot,
		Label: &label,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:        uuid.New(),
		Name:      b.Name,
		Email:     booking.NormalizeEmail(b.Email),
		Date:      b.Date,
		Slot:      b.Slot,
		Label:     b.Label,
		Notes:     b.Notes,
		Status:    booking.StatusBooked.String(),
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}
