package booking

import (
	"cmp"
	"time"

	"appointment-booking/internal/pkg/clock"
	"appointment-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type Services struct {
	Clock clock.Clock
	Grid  Grid
}

type Booking struct {
	id        uuid.UUID
	contact   Contact
	date      Date
	slot      Slot
	label     Label
	notes     Notes
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a booked reservation for one grid slot. Whether the slot
// is still free is decided by the store at insert time, not here.
func NewBooking(
	services *Services,
	contact Contact,
	date Date,
	slot Slot,
	label Label,
	notes Notes,
) (*Booking, error) {
	if !services.Grid.Contains(slot) {
		return nil, ErrSlotOffGrid
	}

	now := services.Clock.Now()
	return &Booking{
		id:        uuid.New(),
		contact:   contact,
		date:      date,
		slot:      slot,
		label:     label,
		notes:     notes,
		status:    StatusBooked,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Snapshot is the plain-value form of a Booking used by stores and read models.
type Snapshot struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Date      string
	Slot      string
	Label     string
	Notes     string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b *Booking) Snapshot() Snapshot {
	return Snapshot{
		ID:        b.id,
		Name:      b.contact.name,
		Email:     b.contact.email,
		Date:      b.date.value,
		Slot:      b.slot.String(),
		Label:     b.label.value,
		Notes:     b.notes.value,
		Status:    b.status,
		CreatedAt: b.createdAt,
		UpdatedAt: b.updatedAt,
	}
}

// FromSnapshot rebuilds a Booking from stored values, re-validating them.
func FromSnapshot(s Snapshot) (*Booking, error) {
	contact, err := NewContact(s.Name, s.Email)
	if err != nil {
		return nil, err
	}
	date, err := NewDate(s.Date)
	if err != nil {
		return nil, err
	}
	slot, err := ParseSlot(s.Slot)
	if err != nil {
		return nil, err
	}
	label, err := NewLabel(s.Label, "")
	if err != nil {
		return nil, err
	}
	notes, err := NewNotes(s.Notes)
	if err != nil {
		return nil, err
	}
	if !s.Status.IsValid() {
		return nil, errs.Newf("unknown booking status %q", s.Status)
	}
	return &Booking{
		id:        s.ID,
		contact:   contact,
		date:      date,
		slot:      slot,
		label:     label,
		notes:     notes,
		status:    s.Status,
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
	}, nil
}

// Cancel moves the booking to its terminal state on behalf of email.
func (b *Booking) Cancel(email string, now time.Time) error {
	if !b.IsOwnedBy(email) {
		return ErrNotOwner
	}
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

func (b *Booking) IsOwnedBy(email string) bool {
	return b.contact.email == NormalizeEmail(email)
}

func (b *Booking) IsActive() bool {
	return b.status == StatusBooked
}

func (b *Booking) Key() SlotKey {
	return SlotKey{Date: b.date.String(), Slot: b.slot.String()}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) Contact() Contact     { return b.contact }
func (b *Booking) Date() Date           { return b.date }
func (b *Booking) Slot() Slot           { return b.slot }
func (b *Booking) Label() Label         { return b.label }
func (b *Booking) Notes() Notes         { return b.notes }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// Compare orders bookings by (date, slot) ascending, then by creation time so
// that a cancelled booking lists before the one that replaced it.
func Compare(a, b *Booking) int {
	if c := cmp.Compare(a.date.value, b.date.value); c != 0 {
		return c
	}
	if c := cmp.Compare(a.slot.minutes, b.slot.minutes); c != 0 {
		return c
	}
	if c := a.createdAt.Compare(b.createdAt); c != 0 {
		return c
	}
	return cmp.Compare(a.id.String(), b.id.String())
}
