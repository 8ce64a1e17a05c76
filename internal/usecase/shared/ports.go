package shared

import (
	"context"
	"time"

	"appointment-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// BookingFilter narrows Find. Nil fields do not filter.
type BookingFilter struct {
	Email  *string
	Date   *string
	Status *booking.Status
}

// BookingStore owns the booking collection. Implementations hand out fresh
// copies only and must enforce, atomically with Insert, that at most one
// booked booking exists per (date, slot).
type BookingStore interface {
	// Insert fails with an infra.KindConflict error when the slot is taken.
	Insert(ctx context.Context, b *booking.Booking) error
	// FindByID fails with an infra.KindNotFound error for unknown ids.
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// Find returns matches ordered by (date, slot, created_at).
	Find(ctx context.Context, filter BookingFilter) ([]*booking.Booking, error)
	// UpdateStatus is a compare-and-set: it fails with infra.KindConflict when
	// the current status is not from, and infra.KindNotFound for unknown ids.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to booking.Status, at time.Time) (*booking.Booking, error)
}

type EventKind string

const (
	EventBookingAdmitted  EventKind = "booking.admitted"
	EventBookingCancelled EventKind = "booking.cancelled"
)

type BookingEvent struct {
	Kind       EventKind
	Booking    booking.Snapshot
	OccurredAt time.Time
}

// Notifier delivers booking events on a best-effort basis. Notify must not
// block and its outcome never affects the operation that raised the event.
type Notifier interface {
	Notify(event BookingEvent)
}

func StatusPtr(s booking.Status) *booking.Status { return &s }

func StringPtr(s string) *string { return &s }
