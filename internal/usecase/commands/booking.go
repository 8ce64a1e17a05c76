package commands

import (
	"context"
	"errors"
	"log/slog"

	"appointment-booking/internal/domain/booking"
	"appointment-booking/internal/infra"
	"appointment-booking/internal/infra/metrics"
	"appointment-booking/internal/pkg/clock"
	"appointment-booking/internal/pkg/errs"
	"appointment-booking/internal/usecase/queries"
	"appointment-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSlotConflict    = errs.Mark(errs.New("slot already booked"), errs.ErrConflict)
	ErrBookingNotFound = errs.Mark(errs.New("booking to cancel not found"), errs.ErrNotFound)

	// Store failures carry one of these plus errs.ErrDatabaseOperationFailed.
	ErrBookingLookupFailed = errs.New("booking lookup failed")
	ErrBookingWriteFailed  = errs.New("booking write failed")
)

func storeFailure(err, op error) error {
	return errs.Mark(errs.Mark(err, op), errs.ErrDatabaseOperationFailed)
}

type AdmitBookingInput struct {
	Name  string
	Email string
	Date  string
	Slot  string
	// Label falls back to the configured default when nil or blank.
	Label *string
	Notes *string
}

type BookingCommands interface {
	Admit(ctx context.Context, in AdmitBookingInput) (*queries.BookingView, error)
	Cancel(ctx context.Context, id uuid.UUID, email string) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	store        shared.BookingStore
	notifier     shared.Notifier
	services     *booking.Services
	defaultLabel string
}

func NewBookingCommands(
	store shared.BookingStore,
	notifier shared.Notifier,
	clk clock.Clock,
	grid booking.Grid,
	defaultLabel string,
) BookingCommands {
	return &bookingCommandsImpl{
		store:        store,
		notifier:     notifier,
		services:     &booking.Services{Clock: clk, Grid: grid},
		defaultLabel: defaultLabel,
	}
}

func (c *bookingCommandsImpl) Admit(ctx context.Context, in AdmitBookingInput) (*queries.BookingView, error) {
	b, err := c.buildBooking(in)
	if err != nil {
		metrics.RecordAdmission(metrics.ResultRejected)
		return nil, err
	}

	if err := c.store.Insert(ctx, b); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			metrics.RecordAdmission(metrics.ResultConflict)
			return nil, ErrSlotConflict
		}
		metrics.RecordAdmission(metrics.ResultError)
		return nil, storeFailure(err, ErrBookingWriteFailed)
	}

	metrics.RecordAdmission(metrics.ResultOK)
	slog.Info("booking admitted",
		"booking_id", b.ID(),
		"date", b.Date().String(),
		"slot", b.Slot().String())

	c.notify(shared.EventBookingAdmitted, b)
	return queries.NewBookingView(b), nil
}

func (c *bookingCommandsImpl) buildBooking(in AdmitBookingInput) (*booking.Booking, error) {
	contact, err := booking.NewContact(in.Name, in.Email)
	if err != nil {
		return nil, err
	}
	date, err := booking.NewDate(in.Date)
	if err != nil {
		return nil, err
	}
	slot, err := booking.ParseSlot(in.Slot)
	if err != nil {
		return nil, err
	}
	label, err := booking.NewLabel(deref(in.Label), c.defaultLabel)
	if err != nil {
		return nil, err
	}
	notes, err := booking.NewNotes(deref(in.Notes))
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(c.services, contact, date, slot, label, notes)
}

// Cancel reports Forbidden before AlreadyCancelled for someone else's booking.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, email string) (*queries.BookingView, error) {
	if booking.NormalizeEmail(email) == "" {
		metrics.RecordCancellation(metrics.ResultRejected)
		return nil, booking.ErrEmailRequired
	}

	b, err := c.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			metrics.RecordCancellation(metrics.ResultNotFound)
			return nil, ErrBookingNotFound
		}
		metrics.RecordCancellation(metrics.ResultError)
		return nil, storeFailure(err, ErrBookingLookupFailed)
	}

	now := c.services.Clock.Now()
	if err := b.Cancel(email, now); err != nil {
		if errors.Is(err, booking.ErrNotOwner) {
			metrics.RecordCancellation(metrics.ResultForbidden)
		} else {
			metrics.RecordCancellation(metrics.ResultConflict)
		}
		return nil, err
	}

	updated, err := c.store.UpdateStatus(ctx, id, booking.StatusBooked, booking.StatusCancelled, now)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			// lost a race with another cancel of the same booking
			metrics.RecordCancellation(metrics.ResultConflict)
			return nil, booking.ErrAlreadyCancelled
		case infra.IsKind(err, infra.KindNotFound):
			metrics.RecordCancellation(metrics.ResultNotFound)
			return nil, ErrBookingNotFound
		}
		metrics.RecordCancellation(metrics.ResultError)
		return nil, storeFailure(err, ErrBookingWriteFailed)
	}

	metrics.RecordCancellation(metrics.ResultOK)
	slog.Info("booking cancelled", "booking_id", id)

	c.notify(shared.EventBookingCancelled, updated)
	return queries.NewBookingView(updated), nil
}

func (c *bookingCommandsImpl) notify(kind shared.EventKind, b *booking.Booking) {
	if c.notifier == nil {
		return
	}
	c.notifier.Notify(shared.BookingEvent{
		Kind:       kind,
		Booking:    b.Snapshot(),
		OccurredAt: c.services.Clock.Now(),
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
