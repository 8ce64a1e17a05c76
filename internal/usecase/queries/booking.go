package queries

import (
	"context"

	"appointment-booking/internal/domain/booking"
	"appointment-booking/internal/infra"
	"appointment-booking/internal/pkg/errs"
	"appointment-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrBookingQueryFail = errs.Mark(errs.New("booking query failed"), errs.ErrDatabaseOperationFailed)
)

type BookingQueries interface {
	AvailableSlots(ctx context.Context, date string) ([]string, error)
	List(ctx context.Context, filter ListFilter) ([]*BookingView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	store shared.BookingStore
	grid  booking.Grid
}

func NewBookingQueries(store shared.BookingStore, grid booking.Grid) BookingQueries {
	return &bookingQueriesImpl{store: store, grid: grid}
}

// AvailableSlots subtracts the slots booked on date from the grid. The grid has
// no notion of "now"; hiding past slots is left to the caller.
func (q *bookingQueriesImpl) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	d, err := booking.NewDate(date)
	if err != nil {
		return nil, err
	}

	dateKey := d.String()
	booked, err := q.store.Find(ctx, shared.BookingFilter{
		Date:   &dateKey,
		Status: shared.StatusPtr(booking.StatusBooked),
	})
	if err != nil {
		return nil, errs.Mark(err, ErrBookingQueryFail)
	}

	taken := make(map[booking.Slot]struct{}, len(booked))
	for _, b := range booked {
		taken[b.Slot()] = struct{}{}
	}

	free := q.grid.Free(taken)
	out := make([]string, len(free))
	for i, s := range free {
		out[i] = s.String()
	}
	return out, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter ListFilter) ([]*BookingView, error) {
	var f shared.BookingFilter
	if filter.Email != "" {
		email := booking.NormalizeEmail(filter.Email)
		f.Email = &email
	}

	found, err := q.store.Find(ctx, f)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingQueryFail)
	}

	out := make([]*BookingView, len(found))
	for i, b := range found {
		out[i] = NewBookingView(b)
	}
	return out, nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrBookingQueryFail)
	}
	return NewBookingView(b), nil
}
