package pgstore

import (
	"context"
	"errors"
	"time"

	"appointment-booking/internal/domain/booking"
	"appointment-booking/internal/infra"
	"appointment-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type BookingQueries interface {
	EnsureSchema(ctx context.Context, db DBTX) error
	InsertBooking(ctx context.Context, db DBTX, row BookingRow) error
	GetBooking(ctx context.Context, db DBTX, id uuid.UUID) (BookingRow, error)
	ListBookings(ctx context.Context, db DBTX, arg ListBookingsParams) ([]BookingRow, error)
	UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (BookingRow, error)
}

// BookingStore relies on the partial unique index bookings_active_slot_uniq to
// admit at most one booked row per (date, slot), so Insert needs no locking.
type BookingStore struct {
	queries BookingQueries
	db      DBTX
}

var _ shared.BookingStore = (*BookingStore)(nil)

func NewBookingStore(queries BookingQueries, db DBTX) *BookingStore {
	return &BookingStore{queries: queries, db: db}
}

func (s *BookingStore) EnsureSchema(ctx context.Context) error {
	if err := s.queries.EnsureSchema(ctx, s.db); err != nil {
		return infra.WrapRepoErr("failed to ensure bookings schema", err)
	}
	return nil
}

func (s *BookingStore) Insert(ctx context.Context, b *booking.Booking) error {
	err := s.queries.InsertBooking(ctx, s.db, toRow(b.Snapshot()))
	if err != nil {
		return classifyWriteErr("failed to insert booking", err)
	}
	return nil
}

func (s *BookingStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := s.queries.GetBooking(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking "+id.String()+" not found", nil, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	return fromRow(row)
}

func (s *BookingStore) Find(ctx context.Context, filter shared.BookingFilter) ([]*booking.Booking, error) {
	arg := ListBookingsParams{Email: filter.Email, Date: filter.Date}
	if filter.Status != nil {
		status := filter.Status.String()
		arg.Status = &status
	}

	rows, err := s.queries.ListBookings(ctx, s.db, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *BookingStore) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	from, to booking.Status,
	at time.Time,
) (*booking.Booking, error) {
	row, err := s.queries.UpdateBookingStatus(ctx, s.db, UpdateBookingStatusParams{
		ID:        id,
		From:      from.String(),
		To:        to.String(),
		UpdatedAt: at,
	})
	if err == nil {
		return fromRow(row)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, classifyWriteErr("failed to update booking status", err)
	}

	// Nothing matched: tell a missing row apart from a status mismatch.
	if _, getErr := s.queries.GetBooking(ctx, s.db, id); getErr != nil {
		if errors.Is(getErr, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking "+id.String()+" not found", nil, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", getErr)
	}
	return nil, infra.WrapRepoErr("booking "+id.String()+" is not "+from.String(), nil, infra.KindConflict)
}

func classifyWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
		if pgErr.ConstraintName == activeSlotConstraint {
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		}
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	}
	return infra.WrapRepoErr(msg, err)
}

func toRow(s booking.Snapshot) BookingRow {
	return BookingRow{
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

func fromRow(row BookingRow) (*booking.Booking, error) {
	b, err := booking.FromSnapshot(booking.Snapshot{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Date:      row.Date,
		Slot:      row.Slot,
		Label:     row.Label,
		Notes:     row.Notes,
		Status:    booking.Status(row.Status),
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row "+row.ID.String(), err)
	}
	return b, nil
}
