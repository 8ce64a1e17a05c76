package pgstore

import (
	"context"
	_ "embed"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:embed schema.sql
var schemaSQL string

const activeSlotConstraint = "bookings_active_slot_uniq"

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type BookingRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Date      string    `db:"date"`
	Slot      string    `db:"slot"`
	Label     string    `db:"label"`
	Notes     string    `db:"notes"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type ListBookingsParams struct {
	Email  *string
	Date   *string
	Status *string
}

type UpdateBookingStatusParams struct {
	ID        uuid.UUID
	From      string
	To        string
	UpdatedAt time.Time
}

// Queries holds the hand-written SQL for the bookings table.
type Queries struct{}

func NewQueries() *Queries {
	return &Queries{}
}

const bookingColumns = `id, name, email, date, slot, label, notes, status, created_at, updated_at`

func (q *Queries) EnsureSchema(ctx context.Context, db DBTX) error {
	_, err := db.Exec(ctx, schemaSQL)
	return err
}

const insertBooking = `INSERT INTO bookings (` + bookingColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (q *Queries) InsertBooking(ctx context.Context, db DBTX, row BookingRow) error {
	_, err := db.Exec(ctx, insertBooking,
		row.ID, row.Name, row.Email, row.Date, row.Slot,
		row.Label, row.Notes, row.Status, row.CreatedAt, row.UpdatedAt,
	)
	return err
}

const getBooking = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

func (q *Queries) GetBooking(ctx context.Context, db DBTX, id uuid.UUID) (BookingRow, error) {
	rows, err := db.Query(ctx, getBooking, id)
	if err != nil {
		return BookingRow{}, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToStructByName[BookingRow])
}

const listBookings = `SELECT ` + bookingColumns + ` FROM bookings
WHERE ($1::text IS NULL OR email = $1)
  AND ($2::text IS NULL OR date = $2)
  AND ($3::text IS NULL OR status = $3)
ORDER BY date, slot, created_at, id`

func (q *Queries) ListBookings(ctx context.Context, db DBTX, arg ListBookingsParams) ([]BookingRow, error) {
	rows, err := db.Query(ctx, listBookings, arg.Email, arg.Date, arg.Status)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[BookingRow])
}

const updateBookingStatus = `UPDATE bookings
SET status = $3, updated_at = $4
WHERE id = $1 AND status = $2
RETURNING ` + bookingColumns

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (BookingRow, error) {
	rows, err := db.Query(ctx, updateBookingStatus, arg.ID, arg.From, arg.To, arg.UpdatedAt)
	if err != nil {
		return BookingRow{}, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToStructByName[BookingRow])
}
