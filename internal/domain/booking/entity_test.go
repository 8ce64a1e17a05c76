//go:build unit

package booking_test

import (
	"testing"
	"time"

	"appointment-booking/internal/domain/booking"
	"appointment-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusBooked, actual.Status())
		assert.True(t, actual.IsActive())
		assert.Equal(t, b.Now, actual.CreatedAt())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Equal(t, "2030-01-15T10:00", actual.Key().String())
		assert.Equal(t, "Consultation", actual.Label().String())
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "slot on the grid",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("16:30") },
			},
			{
				name:   "slot off the stride",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("10:15") },
				errIs:  booking.ErrSlotOffGrid,
			},
			{
				name:   "slot after closing",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("17:00") },
				errIs:  booking.ErrSlotOffGrid,
			},
			{
				name:   "malformed slot",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("ten") },
				errIs:  booking.ErrInvalidSlot,
			},
			{
				name:   "malformed date",
				mutate: func(b *builder.BookingBuilder) { b.WithDate("2030-13-01") },
				errIs:  booking.ErrInvalidDate,
			},
			{
				name:   "missing email",
				mutate: func(b *builder.BookingBuilder) { b.WithEmail("") },
				errIs:  booking.ErrEmailRequired,
			},
			{
				name:   "blank label falls back",
				mutate: func(b *builder.BookingBuilder) { b.Label = "" },
			},
		})
	})

	t.Run("cancel", func(t *testing.T) {
		actual := builder.NewBookingBuilder().MustBuildDomain()
		later := actual.CreatedAt().Add(time.Hour)

		err := actual.Cancel("someone@example.com", later)
		require.ErrorIs(t, err, booking.ErrNotOwner)
		assert.Equal(t, booking.StatusBooked, actual.Status())

		err = actual.Cancel("ADA@example.com", later)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, actual.Status())
		assert.Equal(t, later, actual.UpdatedAt())
		assert.False(t, actual.IsActive())

		err = actual.Cancel("ada@example.com", later.Add(time.Hour))
		require.ErrorIs(t, err, booking.ErrAlreadyCancelled)
		assert.Equal(t, later, actual.UpdatedAt())
	})

	t.Run("ownership is checked before status", func(t *testing.T) {
		actual := builder.NewBookingBuilder().MustBuildDomain()
		require.NoError(t, actual.Cancel("ada@example.com", time.Now()))

		err := actual.Cancel("mallory@example.com", time.Now())
		require.ErrorIs(t, err, booking.ErrNotOwner)
	})

	t.Run("snapshot round trip", func(t *testing.T) {
		original := builder.NewBookingBuilder().MustBuildDomain()

		restored, err := booking.FromSnapshot(original.Snapshot())
		require.NoError(t, err)
		assert.Equal(t, original.Snapshot(), restored.Snapshot())
	})

	t.Run("snapshot with unknown status is rejected", func(t *testing.T) {
		snap := builder.NewBookingBuilder().MustBuildDomain().Snapshot()
		snap.Status = "pending"

		_, err := booking.FromSnapshot(snap)
		require.Error(t, err)
	})

	t.Run("compare orders by date then slot", func(t *testing.T) {
		a := builder.NewBookingBuilder().WithDate("2030-01-15").WithSlot("11:00").MustBuildDomain()
		b := builder.NewBookingBuilder().WithDate("2030-01-15").WithSlot("09:30").MustBuildDomain()
		c := builder.NewBookingBuilder().WithDate("2030-01-14").WithSlot("16:00").MustBuildDomain()

		assert.Positive(t, booking.Compare(a, b))
		assert.Negative(t, booking.Compare(c, b))
		assert.Zero(t, booking.Compare(a, a))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
