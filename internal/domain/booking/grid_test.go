//go:build unit

package booking_test

import (
	"testing"

	"appointment-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotStrings(slots []booking.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func mustSlot(t *testing.T, s string) booking.Slot {
	t.Helper()
	slot, err := booking.ParseSlot(s)
	require.NoError(t, err)
	return slot
}

func TestGrid(t *testing.T) {
	t.Run("default grid spans 09:00 to 16:30", func(t *testing.T) {
		g := booking.DefaultGrid()
		slots := slotStrings(g.Slots())

		require.Len(t, slots, 16)
		assert.Equal(t, "09:00", slots[0])
		assert.Equal(t, "09:30", slots[1])
		assert.Equal(t, "16:30", slots[15])
	})

	t.Run("size drops a trailing partial stride", func(t *testing.T) {
		g, err := booking.NewGrid(9, 10, 45)
		require.NoError(t, err)

		assert.Equal(t, 1, g.Size())
		assert.Equal(t, []string{"09:00"}, slotStrings(g.Slots()))
	})

	t.Run("empty when close is not after open", func(t *testing.T) {
		g, err := booking.NewGrid(17, 9, 30)
		require.NoError(t, err)

		assert.Equal(t, 0, g.Size())
		assert.Empty(t, g.Free(nil))
	})

	t.Run("invalid configurations", func(t *testing.T) {
		_, err := booking.NewGrid(9, 17, 0)
		require.ErrorIs(t, err, booking.ErrInvalidGrid)

		_, err = booking.NewGrid(-1, 17, 30)
		require.ErrorIs(t, err, booking.ErrInvalidGrid)

		_, err = booking.NewGrid(9, 25, 30)
		require.ErrorIs(t, err, booking.ErrInvalidGrid)
	})

	t.Run("contains only stride-aligned slots inside the window", func(t *testing.T) {
		g := booking.DefaultGrid()

		assert.True(t, g.Contains(mustSlot(t, "09:00")))
		assert.True(t, g.Contains(mustSlot(t, "16:30")))
		assert.False(t, g.Contains(mustSlot(t, "08:30")))
		assert.False(t, g.Contains(mustSlot(t, "09:15")))
		assert.False(t, g.Contains(mustSlot(t, "17:00")))
	})

	t.Run("free subtracts taken slots and keeps order", func(t *testing.T) {
		g := booking.DefaultGrid()
		taken := map[booking.Slot]struct{}{
			mustSlot(t, "09:00"): {},
			mustSlot(t, "12:30"): {},
			mustSlot(t, "18:00"): {}, // off grid, ignored
		}

		free := slotStrings(g.Free(taken))

		assert.Len(t, free, 14)
		assert.Equal(t, "09:30", free[0])
		assert.NotContains(t, free, "12:30")
		assert.IsIncreasing(t, free)
	})

	t.Run("free is empty when every slot is taken", func(t *testing.T) {
		g := booking.DefaultGrid()
		taken := make(map[booking.Slot]struct{})
		for _, s := range g.Slots() {
			taken[s] = struct{}{}
		}

		free := g.Free(taken)
		assert.NotNil(t, free)
		assert.Empty(t, free)
	})
}
