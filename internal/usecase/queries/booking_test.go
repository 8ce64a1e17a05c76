//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"appointment-booking/internal/domain/booking"
	"appointment-booking/internal/infra/memstore"
	"appointment-booking/internal/pkg/errs"
	"appointment-booking/internal/usecase/queries"
	"appointment-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingQueriesTestSuite struct {
	suite.Suite
	ctx     context.Context
	store   *memstore.BookingStore
	queries queries.BookingQueries
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.NewBookingStore()
	s.queries = queries.NewBookingQueries(s.store, booking.DefaultGrid())
}

func TestBookingQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) seed(b *builder.BookingBuilder) *booking.Booking {
	bk := b.MustBuildDomain()
	s.Require().NoError(s.store.Insert(s.ctx, bk))
	return bk
}

func (s *BookingQueriesTestSuite) TestAvailableSlots() {
	s.Run("empty day returns the whole grid", func() {
		s.SetupTest()
		slots, err := s.queries.AvailableSlots(s.ctx, "2030-01-15")

		s.Require().NoError(err)
		s.Len(slots, 16)
		s.Equal("09:00", slots[0])
		s.Equal("16:30", slots[15])
	})

	s.Run("booked slots are removed, cancelled ones are not", func() {
		s.SetupTest()
		s.seed(builder.NewBookingBuilder().WithSlot("09:00"))
		cancelled := s.seed(builder.NewBookingBuilder().WithSlot("09:30"))
		s.seed(builder.NewBookingBuilder().WithDate("2030-01-16").WithSlot("10:00"))
		_, err := s.store.UpdateStatus(s.ctx, cancelled.ID(), booking.StatusBooked, booking.StatusCancelled, time.Now())
		s.Require().NoError(err)

		slots, err := s.queries.AvailableSlots(s.ctx, "2030-01-15")

		s.Require().NoError(err)
		s.Len(slots, 15)
		s.Equal("09:30", slots[0])
		s.Contains(slots, "10:00")
	})

	s.Run("fully booked day is empty, not an error", func() {
		s.SetupTest()
		for _, slot := range booking.DefaultGrid().Slots() {
			s.seed(builder.NewBookingBuilder().WithSlot(slot.String()))
		}

		slots, err := s.queries.AvailableSlots(s.ctx, "2030-01-15")

		s.Require().NoError(err)
		s.NotNil(slots)
		s.Empty(slots)
	})

	s.Run("invalid date", func() {
		s.SetupTest()
		_, err := s.queries.AvailableSlots(s.ctx, "15-01-2030")
		s.Require().ErrorIs(err, booking.ErrInvalidDate)

		_, err = s.queries.AvailableSlots(s.ctx, "")
		s.Require().ErrorIs(err, booking.ErrDateRequired)
	})

	s.Run("reads do not change state", func() {
		s.SetupTest()
		s.seed(builder.NewBookingBuilder())

		first, err := s.queries.AvailableSlots(s.ctx, "2030-01-15")
		s.Require().NoError(err)
		second, err := s.queries.AvailableSlots(s.ctx, "2030-01-15")
		s.Require().NoError(err)

		s.Equal(first, second)
	})
}

func (s *BookingQueriesTestSuite) TestList() {
	s.Run("filters by normalised email and sorts", func() {
		s.SetupTest()
		later := s.seed(builder.NewBookingBuilder().WithSlot("14:00"))
		earlier := s.seed(builder.NewBookingBuilder().WithDate("2030-01-14").WithSlot("16:00"))
		s.seed(builder.NewBookingBuilder().WithEmail("bob@example.com").WithSlot("11:00"))

		views, err := s.queries.List(s.ctx, queries.ListFilter{Email: " ADA@example.com"})

		s.Require().NoError(err)
		s.Require().Len(views, 2)
		s.Equal(earlier.ID(), views[0].ID)
		s.Equal(later.ID(), views[1].ID)
	})

	s.Run("includes cancelled bookings", func() {
		s.SetupTest()
		b := s.seed(builder.NewBookingBuilder())
		_, err := s.store.UpdateStatus(s.ctx, b.ID(), booking.StatusBooked, booking.StatusCancelled, time.Now())
		s.Require().NoError(err)

		views, err := s.queries.List(s.ctx, queries.ListFilter{Email: "ada@example.com"})

		s.Require().NoError(err)
		s.Require().Len(views, 1)
		s.Equal("cancelled", views[0].Status)
	})

	s.Run("no filter lists everyone", func() {
		s.SetupTest()
		s.seed(builder.NewBookingBuilder())
		s.seed(builder.NewBookingBuilder().WithEmail("bob@example.com").WithSlot("11:00"))

		views, err := s.queries.List(s.ctx, queries.ListFilter{})

		s.Require().NoError(err)
		s.Len(views, 2)
	})

	s.Run("unknown email is empty", func() {
		s.SetupTest()
		views, err := s.queries.List(s.ctx, queries.ListFilter{Email: "nobody@example.com"})

		s.Require().NoError(err)
		s.Empty(views)
	})
}

func (s *BookingQueriesTestSuite) TestGetByID() {
	b := s.seed(builder.NewBookingBuilder())

	view, err := s.queries.GetByID(s.ctx, b.ID())
	s.Require().NoError(err)
	s.Equal(b.Snapshot().Email, view.Email)

	_, err = s.queries.GetByID(s.ctx, uuid.New())
	s.Require().ErrorIs(err, queries.ErrBookingNotFound)
	s.True(errs.Is(err, errs.ErrNotFound))
}
