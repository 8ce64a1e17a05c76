//go:build unit

package mongostore

import (
	"errors"
	"testing"

	"appointment-booking/internal/domain/booking"
	"appointment-booking/internal/infra"
	"appointment-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestBuildFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, buildFilter(shared.BookingFilter{}))

	f := buildFilter(shared.BookingFilter{
		Email:  shared.StringPtr("ada@example.com"),
		Date:   shared.StringPtr("2030-01-15"),
		Status: shared.StatusPtr(booking.StatusBooked),
	})
	assert.Equal(t, bson.M{"email": "ada@example.com", "date": "2030-01-15", "status": "booked"}, f)
}

func TestClassifyWriteErr(t *testing.T) {
	dupOn := func(index string) error {
		return mongo.WriteException{WriteErrors: []mongo.WriteError{{
			Code:    11000,
			Message: "E11000 duplicate key error collection: booking.bookings index: " + index + " dup key",
		}}}
	}

	testCases := []struct {
		name       string
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "active slot index", err: dupOn(activeSlotIndex), expectKind: infra.KindConflict},
		{name: "primary key", err: dupOn("_id_"), expectKind: infra.KindDuplicateKey},
		{name: "other failure", err: errors.New("server selection timeout"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := classifyWriteErr("insert", tc.err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}
