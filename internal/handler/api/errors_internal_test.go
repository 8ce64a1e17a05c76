//go:build unit

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"appointment-booking/internal/domain/booking"
	"appointment-booking/internal/handler/httperr"
	"appointment-booking/internal/pkg/errs"
	"appointment-booking/internal/usecase/commands"
	"appointment-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithUseCaseError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		err          error
		expectStatus int
		expectCode   httperr.Code
	}{
		{name: "validation", err: booking.ErrSlotOffGrid, expectStatus: http.StatusBadRequest, expectCode: httperr.CodeValidation},
		{name: "slot conflict", err: commands.ErrSlotConflict, expectStatus: http.StatusConflict, expectCode: httperr.CodeSlotConflict},
		{name: "already cancelled", err: booking.ErrAlreadyCancelled, expectStatus: http.StatusConflict, expectCode: httperr.CodeAlreadyCancelled},
		{name: "wrapped already cancelled", err: errs.Wrap(booking.ErrAlreadyCancelled, "cancel"), expectStatus: http.StatusConflict, expectCode: httperr.CodeAlreadyCancelled},
		{name: "other conflict-marked error", err: errs.Mark(errs.New("version mismatch"), errs.ErrConflict), expectStatus: http.StatusConflict, expectCode: httperr.CodeConflict},
		{name: "cancel target not found", err: commands.ErrBookingNotFound, expectStatus: http.StatusNotFound, expectCode: httperr.CodeNotFound},
		{name: "query not found", err: queries.ErrBookingNotFound, expectStatus: http.StatusNotFound, expectCode: httperr.CodeNotFound},
		{name: "not owner", err: booking.ErrNotOwner, expectStatus: http.StatusForbidden, expectCode: httperr.CodeForbidden},
		{name: "unclassified", err: errors.New("disk full"), expectStatus: http.StatusInternalServerError, expectCode: httperr.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodDelete, "/api/bookings/x", nil)

			abortWithUseCaseError(c, tt.err)

			assert.Equal(t, tt.expectStatus, rec.Code)
			var resp httperr.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectCode, resp.Error.Code)
		})
	}
}
