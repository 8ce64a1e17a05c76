//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"appointment-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError_RecordsPublicError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	cause := errors.New("slot taken")
	httperr.AbortWithError(c, http.StatusConflict, httperr.CodeSlotConflict, cause, "Slot already booked", nil)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Slot already booked","code":"SLOT_CONFLICT"}}`, rec.Body.String())

	public := c.Errors.ByType(gin.ErrorTypePublic).Last()
	require.NotNil(t, public)
	assert.ErrorIs(t, public.Err, cause)

	resp, ok := public.Meta.(httperr.Response)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, resp.Status)
	assert.Equal(t, httperr.CodeSlotConflict, resp.Error.Code)
}

func TestAbortWithError_NilErrorPanics(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Panics(t, func() {
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeInvalidRequest, nil, "bad", nil)
	})
}
