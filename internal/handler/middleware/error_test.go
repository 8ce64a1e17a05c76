//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"appointment-booking/internal/handler/httperr"
	"appointment-booking/internal/handler/middleware"
	"appointment-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.ErrorHandler())

	engine.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	engine.GET("/unrendered", func(c *gin.Context) {
		_ = c.Error(errors.New("store offline"))
	})
	engine.GET("/public", func(c *gin.Context) {
		_ = c.Error(&gin.Error{
			Err:  errors.New("taken"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.NewResponse(http.StatusConflict, httperr.CodeSlotConflict, "Slot already booked", nil),
		})
	})
	engine.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return engine
}

func TestErrorMiddleware(t *testing.T) {
	engine := newErrorEngine()

	tests := []struct {
		name       string
		path       string
		expectCode int
		expectErr  httperr.Code
	}{
		{name: "panic is recovered as internal error", path: "/panic", expectCode: http.StatusInternalServerError, expectErr: httperr.CodeInternal},
		{name: "private error without response", path: "/unrendered", expectCode: http.StatusInternalServerError, expectErr: httperr.CodeInternal},
		{name: "public error renders its envelope", path: "/public", expectCode: http.StatusConflict, expectErr: httperr.CodeSlotConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, engine, http.MethodGet, tt.path, nil)
			httptest.AssertErrorCode(t, rec, tt.expectCode, tt.expectErr)
		})
	}

	t.Run("written responses pass through", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/ok", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	})
}
