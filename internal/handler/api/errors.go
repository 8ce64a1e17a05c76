package api

import (
	"errors"
	"log/slog"
	"net/http"

	"appointment-booking/internal/domain/booking"
	"appointment-booking/internal/handler/httperr"
	"appointment-booking/internal/pkg/errs"
	"appointment-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// abortWithUseCaseError maps use-case failures to HTTP statuses. The two 409s
// carry different messages so clients can tell a taken slot from a repeat cancel.
//
// Specific sentinels match by identity through errors.Is. errs.Is treats all
// errors sharing a class mark as equal, so it is only used for classes.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeValidation, err, err.Error(), nil)
	case errors.Is(err, commands.ErrSlotConflict):
		httperr.AbortWithError(c, http.StatusConflict, httperr.CodeSlotConflict, err, "Slot already booked", nil)
	case errors.Is(err, booking.ErrAlreadyCancelled):
		httperr.AbortWithError(c, http.StatusConflict, httperr.CodeAlreadyCancelled, err, "Booking already cancelled", nil)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, httperr.CodeNotFound, err, "Booking not found", nil)
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, httperr.CodeForbidden, err, "Booking belongs to another email", nil)
	case errs.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, httperr.CodeConflict, err, "Conflict", nil)
	default:
		slog.Error("unhandled use case error",
			"path", c.Request.URL.Path,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12),
		)
		httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternal, err, "Internal server error", nil)
	}
}

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// bindingDetail lists the failed validator rules, or nil for malformed JSON.
func bindingDetail(err error) any {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make([]fieldError, len(ve))
	for i, fe := range ve {
		out[i] = fieldError{Field: fe.Field(), Rule: fe.Tag()}
	}
	return out
}
