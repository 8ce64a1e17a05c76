package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Code is a stable identifier clients can switch on instead of parsing messages.
type Code string

const (
	CodeInvalidRequest   Code = "INVALID_REQUEST"
	CodeValidation       Code = "VALIDATION_ERROR"
	CodeSlotConflict     Code = "SLOT_CONFLICT"
	CodeAlreadyCancelled Code = "ALREADY_CANCELLED"
	CodeConflict         Code = "CONFLICT"
	CodeNotFound         Code = "NOT_FOUND"
	CodeForbidden        Code = "FORBIDDEN"
	CodeRateLimited      Code = "RATE_LIMITED"
	CodeInternal         Code = "INTERNAL"
)

type Body struct {
	Message string `json:"message"`
	Code    Code   `json:"code"`
}

type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	// Detail is set for binding failures only.
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, code Code, msg string, detail any) Response {
	return Response{
		Status: status,
		Error:  Body{Message: msg, Code: code},
		Detail: detail,
	}
}

func InternalResponse() Response {
	return NewResponse(http.StatusInternalServerError, CodeInternal, "Internal server error", nil)
}

// AbortWithError writes the envelope and keeps err on the context so the
// logging middleware can report the underlying cause.
func AbortWithError(c *gin.Context, status int, code Code, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, code, msg, detail)
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
