package api

import (
	"net/http"

	reqdto "appointment-booking/internal/handler/dto/request"
	resdto "appointment-booking/internal/handler/dto/response"
	"appointment-booking/internal/handler/httperr"
	"appointment-booking/internal/usecase/commands"
	"appointment-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary List available slots
// @Description Free slots of the daily grid for one date, in ascending order
// @Tags slots
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailableSlotsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/slots [get]
func (h *BookingHandler) ListSlots(c *gin.Context) {
	var query reqdto.SlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeInvalidRequest, err, "date query parameter is required", nil)
		return
	}
	slots, err := h.q.AvailableSlots(c.Request.Context(), query.Date)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AvailableSlotsResponse{Date: query.Date, AvailableSlots: slots})
}

// @Summary Create booking
// @Description Book one free slot. Label defaults when omitted.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeInvalidRequest, err, "Invalid request", bindingDetail(err))
		return
	}
	view, err := h.cmds.Admit(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description Bookings of one email, ordered by date and slot, cancelled ones included
// @Tags bookings
// @Produce json
// @Param email query string true "Contact email"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var query reqdto.EmailQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeInvalidRequest, err, "email query parameter is required", nil)
		return
	}
	views, err := h.q.List(c.Request.Context(), queries.ListFilter{Email: query.Email})
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeInvalidRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel own booking. The email must match the one used to book.
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Param email query string true "Contact email"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeInvalidRequest, err, "Invalid id", nil)
		return
	}
	var query reqdto.EmailQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeInvalidRequest, bindErr, "email query parameter is required", nil)
		return
	}
	view, err := h.cmds.Cancel(c.Request.Context(), id, query.Email)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
