package booking

import (
	"errors"
	"net/http"
	"strconv"

	"venuehub/internal/availability"
	"venuehub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/users/me/bookings", h.MyBookings)
	rg.PATCH("/bookings/:id/confirm", h.ConfirmBooking)
	rg.PATCH("/bookings/:id/cancel", h.CancelBooking)
	rg.GET("/venues/:id/bookings", h.VenueBookings)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": res})
}

func (h *Handler) MyBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	rows, err := h.service.MyBookings(c.Request.Context(), c.GetInt64("user_id"), limit, offset)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": rows})
}

func (h *Handler) ConfirmBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	res, err := h.service.Confirm(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": res})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cancellation reason is required")
		return
	}

	res, err := h.service.Cancel(c.Request.Context(), id, c.GetInt64("user_id"), req.Reason)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": res})
}

func (h *Handler) VenueBookings(c *gin.Context) {
	venueID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid venue id")
		return
	}

	rows, err := h.service.VenueBookings(c.Request.Context(), venueID, c.GetInt64("user_id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": rows})
}

// writeBookingError maps every rejection to its specific code; the UI never
// sees a generic "booking failed" for a user-correctable problem.
func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, availability.ErrPastDate):
		response.Error(c, http.StatusBadRequest, "PAST_DATE", "The selected date is in the past")
	case errors.Is(err, availability.ErrDateBlocked):
		response.Error(c, http.StatusConflict, "DATE_BLOCKED", "This date has been blocked by the venue owner")
	case errors.Is(err, availability.ErrCapacityOutOfRange):
		response.Error(c, http.StatusBadRequest, "CAPACITY_OUT_OF_RANGE", "Guest count is outside the venue capacity")
	case errors.Is(err, availability.ErrInvalidTimeRange):
		response.Error(c, http.StatusBadRequest, "INVALID_TIME_RANGE", "End time must be after start time")
	case errors.Is(err, availability.ErrSlotTaken):
		response.Error(c, http.StatusConflict, "SLOT_TAKEN", "The selected time slot is already taken")
	case errors.Is(err, availability.ErrDateFullyBooked):
		response.Error(c, http.StatusConflict, "DATE_FULLY_BOOKED", "This date is fully booked")
	case errors.Is(err, availability.ErrSlotConflict):
		response.Error(c, http.StatusConflict, "SLOT_CONFLICT", "This slot just became unavailable, please retry")
	case errors.Is(err, availability.ErrVenueNotFound):
		response.Error(c, http.StatusNotFound, "VENUE_NOT_FOUND", "Venue not found")
	case errors.Is(err, availability.ErrValidation), errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
	case errors.Is(err, availability.ErrStoreUnavailable):
		response.Retryable(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Temporary storage failure, please retry")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not allowed to manage this booking")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", "Booking is not in a state that allows this change")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process booking")
	}
}
