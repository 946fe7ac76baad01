package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"venuehub/internal/availability"
	"venuehub/internal/domain"
	"venuehub/internal/pkg/response"
	"venuehub/internal/pkg/validator"
	"venuehub/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  *Service
	resolver *availability.Service
}

func NewHandler(service *Service, resolver *availability.Service) *Handler {
	return &Handler{service: service, resolver: resolver}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/venues", h.ListVenues)
	rg.GET("/venues/:id", h.GetVenue)
	rg.GET("/venues/:id/availability", h.GetAvailability)
	rg.GET("/venues/:id/slots", h.GetSlots)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/venues", h.CreateVenue)
	rg.PUT("/venues/:id", h.UpdateVenue)
}

func (h *Handler) ListVenues(c *gin.Context) {
	minCapacity, _ := strconv.Atoi(c.Query("min_capacity"))
	maxPrice, _ := strconv.ParseFloat(c.Query("max_price"), 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	venues, total, err := h.service.List(c.Request.Context(), repository.VenueFilters{
		City:        c.Query("city"),
		Category:    c.Query("category"),
		MinCapacity: minCapacity,
		MaxPrice:    maxPrice,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list venues")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"venues": venues,
		"total":  total,
	})
}

func (h *Handler) GetVenue(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid venue id")
		return
	}

	venue, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "VENUE_NOT_FOUND", "Venue not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load venue")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"venue": venue})
}

// GetAvailability classifies every date of a month for the calendar view.
// booking_type switches between the hourly and full-day policies.
func (h *Handler) GetAvailability(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid venue id")
		return
	}

	bookingType := domain.BookingType(c.DefaultQuery("booking_type", string(domain.BookingHourly)))
	if bookingType != domain.BookingHourly && bookingType != domain.BookingFullDay {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown booking type")
		return
	}

	days, err := h.resolver.MonthAvailability(c.Request.Context(), id, c.Query("month"), bookingType)
	if err != nil {
		writeAvailabilityError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"days": days})
}

func (h *Handler) GetSlots(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid venue id")
		return
	}

	slots, err := h.resolver.FreeSlots(c.Request.Context(), id, c.Query("date"))
	if err != nil {
		writeAvailabilityError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"slots": slots})
}

func (h *Handler) CreateVenue(c *gin.Context) {
	if c.GetString("role") != string(domain.RoleVenueOwner) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only venue owners can create venues")
		return
	}

	var req UpsertVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if fields := validator.Validate(&req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid venue fields", fields)
		return
	}

	venue, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create venue")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"venue": venue})
}

func (h *Handler) UpdateVenue(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid venue id")
		return
	}

	var req UpsertVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if fields := validator.Validate(&req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid venue fields", fields)
		return
	}

	venue, err := h.service.Update(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "VENUE_NOT_FOUND", "Venue not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the venue owner can update this venue")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update venue")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"venue": venue})
}

func writeAvailabilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, availability.ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date or month")
	case errors.Is(err, availability.ErrStoreUnavailable):
		response.Retryable(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Temporary storage failure, please retry")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load availability")
	}
}
