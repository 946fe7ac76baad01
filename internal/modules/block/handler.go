package block

import (
	"errors"
	"net/http"
	"strconv"

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
	rg.GET("/venues/:id/blocks", h.ListBlocks)
	rg.POST("/venues/:id/blocks", h.CreateBlock)
	rg.DELETE("/venues/:id/blocks/:blockId", h.DeleteBlock)
}

func (h *Handler) ListBlocks(c *gin.Context) {
	venueID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid venue id")
		return
	}

	blocks, err := h.service.List(c.Request.Context(), venueID, c.GetInt64("user_id"))
	if err != nil {
		writeBlockError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"blocks": blocks})
}

func (h *Handler) CreateBlock(c *gin.Context) {
	venueID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid venue id")
		return
	}

	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), venueID, c.GetInt64("user_id"), req)
	if err != nil {
		writeBlockError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"block": b})
}

func (h *Handler) DeleteBlock(c *gin.Context) {
	venueID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid venue id")
		return
	}
	blockID, err := strconv.ParseInt(c.Param("blockId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid block id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), venueID, blockID, c.GetInt64("user_id")); err != nil {
		writeBlockError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func writeBlockError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid block request")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the venue owner can manage blocks")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Venue or block not found")
	case errors.Is(err, ErrDateHasBookings):
		response.Error(c, http.StatusConflict, "DATE_HAS_BOOKINGS", "This date has active reservations and cannot be blocked")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to manage block")
	}
}
