// Package handler provides HTTP handlers for sport endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	sportModel "github.com/festhub/sportsfest-api/internal/sport/model"
	"github.com/festhub/sportsfest-api/internal/sport/service"
)

// Handler handles HTTP requests for sport endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new sport handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateSport handles POST /api/sports request (admin only).
func (h *Handler) CreateSport(c *gin.Context) {
	var req sportModel.CreateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateSport(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"sport": resp,
	})
}

// UpdateSport handles PATCH /api/sports/:id request (admin only).
func (h *Handler) UpdateSport(c *gin.Context) {
	var req sportModel.UpdateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.UpdateSport(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"sport": resp,
	})
}

// CloseSport handles POST /api/sports/:id/close request (admin only).
func (h *Handler) CloseSport(c *gin.Context) {
	resp, err := h.service.CloseSport(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"sport": resp,
	})
}

// GetSport handles GET /api/sports/:id request.
func (h *Handler) GetSport(c *gin.Context) {
	resp, err := h.service.GetSport(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"sport": resp,
	})
}

// ListSports handles GET /api/sports request.
func (h *Handler) ListSports(c *gin.Context) {
	resp, err := h.service.ListSports(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"sports": resp,
	})
}

// writeError maps service errors to HTTP responses.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, sportModel.ErrSportNotFound):
		notFoundResponse(c, "sport not found")
	case errors.Is(err, sportModel.ErrSportExists):
		errorResponse(c, "SPORT_EXISTS", "sport id already exists", http.StatusConflict)
	case errors.Is(err, sportModel.ErrFieldFrozen):
		errorResponse(c, "FIELD_FROZEN", err.Error(), http.StatusConflict)
	case errors.Is(err, sportModel.ErrInvalidSportID),
		errors.Is(err, sportModel.ErrInvalidFee),
		errors.Is(err, sportModel.ErrInvalidTeamSize),
		errors.Is(err, sportModel.ErrInvalidCapacity),
		errors.Is(err, sportModel.ErrInvalidWindow):
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	default:
		h.logger.Errorw("sport handler error", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
