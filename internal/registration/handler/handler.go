// Package handler provides HTTP handlers for registration endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festhub/sportsfest-api/internal/identity"
	registrationModel "github.com/festhub/sportsfest-api/internal/registration/model"
	"github.com/festhub/sportsfest-api/internal/registration/service"
	sportModel "github.com/festhub/sportsfest-api/internal/sport/model"
)

// Handler handles HTTP requests for registration endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new registration handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register handles POST /api/registrations request.
func (h *Handler) Register(c *gin.Context) {
	userID, ok := identity.UserID(c)
	if !ok {
		errorResponse(c, "UNAUTHENTICATED", "user identity is required", http.StatusUnauthorized)
		return
	}

	var req registrationModel.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), userID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"registration": resp,
	})
}

// UpdateTeam handles PATCH /api/registrations/:id/team request.
func (h *Handler) UpdateTeam(c *gin.Context) {
	userID, ok := identity.UserID(c)
	if !ok {
		errorResponse(c, "UNAUTHENTICATED", "user identity is required", http.StatusUnauthorized)
		return
	}

	registrationID, ok := h.registrationID(c)
	if !ok {
		return
	}

	var req registrationModel.TeamPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.UpdateTeam(c.Request.Context(), userID, registrationID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"registration": resp,
	})
}

// Withdraw handles POST /api/registrations/:id/withdraw request.
func (h *Handler) Withdraw(c *gin.Context) {
	userID, ok := identity.UserID(c)
	if !ok {
		errorResponse(c, "UNAUTHENTICATED", "user identity is required", http.StatusUnauthorized)
		return
	}

	registrationID, ok := h.registrationID(c)
	if !ok {
		return
	}

	resp, err := h.service.Withdraw(c.Request.Context(), userID, registrationID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"registration": resp,
	})
}

// Promote handles POST /api/registrations/:id/promote request (admin only).
func (h *Handler) Promote(c *gin.Context) {
	registrationID, ok := h.registrationID(c)
	if !ok {
		return
	}

	resp, err := h.service.Promote(c.Request.Context(), registrationID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"registration": resp,
	})
}

// CancelSport handles POST /api/sports/:id/cancel request (admin only).
func (h *Handler) CancelSport(c *gin.Context) {
	count, err := h.service.CancelBySport(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"cancelled": count,
	})
}

// Get handles GET /api/registrations/:id request.
func (h *Handler) Get(c *gin.Context) {
	userID, ok := identity.UserID(c)
	if !ok {
		errorResponse(c, "UNAUTHENTICATED", "user identity is required", http.StatusUnauthorized)
		return
	}

	registrationID, ok := h.registrationID(c)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), userID, registrationID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"registration": resp,
	})
}

// List handles GET /api/registrations request.
func (h *Handler) List(c *gin.Context) {
	userID, ok := identity.UserID(c)
	if !ok {
		errorResponse(c, "UNAUTHENTICATED", "user identity is required", http.StatusUnauthorized)
		return
	}

	resp, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"registrations": resp,
	})
}

// registrationID parses the :id path parameter.
func (h *Handler) registrationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorResponse(c, "INVALID_REQUEST", "invalid registration id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// writeError maps service errors to HTTP responses.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, registrationModel.ErrRegistrationNotFound):
		notFoundResponse(c, "registration not found")
	case errors.Is(err, sportModel.ErrSportNotFound):
		notFoundResponse(c, "sport not found")
	case errors.Is(err, registrationModel.ErrNotOwner):
		errorResponse(c, "FORBIDDEN", err.Error(), http.StatusForbidden)
	case errors.Is(err, registrationModel.ErrDeadlinePassed):
		errorResponse(c, "DEADLINE_PASSED", err.Error(), http.StatusConflict)
	case errors.Is(err, registrationModel.ErrRegistrationClosed):
		errorResponse(c, "REGISTRATION_CLOSED", err.Error(), http.StatusConflict)
	case errors.Is(err, registrationModel.ErrAlreadyRegistered):
		errorResponse(c, "ALREADY_REGISTERED", err.Error(), http.StatusConflict)
	case errors.Is(err, registrationModel.ErrAlreadyConfirmed):
		errorResponse(c, "ALREADY_CONFIRMED", err.Error(), http.StatusConflict)
	case errors.Is(err, registrationModel.ErrEditNotAllowed):
		errorResponse(c, "EDIT_NOT_ALLOWED", err.Error(), http.StatusConflict)
	case errors.Is(err, registrationModel.ErrWithdrawNotAllowed):
		errorResponse(c, "WITHDRAW_NOT_ALLOWED", err.Error(), http.StatusConflict)
	case errors.Is(err, registrationModel.ErrNotOnWaitlist):
		errorResponse(c, "NOT_ON_WAITLIST", err.Error(), http.StatusConflict)
	case errors.Is(err, registrationModel.ErrNotATeamEvent),
		errors.Is(err, registrationModel.ErrTooFewMembers),
		errors.Is(err, registrationModel.ErrTooManyMembers),
		errors.Is(err, registrationModel.ErrNoCaptain),
		errors.Is(err, registrationModel.ErrDuplicateCaptain),
		errors.Is(err, registrationModel.ErrMemberNameMissing),
		errors.Is(err, registrationModel.ErrTeamRequired):
		errorResponse(c, "INVALID_TEAM", err.Error(), http.StatusBadRequest)
	default:
		h.logger.Errorw("registration handler error", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
