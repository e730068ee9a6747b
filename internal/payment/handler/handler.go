// Package handler provides HTTP handlers for payment endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festhub/sportsfest-api/internal/identity"
	paymentModel "github.com/festhub/sportsfest-api/internal/payment/model"
	"github.com/festhub/sportsfest-api/internal/payment/service"
	registrationModel "github.com/festhub/sportsfest-api/internal/registration/model"
)

// Handler handles HTTP requests for payment endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new payment handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateOrder handles POST /api/payments/order request.
func (h *Handler) CreateOrder(c *gin.Context) {
	userID, ok := identity.UserID(c)
	if !ok {
		errorResponse(c, "UNAUTHENTICATED", "user identity is required", http.StatusUnauthorized)
		return
	}

	var req paymentModel.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateOrder(c.Request.Context(), userID, req.RegistrationID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"order": resp,
	})
}

// Verify handles POST /api/payments/verify request. The gateway callback
// carries either a (payment_id, signature) pair on success or an error
// string on failure.
func (h *Handler) Verify(c *gin.Context) {
	var req paymentModel.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Error != "" {
		resp, err := h.service.Fail(c.Request.Context(), req.OrderID, req.Error)
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, map[string]interface{}{
			"payment": resp,
		})
		return
	}

	if req.PaymentID == "" || req.Signature == "" {
		errorResponse(c, "INVALID_REQUEST", "payment_id and signature are required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Verify(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"payment": resp,
	})
}

// Refund handles POST /api/payments/:registrationId/refund request (admin only).
func (h *Handler) Refund(c *gin.Context) {
	registrationID, err := strconv.ParseInt(c.Param("registrationId"), 10, 64)
	if err != nil || registrationID <= 0 {
		errorResponse(c, "INVALID_REQUEST", "invalid registration id", http.StatusBadRequest)
		return
	}

	resp, svcErr := h.service.Refund(c.Request.Context(), registrationID)
	if svcErr != nil {
		h.writeError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"payment": resp,
	})
}

// writeError maps service errors to HTTP responses.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, paymentModel.ErrOrderNotFound):
		notFoundResponse(c, "payment order not found")
	case errors.Is(err, registrationModel.ErrRegistrationNotFound):
		notFoundResponse(c, "registration not found")
	case errors.Is(err, paymentModel.ErrNotOwner):
		errorResponse(c, "FORBIDDEN", err.Error(), http.StatusForbidden)
	case errors.Is(err, paymentModel.ErrSignatureMismatch):
		errorResponse(c, "SIGNATURE_MISMATCH", err.Error(), http.StatusBadRequest)
	case errors.Is(err, paymentModel.ErrDuplicateOrder):
		errorResponse(c, "DUPLICATE_ORDER", err.Error(), http.StatusConflict)
	case errors.Is(err, paymentModel.ErrOrderNotAllowed):
		errorResponse(c, "ORDER_NOT_ALLOWED", err.Error(), http.StatusConflict)
	case errors.Is(err, paymentModel.ErrOrderAlreadyCaptured):
		errorResponse(c, "ALREADY_CAPTURED", err.Error(), http.StatusConflict)
	case errors.Is(err, paymentModel.ErrOrderNotActive):
		errorResponse(c, "ORDER_NOT_ACTIVE", err.Error(), http.StatusConflict)
	case errors.Is(err, paymentModel.ErrRegistrationNotPayable):
		errorResponse(c, "NOT_PAYABLE", err.Error(), http.StatusConflict)
	case errors.Is(err, paymentModel.ErrRefundNotAllowed):
		errorResponse(c, "REFUND_NOT_ALLOWED", err.Error(), http.StatusConflict)
	default:
		h.logger.Errorw("payment handler error", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
