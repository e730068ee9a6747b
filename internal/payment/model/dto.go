// Package model provides data transfer objects and domain models for the payment module.
package model

import "time"

// CreateOrderRequest represents the request to create a payment order.
type CreateOrderRequest struct {
	RegistrationID int64 `json:"registration_id" binding:"required"`
}

// OrderResponse represents a created payment order presented to the caller.
type OrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id,omitempty"`
}

// VerifyRequest represents a gateway callback. A success callback carries
// payment_id and signature; a failure callback carries error instead.
type VerifyRequest struct {
	OrderID   string `json:"order_id"   binding:"required"`
	PaymentID string `json:"payment_id"`
	Signature string `json:"signature"`
	Error     string `json:"error"`
}

// PaymentResponse represents the reconciled state of a payment attempt.
type PaymentResponse struct {
	OrderID            string `json:"order_id"`
	PaymentID          string `json:"payment_id,omitempty"`
	Status             Status `json:"status"`
	Amount             int64  `json:"amount"`
	Currency           string `json:"currency"`
	RegistrationID     int64  `json:"registration_id"`
	RegistrationStatus string `json:"registration_status"`
	CreatedAt          string `json:"created_at"`
}

// NewPaymentResponse builds a PaymentResponse from a payment attempt and
// the owning registration's status.
func NewPaymentResponse(p *Payment, registrationStatus string) *PaymentResponse {
	resp := &PaymentResponse{
		OrderID:            p.GatewayOrderID,
		Status:             p.Status,
		Amount:             p.Amount,
		Currency:           p.Currency,
		RegistrationID:     p.RegistrationID,
		RegistrationStatus: registrationStatus,
		CreatedAt:          p.CreatedAt.Format(time.RFC3339),
	}
	if p.GatewayPaymentID != nil {
		resp.PaymentID = *p.GatewayPaymentID
	}
	return resp
}
