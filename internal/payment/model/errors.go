package model

import "errors"

var (
	// ErrOrderNotFound indicates no payment attempt exists for the order handle.
	ErrOrderNotFound = errors.New("payment order not found")
	// ErrDuplicateOrder indicates an active payment attempt already exists
	// for the registration.
	ErrDuplicateOrder = errors.New("an active payment order already exists")
	// ErrOrderNotAllowed indicates the registration's status does not permit
	// creating a payment order.
	ErrOrderNotAllowed = errors.New("registration status does not allow payment")
	// ErrSignatureMismatch indicates the supplied signature does not match the
	// recomputed one. Possible tampering; never retried automatically.
	ErrSignatureMismatch = errors.New("payment signature mismatch")
	// ErrOrderAlreadyCaptured indicates the order was already captured with a
	// different gateway payment id.
	ErrOrderAlreadyCaptured = errors.New("payment order already captured")
	// ErrOrderNotActive indicates the attempt already reached a terminal state.
	ErrOrderNotActive = errors.New("payment order is no longer active")
	// ErrRegistrationNotPayable indicates the registration left a payable
	// state while the payment was in flight.
	ErrRegistrationNotPayable = errors.New("registration is no longer payable")
	// ErrRefundNotAllowed indicates a refund for a registration that is not
	// cancelled or has no successful payment.
	ErrRefundNotAllowed = errors.New("refund is not allowed for this registration")
	// ErrNotOwner indicates the caller does not own the registration being paid.
	ErrNotOwner = errors.New("registration belongs to another user")
)
