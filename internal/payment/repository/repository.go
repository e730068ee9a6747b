// Package repository provides data access layer for payment module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	paymentModel "github.com/festhub/sportsfest-api/internal/payment/model"
)

// Repository defines the interface for payment data access operations.
type Repository interface {
	// Create inserts a new payment attempt in created status.
	Create(ctx context.Context, payment *paymentModel.Payment) error

	// GetByOrderID finds a payment attempt by gateway order id.
	GetByOrderID(ctx context.Context, orderID string) (*paymentModel.Payment, error)

	// HasActiveForRegistration reports whether a created attempt exists for
	// the registration.
	HasActiveForRegistration(ctx context.Context, registrationID int64) (bool, error)

	// MarkSuccess conditionally moves an attempt from created to success,
	// stamping the gateway payment id and signature. Returns false when the
	// attempt was not in created status (the compare-and-swap lost).
	MarkSuccess(ctx context.Context, orderID, paymentID, signature string) (bool, error)

	// MarkFailed conditionally moves an attempt from created to failed.
	// Returns false when the attempt was not in created status.
	MarkFailed(ctx context.Context, orderID, reason string) (bool, error)

	// MarkRefunded overwrites the registration's successful attempt with
	// refunded. Returns false when no successful attempt exists.
	MarkRefunded(ctx context.Context, registrationID int64) (bool, error)

	// GetSuccessByRegistration finds the successful attempt for a registration.
	GetSuccessByRegistration(ctx context.Context, registrationID int64) (*paymentModel.Payment, error)

	// ListByRegistration returns all attempts for a registration, newest first.
	ListByRegistration(ctx context.Context, registrationID int64) ([]paymentModel.Payment, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new payment repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a new payment attempt in created status.
func (r *repository) Create(ctx context.Context, payment *paymentModel.Payment) error {
	err := r.db.WithContext(ctx).Create(payment).Error
	if err != nil {
		if isDuplicateError(err) {
			return paymentModel.ErrDuplicateOrder
		}
		return err
	}
	return nil
}

// isDuplicateError checks if error is a duplicate key error.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// GetByOrderID finds a payment attempt by gateway order id.
func (r *repository) GetByOrderID(ctx context.Context, orderID string) (*paymentModel.Payment, error) {
	var payment paymentModel.Payment
	err := r.db.WithContext(ctx).
		Where("gateway_order_id = ?", orderID).
		First(&payment).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, paymentModel.ErrOrderNotFound
		}
		return nil, err
	}

	return &payment, nil
}

// HasActiveForRegistration reports whether a created attempt exists for
// the registration.
func (r *repository) HasActiveForRegistration(ctx context.Context, registrationID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&paymentModel.Payment{}).
		Where("registration_id = ? AND status = ?", registrationID, paymentModel.StatusCreated).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// MarkSuccess conditionally moves an attempt from created to success.
// The WHERE clause on the current status makes the commit at-most-once
// per (orderID, paymentID) pair.
func (r *repository) MarkSuccess(ctx context.Context, orderID, paymentID, signature string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&paymentModel.Payment{}).
		Where("gateway_order_id = ? AND status = ?", orderID, paymentModel.StatusCreated).
		Updates(map[string]interface{}{
			"status":             paymentModel.StatusSuccess,
			"gateway_payment_id": paymentID,
			"signature":          signature,
		})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// MarkFailed conditionally moves an attempt from created to failed.
func (r *repository) MarkFailed(ctx context.Context, orderID, reason string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&paymentModel.Payment{}).
		Where("gateway_order_id = ? AND status = ?", orderID, paymentModel.StatusCreated).
		Updates(map[string]interface{}{
			"status":         paymentModel.StatusFailed,
			"failure_reason": reason,
		})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// MarkRefunded overwrites the registration's successful attempt with refunded.
func (r *repository) MarkRefunded(ctx context.Context, registrationID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&paymentModel.Payment{}).
		Where("registration_id = ? AND status = ?", registrationID, paymentModel.StatusSuccess).
		Update("status", paymentModel.StatusRefunded)

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// GetSuccessByRegistration finds the successful attempt for a registration.
func (r *repository) GetSuccessByRegistration(
	ctx context.Context,
	registrationID int64,
) (*paymentModel.Payment, error) {
	var payment paymentModel.Payment
	err := r.db.WithContext(ctx).
		Where("registration_id = ? AND status = ?", registrationID, paymentModel.StatusSuccess).
		First(&payment).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, paymentModel.ErrOrderNotFound
		}
		return nil, err
	}

	return &payment, nil
}

// ListByRegistration returns all attempts for a registration, newest first.
func (r *repository) ListByRegistration(
	ctx context.Context,
	registrationID int64,
) ([]paymentModel.Payment, error) {
	var payments []paymentModel.Payment
	err := r.db.WithContext(ctx).
		Where("registration_id = ?", registrationID).
		Order("created_at DESC").
		Find(&payments).Error

	if err != nil {
		return nil, err
	}

	if payments == nil {
		return []paymentModel.Payment{}, nil
	}

	return payments, nil
}
