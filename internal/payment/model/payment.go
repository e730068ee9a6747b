package model

import (
	"time"

	"gorm.io/gorm"
)

// Status is the lifecycle state of a payment attempt.
type Status string

// Payment attempt states. A payment is immutable once success or failed;
// refunded is a terminal overwrite of a prior success.
const (
	StatusCreated  Status = "created"
	StatusSuccess  Status = "success"
	StatusFailed   Status = "failed"
	StatusRefunded Status = "refunded"
)

// Payment represents one payment attempt against a registration.
// A registration has at most one active (created) attempt at a time but
// may accumulate failed attempts from retries.
// Matches the payments table schema.
type Payment struct {
	ID               int64     `gorm:"primaryKey;column:id;type:bigserial"                                          json:"id"`
	RegistrationID   int64     `gorm:"column:registration_id;type:bigint;not null;index:idx_payments_registration"  json:"registration_id"`
	Amount           int64     `gorm:"column:amount;type:bigint;not null"                                           json:"amount"`
	Currency         string    `gorm:"column:currency;type:varchar(3);not null"                                     json:"currency"`
	Status           Status    `gorm:"column:status;type:varchar(16);not null;index:idx_payments_status"            json:"status"`
	GatewayOrderID   string    `gorm:"column:gateway_order_id;type:varchar(255);not null;uniqueIndex:idx_payments_order" json:"gateway_order_id"`
	GatewayPaymentID *string   `gorm:"column:gateway_payment_id;type:varchar(255)"                                  json:"gateway_payment_id,omitempty"`
	Signature        *string   `gorm:"column:signature;type:varchar(255)"                                           json:"-"`
	FailureReason    *string   `gorm:"column:failure_reason;type:varchar(255)"                                      json:"failure_reason,omitempty"`
	CreatedAt        time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"                    json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"                    json:"-"`
}

// TableName specifies the table name for GORM.
func (Payment) TableName() string {
	return "payments"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (p *Payment) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}
