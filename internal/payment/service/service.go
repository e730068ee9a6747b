// Package service provides the payment reconciliation engine: it creates
// payment orders, verifies gateway callbacks and drives registration
// transitions exactly once per payment event.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festhub/sportsfest-api/internal/config"
	"github.com/festhub/sportsfest-api/internal/notification"
	"github.com/festhub/sportsfest-api/internal/payment/gateway"
	paymentModel "github.com/festhub/sportsfest-api/internal/payment/model"
	"github.com/festhub/sportsfest-api/internal/payment/repository"
	registrationModel "github.com/festhub/sportsfest-api/internal/registration/model"
	registrationRepository "github.com/festhub/sportsfest-api/internal/registration/repository"
	sportModel "github.com/festhub/sportsfest-api/internal/sport/model"
	sportRepository "github.com/festhub/sportsfest-api/internal/sport/repository"
	"github.com/festhub/sportsfest-api/pkg/retry"
)

// Pricer computes the amount owed for a registration. The discount policy
// is external; the default charges the sport's face fee.
type Pricer func(sport *sportModel.Sport, reg *registrationModel.Registration) int64

// FaceValue is the default Pricer: the sport's fee with no discount.
func FaceValue(sport *sportModel.Sport, _ *registrationModel.Registration) int64 {
	return sport.Fee
}

// Service defines the interface for payment business logic operations.
type Service interface {
	// CreateOrder creates a payment order for a registration. Fails if the
	// registration is not payable or an active attempt already exists.
	CreateOrder(ctx context.Context, userID string, registrationID int64) (*paymentModel.OrderResponse, error)

	// Verify reconciles a gateway success callback. Idempotent: a repeated
	// call with the same (orderID, paymentID) returns the prior result.
	Verify(ctx context.Context, req *paymentModel.VerifyRequest) (*paymentModel.PaymentResponse, error)

	// Fail records a gateway-reported failure, leaving the registration in
	// payment_pending so the user may retry.
	Fail(ctx context.Context, orderID, reason string) (*paymentModel.PaymentResponse, error)

	// Refund overwrites a cancelled registration's successful payment with
	// refunded (admin, full-refund policy on sport cancellation).
	Refund(ctx context.Context, registrationID int64) (*paymentModel.PaymentResponse, error)
}

type service struct {
	repo          repository.Repository
	registrations registrationRepository.Repository
	sports        sportRepository.Repository
	db            *gorm.DB
	gateway       gateway.Gateway
	signer        *gateway.Signer
	pricer        Pricer
	cfg           config.PaymentConfig
	notifier      notification.Notifier
	logger        *zap.SugaredLogger
	retryCfg      retry.Config
}

// New creates a new payment service instance.
func New(
	repo repository.Repository,
	registrations registrationRepository.Repository,
	sports sportRepository.Repository,
	db *gorm.DB,
	gw gateway.Gateway,
	cfg config.PaymentConfig,
	notifier notification.Notifier,
	logger *zap.SugaredLogger,
) Service {
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxAttempts = 3

	return &service{
		repo:          repo,
		registrations: registrations,
		sports:        sports,
		db:            db,
		gateway:       gw,
		signer:        gateway.NewSigner(cfg.KeySecret),
		pricer:        FaceValue,
		cfg:           cfg,
		notifier:      notifier,
		logger:        logger,
		retryCfg:      retryCfg,
	}
}

// CreateOrder creates a payment order for a registration.
func (s *service) CreateOrder(
	ctx context.Context,
	userID string,
	registrationID int64,
) (*paymentModel.OrderResponse, error) {
	reg, err := s.registrations.GetByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if reg.UserID != userID {
		return nil, paymentModel.ErrNotOwner
	}
	if !reg.Status.Payable() {
		return nil, paymentModel.ErrOrderNotAllowed
	}

	active, err := s.repo.HasActiveForRegistration(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, paymentModel.ErrDuplicateOrder
	}

	sport, err := s.sports.GetByID(ctx, reg.SportID)
	if err != nil {
		return nil, err
	}
	amount := s.pricer(sport, reg)

	// The gateway may fail transiently; the order id is minted gateway-side
	// so retrying cannot double-charge.
	orderID, err := retry.DoWithResult(ctx, s.retryCfg, func() (string, error) {
		return s.gateway.CreateOrder(ctx, amount, s.cfg.Currency, reg.RegistrationNumber)
	})
	if err != nil {
		return nil, err
	}

	payment := &paymentModel.Payment{
		RegistrationID: registrationID,
		Amount:         amount,
		Currency:       s.cfg.Currency,
		Status:         paymentModel.StatusCreated,
		GatewayOrderID: orderID,
	}
	// The partial unique index on (registration_id) WHERE status='created'
	// closes the race between two concurrent CreateOrder calls.
	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Infow("payment order created",
		"registration_id", registrationID,
		"order_id", orderID,
		"amount", amount,
	)
	return &paymentModel.OrderResponse{
		OrderID:  orderID,
		Amount:   amount,
		Currency: s.cfg.Currency,
		KeyID:    s.cfg.KeyID,
	}, nil
}

// Verify reconciles a gateway success callback. The payment success and the
// registration confirmation commit in one transaction; on any failure the
// whole transition rolls back.
func (s *service) Verify(
	ctx context.Context,
	req *paymentModel.VerifyRequest,
) (*paymentModel.PaymentResponse, error) {
	if !s.signer.Verify(req.OrderID, req.PaymentID, req.Signature) {
		s.logger.Warnw("payment signature mismatch",
			"order_id", req.OrderID,
			"payment_id", req.PaymentID,
		)
		return nil, paymentModel.ErrSignatureMismatch
	}

	var result *paymentModel.PaymentResponse
	var confirmed *registrationModel.Registration

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)
		txRegs := registrationRepository.New(tx)

		payment, txErr := txRepo.GetByOrderID(ctx, req.OrderID)
		if txErr != nil {
			return txErr
		}

		applied, txErr := txRepo.MarkSuccess(ctx, req.OrderID, req.PaymentID, req.Signature)
		if txErr != nil {
			return txErr
		}
		if !applied {
			// Lost the compare-and-swap: a prior call already settled this
			// attempt. Same pair means an idempotent replay.
			settled, replayErr := s.replayResult(ctx, txRepo, txRegs, req)
			if replayErr != nil {
				return replayErr
			}
			result = settled
			return nil
		}

		regApplied, txErr := txRegs.UpdateStatusFrom(
			ctx, payment.RegistrationID,
			[]registrationModel.Status{
				registrationModel.StatusPending,
				registrationModel.StatusPaymentPending,
			},
			registrationModel.StatusConfirmed,
			map[string]interface{}{"amount_paid": payment.Amount},
		)
		if txErr != nil {
			return txErr
		}
		if !regApplied {
			// The registration left its payable state while the payment was
			// in flight. Roll back rather than commit a mixed state.
			return paymentModel.ErrRegistrationNotPayable
		}

		reg, txErr := txRegs.GetByID(ctx, payment.RegistrationID)
		if txErr != nil {
			return txErr
		}

		payment.Status = paymentModel.StatusSuccess
		payment.GatewayPaymentID = &req.PaymentID
		confirmed = reg
		result = paymentModel.NewPaymentResponse(payment, string(reg.Status))
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Notify only when this call performed the confirmation; the idempotent
	// replay must not double-fire it.
	if confirmed != nil {
		s.notifier.Notify(ctx, confirmed.UserID, notification.EventRegistrationConfirmed, map[string]interface{}{
			"registration_id":     confirmed.ID,
			"registration_number": confirmed.RegistrationNumber,
			"sport_id":            confirmed.SportID,
			"amount_paid":         confirmed.AmountPaid,
		})
		s.logger.Infow("payment verified",
			"order_id", req.OrderID,
			"payment_id", req.PaymentID,
			"registration_id", confirmed.ID,
		)
	}

	return result, nil
}

// replayResult returns the stored outcome for a settled payment attempt.
func (s *service) replayResult(
	ctx context.Context,
	txRepo repository.Repository,
	txRegs registrationRepository.Repository,
	req *paymentModel.VerifyRequest,
) (*paymentModel.PaymentResponse, error) {
	payment, err := txRepo.GetByOrderID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	switch payment.Status {
	case paymentModel.StatusSuccess:
		if payment.GatewayPaymentID == nil || *payment.GatewayPaymentID != req.PaymentID {
			return nil, paymentModel.ErrOrderAlreadyCaptured
		}
	case paymentModel.StatusCreated:
		// MarkSuccess lost but the row is still created: another transaction
		// holds the row lock and will commit first.
		return nil, paymentModel.ErrOrderAlreadyCaptured
	default:
		return nil, paymentModel.ErrOrderNotActive
	}

	reg, err := txRegs.GetByID(ctx, payment.RegistrationID)
	if err != nil {
		return nil, err
	}

	return paymentModel.NewPaymentResponse(payment, string(reg.Status)), nil
}

// Fail records a gateway-reported failure. The conditional update cannot
// overwrite a success that landed first.
func (s *service) Fail(ctx context.Context, orderID, reason string) (*paymentModel.PaymentResponse, error) {
	payment, err := s.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	applied, err := s.repo.MarkFailed(ctx, orderID, reason)
	if err != nil {
		return nil, err
	}
	if !applied {
		// Re-read: a success may have landed between the read above and
		// the compare-and-swap.
		current, readErr := s.repo.GetByOrderID(ctx, orderID)
		if readErr != nil {
			return nil, readErr
		}
		if current.Status == paymentModel.StatusSuccess {
			return nil, paymentModel.ErrOrderAlreadyCaptured
		}
		return nil, paymentModel.ErrOrderNotActive
	}

	reg, err := s.registrations.GetByID(ctx, payment.RegistrationID)
	if err != nil {
		return nil, err
	}

	payment.Status = paymentModel.StatusFailed
	payment.FailureReason = &reason

	s.notifier.Notify(ctx, reg.UserID, notification.EventPaymentFailed, map[string]interface{}{
		"registration_id": reg.ID,
		"order_id":        orderID,
		"reason":          reason,
	})

	s.logger.Infow("payment failed",
		"order_id", orderID,
		"registration_id", payment.RegistrationID,
		"reason", reason,
	)
	return paymentModel.NewPaymentResponse(payment, string(reg.Status)), nil
}

// Refund overwrites a cancelled registration's successful payment with
// refunded.
func (s *service) Refund(ctx context.Context, registrationID int64) (*paymentModel.PaymentResponse, error) {
	reg, err := s.registrations.GetByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if reg.Status != registrationModel.StatusCancelled {
		return nil, paymentModel.ErrRefundNotAllowed
	}

	applied, err := s.repo.MarkRefunded(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, paymentModel.ErrRefundNotAllowed
	}

	refunded, err := s.listRefunded(ctx, registrationID)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, reg.UserID, notification.EventPaymentRefunded, map[string]interface{}{
		"registration_id": registrationID,
		"amount":          refunded.Amount,
	})

	s.logger.Infow("payment refunded", "registration_id", registrationID, "amount", refunded.Amount)
	return paymentModel.NewPaymentResponse(refunded, string(reg.Status)), nil
}

// listRefunded returns the refunded attempt for a registration.
func (s *service) listRefunded(ctx context.Context, registrationID int64) (*paymentModel.Payment, error) {
	payments, err := s.repo.ListByRegistration(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	for i := range payments {
		if payments[i].Status == paymentModel.StatusRefunded {
			return &payments[i], nil
		}
	}
	return nil, paymentModel.ErrOrderNotFound
}
