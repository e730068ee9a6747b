// Package service provides business logic layer for registration module.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festhub/sportsfest-api/internal/notification"
	registrationModel "github.com/festhub/sportsfest-api/internal/registration/model"
	"github.com/festhub/sportsfest-api/internal/registration/repository"
	sportModel "github.com/festhub/sportsfest-api/internal/sport/model"
	sportRepository "github.com/festhub/sportsfest-api/internal/sport/repository"
)

// Service defines the interface for registration business logic operations.
type Service interface {
	// Register runs the capacity allocator and creates a registration in its
	// initial state.
	Register(
		ctx context.Context,
		userID string,
		req *registrationModel.RegisterRequest,
	) (*registrationModel.RegistrationResponse, error)

	// UpdateTeam replaces the team details while the registration is mutable.
	UpdateTeam(
		ctx context.Context,
		userID string,
		registrationID int64,
		team *registrationModel.TeamPayload,
	) (*registrationModel.RegistrationResponse, error)

	// Withdraw moves a non-confirmed registration to withdrawn.
	Withdraw(
		ctx context.Context,
		userID string,
		registrationID int64,
	) (*registrationModel.RegistrationResponse, error)

	// Promote moves a waitlisted registration into a slot-holding state.
	// Called by an external scheduler when a slot frees up.
	Promote(ctx context.Context, registrationID int64) (*registrationModel.RegistrationResponse, error)

	// CancelBySport cancels every active registration of a sport.
	// Used when an administrator cancels the sport itself.
	CancelBySport(ctx context.Context, sportID string) (int, error)

	// Get returns a registration owned by the caller.
	Get(ctx context.Context, userID string, registrationID int64) (*registrationModel.RegistrationResponse, error)

	// ListByUser returns the caller's registrations.
	ListByUser(ctx context.Context, userID string) ([]registrationModel.RegistrationResponse, error)
}

type service struct {
	repo     repository.Repository
	sports   sportRepository.Repository
	db       *gorm.DB
	notifier notification.Notifier
	logger   *zap.SugaredLogger
	now      func() time.Time
}

// New creates a new registration service instance.
func New(
	repo repository.Repository,
	sports sportRepository.Repository,
	db *gorm.DB,
	notifier notification.Notifier,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:     repo,
		sports:   sports,
		db:       db,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Register runs the capacity allocator and creates a registration in its
// initial state.
func (s *service) Register(
	ctx context.Context,
	userID string,
	req *registrationModel.RegisterRequest,
) (*registrationModel.RegistrationResponse, error) {
	// Load sport before the transaction to fail fast if it doesn't exist
	sport, err := s.sports.GetByID(ctx, req.SportID)
	if err != nil {
		return nil, err
	}

	members, err := teamMembersFromPayload(sport, req.Team)
	if err != nil {
		return nil, err
	}

	teamName := ""
	if req.Team != nil {
		teamName = req.Team.TeamName
	}

	// Allocation and insert run in one transaction so the capacity count
	// and the new row commit together.
	var reg *registrationModel.Registration
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		active, txErr := txRepo.HasActiveForUser(ctx, userID, sport.SportID)
		if txErr != nil {
			return txErr
		}
		if active {
			return registrationModel.ErrAlreadyRegistered
		}

		status, txErr := s.allocate(ctx, txRepo, sport)
		if txErr != nil {
			return txErr
		}

		reg = &registrationModel.Registration{
			UserID:    userID,
			SportID:   sport.SportID,
			Status:    status,
			TeamName:  teamName,
			CreatedAt: s.now(),
		}
		return txRepo.Create(ctx, reg, members)
	})
	if err != nil {
		return nil, err
	}

	event := notification.EventRegistrationCreated
	if reg.Status == registrationModel.StatusWaitlist {
		event = notification.EventRegistrationWaitlisted
	}
	s.notify(ctx, userID, event, reg)

	s.logger.Infow("registration created",
		"registration_id", reg.ID,
		"registration_number", reg.RegistrationNumber,
		"sport_id", sport.SportID,
		"status", reg.Status,
	)
	return registrationModel.NewRegistrationResponse(reg, members), nil
}

// allocate decides the initial status for a new registration: deadline
// first, then window and soft-close, then capacity.
func (s *service) allocate(
	ctx context.Context,
	txRepo repository.Repository,
	sport *sportModel.Sport,
) (registrationModel.Status, error) {
	now := s.now()

	if now.After(sport.RegistrationDeadline) {
		return "", registrationModel.ErrDeadlinePassed
	}
	if !sport.IsRegistrationOpen || now.Before(sport.RegistrationStart) {
		return "", registrationModel.ErrRegistrationClosed
	}

	admitted := registrationModel.StatusPaymentPending
	if sport.Fee == 0 {
		admitted = registrationModel.StatusPending
	}

	if sport.MaxParticipants == nil {
		return admitted, nil
	}

	taken, err := txRepo.CountSlotHolders(ctx, sport.SportID)
	if err != nil {
		return "", err
	}
	if taken < int64(*sport.MaxParticipants) {
		return admitted, nil
	}
	if sport.WaitlistEnabled {
		return registrationModel.StatusWaitlist, nil
	}

	return "", registrationModel.ErrRegistrationClosed
}

// teamMembersFromPayload validates the team payload against the sport's
// constraints and converts it to member rows.
func teamMembersFromPayload(
	sport *sportModel.Sport,
	team *registrationModel.TeamPayload,
) ([]registrationModel.TeamMember, error) {
	var payload []registrationModel.TeamMemberPayload
	if team != nil {
		payload = team.Members
	}

	if sport.IsTeamEvent && len(payload) == 0 {
		return nil, registrationModel.ErrTeamRequired
	}

	if err := registrationModel.ValidateTeam(
		sport.IsTeamEvent, sport.TeamSizeMin, sport.TeamSizeMax, payload,
	); err != nil {
		return nil, err
	}

	members := make([]registrationModel.TeamMember, 0, len(payload))
	for i, m := range payload {
		members = append(members, registrationModel.TeamMember{
			Position:  i,
			Name:      m.Name,
			Email:     m.Email,
			Phone:     m.Phone,
			IsCaptain: m.IsCaptain,
		})
	}
	return members, nil
}

// UpdateTeam replaces the team details while the registration is mutable.
// The edit re-runs the composition validator and is applied atomically.
func (s *service) UpdateTeam(
	ctx context.Context,
	userID string,
	registrationID int64,
	team *registrationModel.TeamPayload,
) (*registrationModel.RegistrationResponse, error) {
	if team == nil {
		return nil, registrationModel.ErrTeamRequired
	}

	reg, err := s.repo.GetByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if reg.UserID != userID {
		return nil, registrationModel.ErrNotOwner
	}

	sport, err := s.sports.GetByID(ctx, reg.SportID)
	if err != nil {
		return nil, err
	}

	members, err := teamMembersFromPayload(sport, team)
	if err != nil {
		return nil, err
	}

	var updated *registrationModel.Registration
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		// Re-read for the response; the status-conditional update inside
		// ReplaceTeam is what freezes the edit against a concurrent
		// confirmation.
		current, txErr := txRepo.GetByID(ctx, registrationID)
		if txErr != nil {
			return txErr
		}
		if !current.Status.Editable() {
			return registrationModel.ErrEditNotAllowed
		}

		if txErr := txRepo.ReplaceTeam(ctx, registrationID, team.TeamName, members); txErr != nil {
			return txErr
		}

		current.TeamName = team.TeamName
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team updated", "registration_id", registrationID)
	return registrationModel.NewRegistrationResponse(updated, members), nil
}

// Withdraw moves a non-confirmed registration to withdrawn. The conditional
// update is the cancellation contract: if a concurrent payment success has
// already confirmed the registration, the withdrawal is rejected.
func (s *service) Withdraw(
	ctx context.Context,
	userID string,
	registrationID int64,
) (*registrationModel.RegistrationResponse, error) {
	reg, err := s.repo.GetByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if reg.UserID != userID {
		return nil, registrationModel.ErrNotOwner
	}

	applied, err := s.repo.UpdateStatusFrom(
		ctx, registrationID,
		registrationModel.WithdrawableStatuses(),
		registrationModel.StatusWithdrawn,
		nil,
	)
	if err != nil {
		return nil, err
	}
	if !applied {
		current, readErr := s.repo.GetByID(ctx, registrationID)
		if readErr != nil {
			return nil, readErr
		}
		if current.Status == registrationModel.StatusConfirmed {
			return nil, registrationModel.ErrAlreadyConfirmed
		}
		return nil, registrationModel.ErrWithdrawNotAllowed
	}

	reg.Status = registrationModel.StatusWithdrawn
	s.notify(ctx, userID, notification.EventRegistrationWithdrawn, reg)

	members, err := s.repo.GetMembers(ctx, registrationID)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("registration withdrawn", "registration_id", registrationID)
	return registrationModel.NewRegistrationResponse(reg, members), nil
}

// Promote moves a waitlisted registration into a slot-holding state once a
// slot is available.
func (s *service) Promote(
	ctx context.Context,
	registrationID int64,
) (*registrationModel.RegistrationResponse, error) {
	reg, err := s.repo.GetByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}

	sport, err := s.sports.GetByID(ctx, reg.SportID)
	if err != nil {
		return nil, err
	}

	target := registrationModel.StatusPaymentPending
	if sport.Fee == 0 {
		target = registrationModel.StatusPending
	}

	var promoted *registrationModel.Registration
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		if sport.MaxParticipants != nil {
			taken, txErr := txRepo.CountSlotHolders(ctx, sport.SportID)
			if txErr != nil {
				return txErr
			}
			if taken >= int64(*sport.MaxParticipants) {
				return registrationModel.ErrRegistrationClosed
			}
		}

		applied, txErr := txRepo.UpdateStatusFrom(
			ctx, registrationID,
			[]registrationModel.Status{registrationModel.StatusWaitlist},
			target,
			nil,
		)
		if txErr != nil {
			return txErr
		}
		if !applied {
			return registrationModel.ErrNotOnWaitlist
		}

		reg.Status = target
		promoted = reg
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, promoted.UserID, notification.EventRegistrationPromoted, promoted)

	members, err := s.repo.GetMembers(ctx, registrationID)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("registration promoted", "registration_id", registrationID, "status", target)
	return registrationModel.NewRegistrationResponse(promoted, members), nil
}

// CancelBySport cancels every active registration of a sport and
// soft-closes the sport. Refunds for confirmed payments are issued
// separately through the payment module.
func (s *service) CancelBySport(ctx context.Context, sportID string) (int, error) {
	if _, err := s.sports.GetByID(ctx, sportID); err != nil {
		return 0, err
	}

	var cancelled []registrationModel.Registration
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		var txErr error
		cancelled, txErr = txRepo.CancelBySport(ctx, sportID)
		if txErr != nil {
			return txErr
		}

		return sportRepository.New(tx).Close(ctx, sportID)
	})
	if err != nil {
		return 0, err
	}

	for i := range cancelled {
		s.notify(ctx, cancelled[i].UserID, notification.EventRegistrationCancelled, &cancelled[i])
	}

	s.logger.Infow("sport cancelled", "sport_id", sportID, "registrations_cancelled", len(cancelled))
	return len(cancelled), nil
}

// Get returns a registration owned by the caller.
func (s *service) Get(
	ctx context.Context,
	userID string,
	registrationID int64,
) (*registrationModel.RegistrationResponse, error) {
	reg, err := s.repo.GetByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if reg.UserID != userID {
		return nil, registrationModel.ErrNotOwner
	}

	members, err := s.repo.GetMembers(ctx, registrationID)
	if err != nil {
		return nil, err
	}

	return registrationModel.NewRegistrationResponse(reg, members), nil
}

// ListByUser returns the caller's registrations.
func (s *service) ListByUser(
	ctx context.Context,
	userID string,
) ([]registrationModel.RegistrationResponse, error) {
	regs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]registrationModel.RegistrationResponse, 0, len(regs))
	for i := range regs {
		members, memberErr := s.repo.GetMembers(ctx, regs[i].ID)
		if memberErr != nil {
			return nil, memberErr
		}
		responses = append(responses, *registrationModel.NewRegistrationResponse(&regs[i], members))
	}
	return responses, nil
}

// notify fires a lifecycle event. Emission never fails the operation.
func (s *service) notify(
	ctx context.Context,
	userID string,
	event notification.Event,
	reg *registrationModel.Registration,
) {
	s.notifier.Notify(ctx, userID, event, map[string]interface{}{
		"registration_id":     reg.ID,
		"registration_number": reg.RegistrationNumber,
		"sport_id":            reg.SportID,
		"status":              string(reg.Status),
	})
}
