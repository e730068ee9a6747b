// Package service provides business logic layer for sport module.
package service

import (
	"context"

	"go.uber.org/zap"

	sportModel "github.com/festhub/sportsfest-api/internal/sport/model"
	"github.com/festhub/sportsfest-api/internal/sport/repository"
)

// Service defines the interface for sport business logic operations.
type Service interface {
	// CreateSport creates a new sport in the catalog.
	CreateSport(ctx context.Context, req *sportModel.CreateSportRequest) (*sportModel.SportResponse, error)

	// UpdateSport updates a sport. Fields that would retroactively invalidate
	// existing registrations are frozen once the sport is referenced.
	UpdateSport(ctx context.Context, sportID string, req *sportModel.UpdateSportRequest) (*sportModel.SportResponse, error)

	// CloseSport soft-closes registration for a sport.
	CloseSport(ctx context.Context, sportID string) (*sportModel.SportResponse, error)

	// GetSport returns a single sport.
	GetSport(ctx context.Context, sportID string) (*sportModel.SportResponse, error)

	// ListSports returns all sports, optionally filtered by category.
	ListSports(ctx context.Context, category string) ([]sportModel.SportResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new sport service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// CreateSport creates a new sport in the catalog.
func (s *service) CreateSport(
	ctx context.Context,
	req *sportModel.CreateSportRequest,
) (*sportModel.SportResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	sport := &sportModel.Sport{
		SportID:              req.SportID,
		Name:                 req.Name,
		Description:          req.Description,
		Category:             req.Category,
		Fee:                  req.Fee,
		IsTeamEvent:          req.IsTeamEvent,
		TeamSizeMin:          req.TeamSizeMin,
		TeamSizeMax:          req.TeamSizeMax,
		MaxParticipants:      req.MaxParticipants,
		RegistrationStart:    req.RegistrationStart,
		RegistrationDeadline: req.RegistrationDeadline,
		IsRegistrationOpen:   true,
		WaitlistEnabled:      req.WaitlistEnabled,
	}

	if err := s.repo.Create(ctx, sport); err != nil {
		return nil, err
	}

	s.logger.Infow("sport created", "sport_id", sport.SportID, "category", sport.Category)
	return sportModel.NewSportResponse(sport), nil
}

// validateCreateRequest validates the create sport request.
func validateCreateRequest(req *sportModel.CreateSportRequest) error {
	if len(req.SportID) == 0 || len(req.SportID) > 255 {
		return sportModel.ErrInvalidSportID
	}
	if req.Fee < 0 {
		return sportModel.ErrInvalidFee
	}
	if req.IsTeamEvent && (req.TeamSizeMin < 1 || req.TeamSizeMin > req.TeamSizeMax) {
		return sportModel.ErrInvalidTeamSize
	}
	if req.MaxParticipants != nil && *req.MaxParticipants <= 0 {
		return sportModel.ErrInvalidCapacity
	}
	if req.RegistrationDeadline.Before(req.RegistrationStart) {
		return sportModel.ErrInvalidWindow
	}
	return nil
}

// UpdateSport updates a sport.
func (s *service) UpdateSport(
	ctx context.Context,
	sportID string,
	req *sportModel.UpdateSportRequest,
) (*sportModel.SportResponse, error) {
	sport, err := s.repo.GetByID(ctx, sportID)
	if err != nil {
		return nil, err
	}

	updates, err := s.buildUpdates(ctx, sport, req)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, sportID, updates); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.GetByID(ctx, sportID)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("sport updated", "sport_id", sportID)
	return sportModel.NewSportResponse(updated), nil
}

// buildUpdates validates the update request against the current sport state
// and returns the column updates to apply. Fee, capacity and window edits are
// frozen once a registration references the sport.
func (s *service) buildUpdates(
	ctx context.Context,
	sport *sportModel.Sport,
	req *sportModel.UpdateSportRequest,
) (map[string]interface{}, error) {
	updates := map[string]interface{}{}

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}

	frozen := map[string]interface{}{}
	if req.Fee != nil {
		if *req.Fee < 0 {
			return nil, sportModel.ErrInvalidFee
		}
		frozen["fee"] = *req.Fee
	}
	if req.MaxParticipants != nil {
		if *req.MaxParticipants <= 0 {
			return nil, sportModel.ErrInvalidCapacity
		}
		frozen["max_participants"] = *req.MaxParticipants
	}
	if req.RegistrationStart != nil {
		frozen["registration_start"] = *req.RegistrationStart
	}
	if req.RegistrationDeadline != nil {
		frozen["registration_deadline"] = *req.RegistrationDeadline
	}
	if req.WaitlistEnabled != nil {
		frozen["waitlist_enabled"] = *req.WaitlistEnabled
	}

	if len(frozen) > 0 {
		referenced, err := s.repo.HasRegistrations(ctx, sport.SportID)
		if err != nil {
			return nil, err
		}
		if referenced {
			return nil, sportModel.ErrFieldFrozen
		}

		start := sport.RegistrationStart
		if req.RegistrationStart != nil {
			start = *req.RegistrationStart
		}
		deadline := sport.RegistrationDeadline
		if req.RegistrationDeadline != nil {
			deadline = *req.RegistrationDeadline
		}
		if deadline.Before(start) {
			return nil, sportModel.ErrInvalidWindow
		}

		for k, v := range frozen {
			updates[k] = v
		}
	}

	return updates, nil
}

// CloseSport soft-closes registration for a sport.
func (s *service) CloseSport(ctx context.Context, sportID string) (*sportModel.SportResponse, error) {
	if err := s.repo.Close(ctx, sportID); err != nil {
		return nil, err
	}

	sport, err := s.repo.GetByID(ctx, sportID)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("sport closed", "sport_id", sportID)
	return sportModel.NewSportResponse(sport), nil
}

// GetSport returns a single sport.
func (s *service) GetSport(ctx context.Context, sportID string) (*sportModel.SportResponse, error) {
	sport, err := s.repo.GetByID(ctx, sportID)
	if err != nil {
		return nil, err
	}
	return sportModel.NewSportResponse(sport), nil
}

// ListSports returns all sports, optionally filtered by category.
func (s *service) ListSports(ctx context.Context, category string) ([]sportModel.SportResponse, error) {
	sports, err := s.repo.List(ctx, category)
	if err != nil {
		return nil, err
	}

	responses := make([]sportModel.SportResponse, 0, len(sports))
	for i := range sports {
		responses = append(responses, *sportModel.NewSportResponse(&sports[i]))
	}
	return responses, nil
}
