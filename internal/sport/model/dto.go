// Package model provides data transfer objects and domain models for the sport module.
package model

import "time"

// CreateSportRequest represents the request to create a sport.
type CreateSportRequest struct {
	SportID              string    `json:"sport_id"              binding:"required"`
	Name                 string    `json:"name"                  binding:"required"`
	Description          string    `json:"description"`
	Category             string    `json:"category"              binding:"required"`
	Fee                  int64     `json:"fee"`
	IsTeamEvent          bool      `json:"is_team_event"`
	TeamSizeMin          int       `json:"team_size_min"`
	TeamSizeMax          int       `json:"team_size_max"`
	MaxParticipants      *int      `json:"max_participants"`
	RegistrationStart    time.Time `json:"registration_start"    binding:"required"`
	RegistrationDeadline time.Time `json:"registration_deadline" binding:"required"`
	WaitlistEnabled      bool      `json:"waitlist_enabled"`
}

// UpdateSportRequest represents the request to update a sport.
// Nil fields are left unchanged.
type UpdateSportRequest struct {
	Name                 *string    `json:"name"`
	Description          *string    `json:"description"`
	Category             *string    `json:"category"`
	Fee                  *int64     `json:"fee"`
	MaxParticipants      *int       `json:"max_participants"`
	RegistrationStart    *time.Time `json:"registration_start"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
	WaitlistEnabled      *bool      `json:"waitlist_enabled"`
}

// SportResponse represents a sport returned to the caller.
type SportResponse struct {
	SportID              string `json:"sport_id"`
	Name                 string `json:"name"`
	Description          string `json:"description,omitempty"`
	Category             string `json:"category"`
	Fee                  int64  `json:"fee"`
	IsTeamEvent          bool   `json:"is_team_event"`
	TeamSizeMin          int    `json:"team_size_min,omitempty"`
	TeamSizeMax          int    `json:"team_size_max,omitempty"`
	MaxParticipants      *int   `json:"max_participants,omitempty"`
	RegistrationStart    string `json:"registration_start"`
	RegistrationDeadline string `json:"registration_deadline"`
	IsRegistrationOpen   bool   `json:"is_registration_open"`
	WaitlistEnabled      bool   `json:"waitlist_enabled"`
}

// NewSportResponse builds a SportResponse from a Sport entity.
func NewSportResponse(s *Sport) *SportResponse {
	return &SportResponse{
		SportID:              s.SportID,
		Name:                 s.Name,
		Description:          s.Description,
		Category:             s.Category,
		Fee:                  s.Fee,
		IsTeamEvent:          s.IsTeamEvent,
		TeamSizeMin:          s.TeamSizeMin,
		TeamSizeMax:          s.TeamSizeMax,
		MaxParticipants:      s.MaxParticipants,
		RegistrationStart:    s.RegistrationStart.Format(time.RFC3339),
		RegistrationDeadline: s.RegistrationDeadline.Format(time.RFC3339),
		IsRegistrationOpen:   s.IsRegistrationOpen,
		WaitlistEnabled:      s.WaitlistEnabled,
	}
}
