// Package model provides data transfer objects and domain models for the registration module.
package model

import "time"

// RegisterRequest represents the request to register for a sport.
type RegisterRequest struct {
	SportID string       `json:"sport_id" binding:"required"`
	Team    *TeamPayload `json:"team"`
}

// RegistrationResponse represents a registration returned to the caller.
type RegistrationResponse struct {
	RegistrationID     int64               `json:"registration_id"`
	RegistrationNumber string              `json:"registration_number"`
	SportID            string              `json:"sport_id"`
	UserID             string              `json:"user_id"`
	Status             Status              `json:"status"`
	TeamName           string              `json:"team_name,omitempty"`
	Members            []TeamMemberPayload `json:"members,omitempty"`
	AmountPaid         int64               `json:"amount_paid"`
	CreatedAt          string              `json:"created_at"`
}

// NewRegistrationResponse builds a RegistrationResponse from a Registration
// and its member rows.
func NewRegistrationResponse(reg *Registration, members []TeamMember) *RegistrationResponse {
	resp := &RegistrationResponse{
		RegistrationID:     reg.ID,
		RegistrationNumber: reg.RegistrationNumber,
		SportID:            reg.SportID,
		UserID:             reg.UserID,
		Status:             reg.Status,
		TeamName:           reg.TeamName,
		AmountPaid:         reg.AmountPaid,
		CreatedAt:          reg.CreatedAt.Format(time.RFC3339),
	}
	for _, m := range members {
		resp.Members = append(resp.Members, TeamMemberPayload{
			Name:      m.Name,
			Email:     m.Email,
			Phone:     m.Phone,
			IsCaptain: m.IsCaptain,
		})
	}
	return resp
}
