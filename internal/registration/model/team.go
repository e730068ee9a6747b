package model

import "strings"

// TeamMemberPayload is one candidate member in a team payload.
type TeamMemberPayload struct {
	Name      string `json:"name"      binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IsCaptain bool   `json:"is_captain"`
}

// TeamPayload is the team details supplied at registration or team edit.
type TeamPayload struct {
	TeamName string              `json:"team_name"`
	Members  []TeamMemberPayload `json:"members"`
}

// ValidateTeam checks a candidate member list against a sport's composition
// constraints. It is pure: the same inputs always produce the same verdict,
// at initial registration and at every subsequent edit.
//
// For non-team sports any non-empty member list is rejected. For team
// sports the list length must lie in [sizeMin, sizeMax], every member must
// have a name, and exactly one captain must be present at position 0.
func ValidateTeam(isTeamEvent bool, sizeMin, sizeMax int, members []TeamMemberPayload) error {
	if !isTeamEvent {
		if len(members) > 0 {
			return ErrNotATeamEvent
		}
		return nil
	}

	if len(members) < sizeMin {
		return ErrTooFewMembers
	}
	if len(members) > sizeMax {
		return ErrTooManyMembers
	}

	captains := 0
	for _, m := range members {
		if strings.TrimSpace(m.Name) == "" {
			return ErrMemberNameMissing
		}
		if m.IsCaptain {
			captains++
		}
	}
	if captains == 0 {
		return ErrNoCaptain
	}
	if captains > 1 {
		return ErrDuplicateCaptain
	}
	if !members[0].IsCaptain {
		return ErrNoCaptain
	}

	return nil
}
