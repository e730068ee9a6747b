package model

import (
	"time"

	"gorm.io/gorm"
)

// Registration represents a user's (or team's) claim on a slot in a sport.
// Matches the registrations table schema.
type Registration struct {
	ID                 int64     `gorm:"primaryKey;column:id;type:bigserial"                                                        json:"id"`
	RegistrationNumber string    `gorm:"column:registration_number;type:varchar(32);uniqueIndex:idx_registrations_number"           json:"registration_number"`
	UserID             string    `gorm:"column:user_id;type:varchar(255);not null;index:idx_registrations_user_id"                  json:"user_id"`
	SportID            string    `gorm:"column:sport_id;type:varchar(255);not null;index:idx_registrations_sport_id"                json:"sport_id"`
	Status             Status    `gorm:"column:status;type:varchar(32);not null;index:idx_registrations_sport_status,composite:sport_id" json:"status"`
	TeamName           string    `gorm:"column:team_name;type:varchar(255)"                                                         json:"team_name,omitempty"`
	AmountPaid         int64     `gorm:"column:amount_paid;type:bigint;not null;default:0"                                          json:"amount_paid"`
	CreatedAt          time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"                                  json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"                                  json:"-"`
}

// TableName specifies the table name for GORM.
func (Registration) TableName() string {
	return "registrations"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (r *Registration) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return nil
}

// TeamMember represents one member of a team registration.
// The captain is always position 0. Matches the team_members table schema.
type TeamMember struct {
	ID             int64  `gorm:"primaryKey;column:id;type:bigserial"                                              json:"id"`
	RegistrationID int64  `gorm:"column:registration_id;type:bigint;not null;index:idx_team_members_registration"  json:"registration_id"`
	Position       int    `gorm:"column:position;type:int;not null"                                                json:"position"`
	Name           string `gorm:"column:name;type:varchar(255);not null"                                           json:"name"`
	Email          string `gorm:"column:email;type:varchar(255)"                                                   json:"email,omitempty"`
	Phone          string `gorm:"column:phone;type:varchar(32)"                                                    json:"phone,omitempty"`
	IsCaptain      bool   `gorm:"column:is_captain;type:boolean;not null;default:false"                            json:"is_captain"`
}

// TableName specifies the table name for GORM.
func (TeamMember) TableName() string {
	return "team_members"
}
