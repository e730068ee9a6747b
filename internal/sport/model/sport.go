package model

import (
	"time"

	"gorm.io/gorm"
)

// Sport represents a sporting event in the fest catalog.
// Matches the sports table schema.
type Sport struct {
	SportID              string    `gorm:"primaryKey;column:sport_id;type:varchar(255)"                       json:"sport_id"`
	Name                 string    `gorm:"column:name;type:varchar(255);not null"                             json:"name"`
	Description          string    `gorm:"column:description;type:text"                                       json:"description"`
	Category             string    `gorm:"column:category;type:varchar(255);not null;index:idx_sports_category" json:"category"`
	Fee                  int64     `gorm:"column:fee;type:bigint;not null"                                    json:"fee"`
	IsTeamEvent          bool      `gorm:"column:is_team_event;type:boolean;not null;default:false"           json:"is_team_event"`
	TeamSizeMin          int       `gorm:"column:team_size_min;type:int;not null;default:0"                   json:"team_size_min"`
	TeamSizeMax          int       `gorm:"column:team_size_max;type:int;not null;default:0"                   json:"team_size_max"`
	MaxParticipants      *int      `gorm:"column:max_participants;type:int"                                   json:"max_participants,omitempty"`
	RegistrationStart    time.Time `gorm:"column:registration_start;type:timestamptz;not null"                json:"registration_start"`
	RegistrationDeadline time.Time `gorm:"column:registration_deadline;type:timestamptz;not null"             json:"registration_deadline"`
	IsRegistrationOpen   bool      `gorm:"column:is_registration_open;type:boolean;not null;default:true"     json:"is_registration_open"`
	WaitlistEnabled      bool      `gorm:"column:waitlist_enabled;type:boolean;not null;default:false"        json:"waitlist_enabled"`
	CreatedAt            time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"          json:"-"`
	UpdatedAt            time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"          json:"-"`
}

// TableName specifies the table name for GORM.
func (Sport) TableName() string {
	return "sports"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (s *Sport) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = time.Now()
	return nil
}
