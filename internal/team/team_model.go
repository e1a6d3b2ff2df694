package team

import (
	"time"

	"gorm.io/gorm"
)

const (
	TypeStudy   = "study"
	TypeProject = "project"
)

// Team is a reporting unit with exactly one leader and a member roster.
type Team struct {
	gorm.Model
	Name        string `gorm:"size:50;not null" json:"name"`
	Type        string `gorm:"size:20;not null;index" json:"type"`
	Description string `gorm:"size:500" json:"description"`
	LeaderID    uint   `gorm:"index;not null" json:"leader_id"`
}

// TeamMember is one roster entry. The compound unique index keeps a user
// from being added to the same team twice, even under concurrent adds.
type TeamMember struct {
	gorm.Model
	TeamID   uint      `gorm:"uniqueIndex:idx_team_member;not null" json:"team_id"`
	UserID   uint      `gorm:"uniqueIndex:idx_team_member;not null" json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}
