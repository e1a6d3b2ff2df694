package report

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusOnHold     = "on_hold"
)

// WeeklyReport is one week's report for a team. WeekNumber is assigned
// server-side as max+1 per team and never changes; the compound unique index
// closes the race between two concurrent creations for the same team.
type WeeklyReport struct {
	gorm.Model
	TeamID         uint      `gorm:"uniqueIndex:idx_team_week;not null" json:"team_id"`
	WeekNumber     int       `gorm:"uniqueIndex:idx_team_week;not null" json:"week_number"`
	StartDate      time.Time `gorm:"not null" json:"start_date"`
	EndDate        time.Time `gorm:"not null" json:"end_date"`
	Status         string    `gorm:"size:20;not null;default:'not_started'" json:"status"`
	Goals          string    `gorm:"size:1000;not null" json:"goals"`
	Progress       string    `gorm:"size:2000" json:"progress"`
	Challenges     string    `gorm:"size:2000" json:"challenges"`
	NextWeekPlan   string    `gorm:"size:2000" json:"next_week_plan"`
	CompletionRate int       `gorm:"not null;default:0" json:"completion_rate"`
	SubmittedByID  uint      `gorm:"index;not null" json:"submitted_by_id"`
}
