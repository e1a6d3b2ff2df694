package contribution

import "gorm.io/gorm"

// Contribution is one user's entry on a weekly report. The compound unique
// index enforces at most one contribution per (report, user) pair even when
// two creations race.
type Contribution struct {
	gorm.Model
	ReportID    uint    `gorm:"uniqueIndex:idx_report_user;not null" json:"report_id"`
	UserID      uint    `gorm:"uniqueIndex:idx_report_user;not null" json:"user_id"`
	Description string  `gorm:"size:500;not null" json:"description"`
	Hours       float64 `gorm:"not null" json:"hours"`
}
