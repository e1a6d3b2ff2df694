// Package cascade owns referential integrity across the three aggregates.
// It is the only code allowed to delete another aggregate's rows: deleting a
// team takes its reports, their contributions, and every roster entry with
// it, all inside one transaction, so a crash can never leave a contribution
// pointing at a deleted report or a report at a deleted team.
package cascade

import (
	"fmt"

	"github.com/kartikp-10/weekpulse/pkg/apperr"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Coordinator removes parent entities together with their dependents.
type Coordinator interface {
	DeleteTeam(teamID uint) error
	DeleteReport(reportID uint) error
}

type coordinator struct {
	db *gorm.DB
}

// NewCoordinator creates a Coordinator backed by the given database.
func NewCoordinator(db *gorm.DB) Coordinator {
	return &coordinator{db: db}
}

// DeleteTeam removes the team, its weekly reports, every contribution under
// those reports, and all roster rows. Raw statements keep this package free
// of the aggregate model types; rows are hard-deleted so compound unique
// indexes never collide with tombstones.
func (co *coordinator) DeleteTeam(teamID uint) error {
	err := co.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			`DELETE FROM contributions WHERE report_id IN (SELECT id FROM weekly_reports WHERE team_id = ?)`,
			teamID,
		).Error; err != nil {
			return fmt.Errorf("delete contributions for team %d: %w", teamID, err)
		}

		if err := tx.Exec(`DELETE FROM weekly_reports WHERE team_id = ?`, teamID).Error; err != nil {
			return fmt.Errorf("delete reports for team %d: %w", teamID, err)
		}

		if err := tx.Exec(`DELETE FROM team_members WHERE team_id = ?`, teamID).Error; err != nil {
			return fmt.Errorf("delete memberships for team %d: %w", teamID, err)
		}

		res := tx.Exec(`DELETE FROM teams WHERE id = ?`, teamID)
		if res.Error != nil {
			return fmt.Errorf("delete team %d: %w", teamID, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.ErrNotFound
		}
		return nil
	})

	if err != nil {
		if !apperr.Is(err, apperr.ErrNotFound) {
			logrus.WithFields(logrus.Fields{"team_id": teamID}).WithError(err).Error("team cascade delete rolled back")
		}
		return err
	}

	logrus.WithFields(logrus.Fields{"team_id": teamID}).Info("team deleted with dependents")
	return nil
}

// DeleteReport removes the report and every contribution referencing it.
func (co *coordinator) DeleteReport(reportID uint) error {
	err := co.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM contributions WHERE report_id = ?`, reportID).Error; err != nil {
			return fmt.Errorf("delete contributions for report %d: %w", reportID, err)
		}

		res := tx.Exec(`DELETE FROM weekly_reports WHERE id = ?`, reportID)
		if res.Error != nil {
			return fmt.Errorf("delete report %d: %w", reportID, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.ErrNotFound
		}
		return nil
	})

	if err != nil {
		if !apperr.Is(err, apperr.ErrNotFound) {
			logrus.WithFields(logrus.Fields{"report_id": reportID}).WithError(err).Error("report cascade delete rolled back")
		}
		return err
	}

	logrus.WithFields(logrus.Fields{"report_id": reportID}).Info("report deleted with dependents")
	return nil
}
