package report

import (
	"errors"

	"gorm.io/gorm"
)

// ReportRepository defines the interface for weekly report data operations.
type ReportRepository interface {
	CreateReport(r *WeeklyReport) error
	GetReportByID(id uint) (*WeeklyReport, error)
	GetReportsByTeam(teamID uint) ([]WeeklyReport, error)
	GetReportsByTeams(teamIDs []uint) ([]WeeklyReport, error)
	GetAllReports() ([]WeeklyReport, error)
	MaxWeekNumber(teamID uint) (int, error)
	UpdateReport(r *WeeklyReport) error
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new instance of ReportRepository.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CreateReport(rep *WeeklyReport) error {
	return r.db.Create(rep).Error
}

func (r *reportRepository) GetReportByID(id uint) (*WeeklyReport, error) {
	var rep WeeklyReport
	if err := r.db.First(&rep, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rep, nil
}

func (r *reportRepository) GetReportsByTeam(teamID uint) ([]WeeklyReport, error) {
	var reports []WeeklyReport
	if err := r.db.Where("team_id = ?", teamID).Order("week_number asc").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) GetReportsByTeams(teamIDs []uint) ([]WeeklyReport, error) {
	if len(teamIDs) == 0 {
		return []WeeklyReport{}, nil
	}
	var reports []WeeklyReport
	if err := r.db.Where("team_id IN ?", teamIDs).Order("team_id asc, week_number asc").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) GetAllReports() ([]WeeklyReport, error) {
	var reports []WeeklyReport
	if err := r.db.Order("team_id asc, week_number asc").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// MaxWeekNumber returns the highest assigned week number for the team, or 0
// when the team has no reports yet.
func (r *reportRepository) MaxWeekNumber(teamID uint) (int, error) {
	var max int
	err := r.db.Model(&WeeklyReport{}).
		Where("team_id = ?", teamID).
		Select("COALESCE(MAX(week_number), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}

func (r *reportRepository) UpdateReport(rep *WeeklyReport) error {
	return r.db.Save(rep).Error
}
