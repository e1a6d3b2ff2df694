package contribution

import (
	"errors"

	"gorm.io/gorm"
)

// ContributionRepository defines the interface for contribution data operations.
type ContributionRepository interface {
	CreateContribution(c *Contribution) error
	GetContributionByID(id uint) (*Contribution, error)
	GetContributionsByReport(reportID uint) ([]Contribution, error)
	GetContributionForUser(reportID, userID uint) (*Contribution, error)
	UpdateContribution(c *Contribution) error
	DeleteContribution(id uint) error
}

type contributionRepository struct {
	db *gorm.DB
}

// NewContributionRepository creates a new instance of ContributionRepository.
func NewContributionRepository(db *gorm.DB) ContributionRepository {
	return &contributionRepository{db: db}
}

func (r *contributionRepository) CreateContribution(c *Contribution) error {
	return r.db.Create(c).Error
}

func (r *contributionRepository) GetContributionByID(id uint) (*Contribution, error) {
	var c Contribution
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *contributionRepository) GetContributionsByReport(reportID uint) ([]Contribution, error) {
	var contributions []Contribution
	if err := r.db.Where("report_id = ?", reportID).Order("created_at asc").Find(&contributions).Error; err != nil {
		return nil, err
	}
	return contributions, nil
}

func (r *contributionRepository) GetContributionForUser(reportID, userID uint) (*Contribution, error) {
	var c Contribution
	if err := r.db.Where("report_id = ? AND user_id = ?", reportID, userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *contributionRepository) UpdateContribution(c *Contribution) error {
	return r.db.Save(c).Error
}

// DeleteContribution hard-deletes so the (report_id, user_id) unique index
// does not block a later re-add.
func (r *contributionRepository) DeleteContribution(id uint) error {
	return r.db.Unscoped().Delete(&Contribution{}, id).Error
}
