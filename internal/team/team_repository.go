package team

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// TeamRepository defines the interface for team data operations.
type TeamRepository interface {
	CreateTeamWithLeader(t *Team) error
	GetTeamByID(id uint) (*Team, error)
	GetAllTeams() ([]Team, error)
	GetTeamsForUser(userID uint) ([]Team, error)
	UpdateTeam(t *Team) error

	AddTeamMember(teamID, userID uint) error
	RemoveTeamMember(teamID, userID uint) error
	GetTeamMember(teamID, userID uint) (*TeamMember, error)
	GetTeamMembers(teamID uint) ([]TeamMember, error)
	MemberIDs(teamID uint) ([]uint, error)
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

// CreateTeamWithLeader creates the team and its leader's roster entry in one
// transaction so a team never exists without its leader on the roster.
func (r *teamRepository) CreateTeamWithLeader(t *Team) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		member := TeamMember{
			TeamID:   t.ID,
			UserID:   t.LeaderID,
			JoinedAt: time.Now(),
		}
		return tx.Create(&member).Error
	})
}

func (r *teamRepository) GetTeamByID(id uint) (*Team, error) {
	var t Team
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *teamRepository) GetAllTeams() ([]Team, error) {
	var teams []Team
	if err := r.db.Order("created_at desc").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) GetTeamsForUser(userID uint) ([]Team, error) {
	var teams []Team
	err := r.db.Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ? AND team_members.deleted_at IS NULL", userID).
		Order("teams.created_at DESC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) UpdateTeam(t *Team) error {
	return r.db.Save(t).Error
}

func (r *teamRepository) AddTeamMember(teamID, userID uint) error {
	member := TeamMember{
		TeamID:   teamID,
		UserID:   userID,
		JoinedAt: time.Now(),
	}
	return r.db.Create(&member).Error
}

// RemoveTeamMember deletes the roster row outright so the compound unique
// index stays truthful and the user can be re-added later.
func (r *teamRepository) RemoveTeamMember(teamID, userID uint) error {
	return r.db.Unscoped().
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&TeamMember{}).Error
}

func (r *teamRepository) GetTeamMember(teamID, userID uint) (*TeamMember, error) {
	var member TeamMember
	if err := r.db.Where("team_id = ? AND user_id = ?", teamID, userID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *teamRepository) GetTeamMembers(teamID uint) ([]TeamMember, error) {
	var members []TeamMember
	if err := r.db.Where("team_id = ?", teamID).Order("joined_at asc").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *teamRepository) MemberIDs(teamID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&TeamMember{}).
		Where("team_id = ?", teamID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
