package team

import "gorm.io/gorm"

// UserDirectory is the narrow user-lookup surface this package needs. It is
// an interface so controller tests can substitute an in-memory fake.
type UserDirectory interface {
	UserExists(id uint) (bool, error)
}

type gormUserDirectory struct {
	db *gorm.DB
}

// NewUserDirectory creates a UserDirectory backed by the users table.
func NewUserDirectory(db *gorm.DB) UserDirectory {
	return &gormUserDirectory{db: db}
}

func (d *gormUserDirectory) UserExists(id uint) (bool, error) {
	var count int64
	err := d.db.Table("users").
		Where("id = ? AND deleted_at IS NULL", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
