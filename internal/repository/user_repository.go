package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vip_gate_bot/internal/models"
)

type UserRepository interface {
	EnsureUser(id int64, username string) error
	GetByID(id int64) (*models.User, error)
	IsVIP(id int64) (bool, error)
	SetVIP(id int64, value bool) error
	CountUsers() (int64, error)
	CountVIP() (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// EnsureUser inserts the row on first contact. An existing row is left
// untouched, including the stored username.
func (r *userRepository) EnsureUser(id int64, username string) error {
	user := models.User{ID: id, Username: username, IsVIP: false}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error
}

func (r *userRepository) GetByID(id int64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "user_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// IsVIP returns false for unknown users.
func (r *userRepository) IsVIP(id int64) (bool, error) {
	user, err := r.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsVIP, nil
}

// SetVIP runs a single-row UPDATE. An unknown id is a silent no-op, the row
// is never auto-created.
func (r *userRepository) SetVIP(id int64, value bool) error {
	return r.db.Model(&models.User{}).Where("user_id = ?", id).Update("is_vip", value).Error
}

func (r *userRepository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *userRepository) CountVIP() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("is_vip = ?", true).Count(&count).Error
	return count, err
}
