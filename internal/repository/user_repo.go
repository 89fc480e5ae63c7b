package repository

import (
	"gorm.io/gorm"

	"threadly/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// HasRole checks the user_roles table directly. The reset flow wipes that
// table, so role checks must observe it live rather than trusting a claim
// minted before the wipe.
func (r *UserRepository) HasRole(userID uint, role string) (bool, error) {
	var c int64
	err := r.db.Model(&models.UserRole{}).Where("user_id = ? AND role = ?", userID, role).Count(&c).Error
	return c > 0, err
}

func (r *UserRepository) AssignRole(userID uint, role string) error {
	return r.db.Create(&models.UserRole{UserID: userID, Role: role}).Error
}
