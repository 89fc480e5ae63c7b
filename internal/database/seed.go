package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"threadly/config"
	"threadly/internal/domain"
	"threadly/internal/models"
	"threadly/internal/repository"
)

// SeedAdmin creates the initial admin account and role assignment if no
// admin role exists yet. The reset flow wipes user_roles but not users, so
// this also re-grants admin to an existing account after a reset restart.
func SeedAdmin(db *gorm.DB, cfg *config.AdminConfig) error {
	var count int64
	if err := db.Model(&models.UserRole{}).Where("role = ?", domain.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var admin models.User
	err := db.Where("email = ?", cfg.Email).First(&admin).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin = models.User{Email: cfg.Email, PasswordHash: string(hash)}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	}
	if err := db.Create(&models.UserRole{UserID: admin.ID, Role: domain.RoleAdmin}).Error; err != nil {
		return err
	}
	log.Println("seeded admin:", cfg.Email)
	return nil
}

// SeedSizes inserts the default garment sizes when the table is empty.
func SeedSizes(db *gorm.DB) error {
	sizeRepo := repository.NewSizeRepository(db)
	count, err := sizeRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if err := sizeRepo.CreateDefaults(); err != nil {
		return err
	}
	log.Println("seeded default sizes")
	return nil
}
