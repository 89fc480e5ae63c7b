package repository

import (
	"errors"

	"gorm.io/gorm"

	"threadly/internal/domain"
	"threadly/internal/models"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// First returns the singleton settings row.
func (r *SettingRepository) First() (*models.StoreSettings, error) {
	var s models.StoreSettings
	if err := r.db.First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// GetOrCreate returns the settings row, inserting the full default row when
// none exists. Safe to call repeatedly; a reset that dies between wipe and
// reseed is healed by the next call.
func (r *SettingRepository) GetOrCreate() (*models.StoreSettings, error) {
	s, err := r.First()
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	def := DefaultStoreSettings()
	if err := r.db.Create(def).Error; err != nil {
		return nil, err
	}
	return def, nil
}

func (r *SettingRepository) Create(s *models.StoreSettings) error {
	return r.db.Create(s).Error
}

// UpdateByID applies the given column set to one row. Map values of nil
// clear the column.
func (r *SettingRepository) UpdateByID(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.StoreSettings{}).Where("id = ?", id).Updates(fields).Error
}

// DefaultStoreSettings is the row created on first load. Unlike the
// post-reset reseed, it sets low_stock_threshold explicitly.
func DefaultStoreSettings() *models.StoreSettings {
	return &models.StoreSettings{
		StoreName:         domain.DefaultStoreName,
		CurrencySymbol:    domain.DefaultCurrencySymbol,
		TaxPercentage:     domain.DefaultTaxPercentage,
		LowStockThreshold: domain.DefaultLowStockThreshold,
		WhatsappTagline:   domain.DefaultWhatsappTagline,
		InstagramTagline:  domain.DefaultInstagramTagline,
	}
}
