package repository

import (
	"gorm.io/gorm"

	"threadly/internal/domain"
	"threadly/internal/models"
)

type SizeRepository struct {
	db *gorm.DB
}

func NewSizeRepository(db *gorm.DB) *SizeRepository {
	return &SizeRepository{db: db}
}

func (r *SizeRepository) Count() (int64, error) {
	var c int64
	err := r.db.Model(&models.Size{}).Count(&c).Error
	return c, err
}

func (r *SizeRepository) List() ([]models.Size, error) {
	var list []models.Size
	err := r.db.Order("sort_order ASC").Find(&list).Error
	return list, err
}

// CreateDefaults inserts the seven seed sizes XS..XXXL with sort_order 1..7.
func (r *SizeRepository) CreateDefaults() error {
	sizes := make([]models.Size, 0, len(domain.DefaultSizeNames))
	for i, name := range domain.DefaultSizeNames {
		sizes = append(sizes, models.Size{Name: name, SortOrder: i + 1})
	}
	return r.db.Create(&sizes).Error
}
