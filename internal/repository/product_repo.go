package repository

import (
	"gorm.io/gorm"

	"threadly/internal/models"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ListBelowStock returns products at or under the stock threshold, lowest first.
func (r *ProductRepository) ListBelowStock(threshold int) ([]models.Product, error) {
	var list []models.Product
	err := r.db.Where("stock_quantity <= ?", threshold).Order("stock_quantity ASC").Find(&list).Error
	return list, err
}

func (r *ProductRepository) Count() (int64, error) {
	var c int64
	err := r.db.Model(&models.Product{}).Count(&c).Error
	return c, err
}
