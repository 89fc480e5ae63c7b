package models

import "time"

type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	SKU           string    `gorm:"uniqueIndex;size:64" json:"sku"`
	CategoryID    *uint     `gorm:"index" json:"category_id"`
	SizeID        *uint     `gorm:"index" json:"size_id"`
	Price         float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	StockQuantity int       `gorm:"default:0" json:"stock_quantity"`
	ImageURL      *string   `gorm:"size:512" json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Size     *Size     `gorm:"foreignKey:SizeID" json:"size,omitempty"`
}

func (Product) TableName() string { return "products" }

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:128;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Category) TableName() string { return "categories" }

// Size is a garment size label with an explicit display order.
type Size struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:16;not null" json:"name"`
	SortOrder int       `gorm:"not null" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Size) TableName() string { return "sizes" }
