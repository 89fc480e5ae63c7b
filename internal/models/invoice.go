package models

import "time"

type Invoice struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	InvoiceNumber string    `gorm:"uniqueIndex;size:32;not null" json:"invoice_number"`
	CustomerName  string    `gorm:"size:255" json:"customer_name"`
	CustomerPhone string    `gorm:"size:32" json:"customer_phone"`
	Subtotal      float64   `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Tax           float64   `gorm:"type:decimal(10,2);default:0" json:"tax"`
	Total         float64   `gorm:"type:decimal(10,2);not null" json:"total"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

func (Invoice) TableName() string { return "invoices" }

type InvoiceItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	InvoiceID   uint    `gorm:"index;not null" json:"invoice_id"`
	ProductID   *uint   `gorm:"index" json:"product_id"`
	ProductName string  `gorm:"size:255;not null" json:"product_name"`
	Quantity    int     `gorm:"default:1" json:"quantity"`
	UnitPrice   float64 `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TotalPrice  float64 `gorm:"type:decimal(10,2);not null" json:"total_price"`
}

func (InvoiceItem) TableName() string { return "invoice_items" }
