package models

import "time"

// StoreSettings is the singleton configuration row for the store. Exactly one
// row exists in normal operation; it is created with defaults on first load
// and recreated by the danger-zone reset.
type StoreSettings struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	StoreName           string    `gorm:"size:255;not null" json:"store_name"`
	CurrencySymbol      string    `gorm:"size:8" json:"currency_symbol"`
	TaxPercentage       float64   `gorm:"type:decimal(5,2);default:18" json:"tax_percentage"`
	LowStockThreshold   int       `gorm:"default:10" json:"low_stock_threshold"`
	Email               *string   `gorm:"size:255" json:"email"`
	Phone               *string   `gorm:"size:32" json:"phone"`
	Address             *string   `gorm:"size:512" json:"address"`
	WhatsappChannelName *string   `gorm:"size:255" json:"whatsapp_channel_name"`
	InstagramPageID     *string   `gorm:"size:255" json:"instagram_page_id"`
	WhatsappTagline     string    `gorm:"size:255;default:Join our WhatsApp group" json:"whatsapp_tagline"`
	InstagramTagline    string    `gorm:"size:255;default:Follow us on Instagram" json:"instagram_tagline"`
	LogoURL             *string   `gorm:"size:512" json:"logo_url"`
	WhatsappQRURL       *string   `gorm:"size:512" json:"whatsapp_qr_url"`
	InstagramQRURL      *string   `gorm:"size:512" json:"instagram_qr_url"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (StoreSettings) TableName() string { return "store_settings" }
