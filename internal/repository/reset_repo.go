package repository

import (
	"fmt"

	"gorm.io/gorm"

	"threadly/internal/models"
)

// wipeSequence is the fixed deletion order for a full data reset. Child
// tables go before their parents; store_settings goes last.
var wipeSequence = []struct {
	Table string
	Model interface{}
}{
	{"invoice_items", &models.InvoiceItem{}},
	{"invoices", &models.Invoice{}},
	{"products", &models.Product{}},
	{"categories", &models.Category{}},
	{"sizes", &models.Size{}},
	{"user_roles", &models.UserRole{}},
	{"store_settings", &models.StoreSettings{}},
}

type ResetRepository struct {
	db *gorm.DB
}

func NewResetRepository(db *gorm.DB) *ResetRepository {
	return &ResetRepository{db: db}
}

// WipeAll deletes every row from the wiped tables, one statement per table in
// wipeSequence order. Each delete filters on a sentinel id that matches no
// row, so all rows go. The sequence is deliberately not wrapped in a single
// transaction: a mid-sequence failure aborts the remainder and leaves the
// earlier tables empty, which the settings load path repairs on next visit.
func (r *ResetRepository) WipeAll() error {
	for _, step := range wipeSequence {
		if err := r.db.Where("id <> ?", 0).Delete(step.Model).Error; err != nil {
			return fmt.Errorf("wipe %s: %w", step.Table, err)
		}
	}
	return nil
}

// WipedTables returns the table names cleared by WipeAll, in order.
func WipedTables() []string {
	names := make([]string, 0, len(wipeSequence))
	for _, step := range wipeSequence {
		names = append(names, step.Table)
	}
	return names
}
