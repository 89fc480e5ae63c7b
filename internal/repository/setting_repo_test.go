package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadly/internal/domain"
)

func settingsRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "store_name", "currency_symbol", "tax_percentage",
		"low_stock_threshold", "whatsapp_tagline", "instagram_tagline",
	})
}

func TestSettingRepository_GetOrCreate_ReturnsExistingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSettingRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `store_settings`").
		WillReturnRows(settingsRows().AddRow(
			1, "Silk & Stitch", "$", 12.5, 5,
			domain.DefaultWhatsappTagline, domain.DefaultInstagramTagline,
		))

	s, err := repo.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, uint(1), s.ID)
	assert.Equal(t, "Silk & Stitch", s.StoreName)
	assert.Equal(t, 12.5, s.TaxPercentage)
	assert.Equal(t, 5, s.LowStockThreshold)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingRepository_GetOrCreate_CreatesDefaultsWhenEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSettingRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `store_settings`").
		WillReturnRows(settingsRows())
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `store_settings`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	s, err := repo.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, uint(1), s.ID)
	assert.Equal(t, domain.DefaultStoreName, s.StoreName)
	assert.Equal(t, domain.DefaultCurrencySymbol, s.CurrencySymbol)
	assert.Equal(t, float64(domain.DefaultTaxPercentage), s.TaxPercentage)
	assert.Equal(t, domain.DefaultLowStockThreshold, s.LowStockThreshold)
	assert.Equal(t, domain.DefaultWhatsappTagline, s.WhatsappTagline)
	assert.Equal(t, domain.DefaultInstagramTagline, s.InstagramTagline)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingRepository_GetOrCreate_IsIdempotentAfterFailedReset(t *testing.T) {
	// A reset that dies between wipe and reseed leaves no settings row; the
	// next load must recreate the default one.
	db, mock := newMockDB(t)
	repo := NewSettingRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `store_settings`").
		WillReturnRows(settingsRows())
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `store_settings`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	s, err := repo.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStoreName, s.StoreName)

	// Subsequent load finds the recreated row and does not insert again.
	mock.ExpectQuery("SELECT \\* FROM `store_settings`").
		WillReturnRows(settingsRows().AddRow(
			7, domain.DefaultStoreName, domain.DefaultCurrencySymbol, 18.0, 10,
			domain.DefaultWhatsappTagline, domain.DefaultInstagramTagline,
		))
	again, err := repo.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, uint(7), again.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingRepository_UpdateByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSettingRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `store_settings` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateByID(1, map[string]interface{}{
		"store_name":     "New Name",
		"tax_percentage": 0.0,
		"email":          nil,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
