package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeRepository_CreateDefaults(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSizeRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sizes`").
		WillReturnResult(sqlmock.NewResult(1, 7))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateDefaults())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_ListBelowStock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "price", "stock_quantity"}).
		AddRow(3, "Linen Kurta", 1299.0, 0).
		AddRow(1, "Cotton Tee", 499.0, 4)
	mock.ExpectQuery("SELECT \\* FROM `products` WHERE stock_quantity <= \\?").
		WithArgs(10).
		WillReturnRows(rows)

	list, err := repo.ListBelowStock(10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Linen Kurta", list[0].Name)
	assert.Equal(t, 0, list[0].StockQuantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}
