package services

import (
	"testing"

	"github.com/kendall-kelly/kitchenpos-api/models"
	"github.com/kendall-kelly/kitchenpos-api/repositories"
	"github.com/kendall-kelly/kitchenpos-api/tests/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) (*gorm.DB, *repositories.GormStore) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return db, repositories.NewGormStore(db)
}

func price(value int64) *decimal.Decimal {
	d := decimal.NewFromInt(value)
	return &d
}

func createOrderTable(t *testing.T, db *gorm.DB, guests int, empty bool) models.OrderTable {
	t.Helper()
	table := models.OrderTable{NumberOfGuests: guests, Empty: empty}
	require.NoError(t, db.Create(&table).Error)
	return table
}

func createMenuGroup(t *testing.T, db *gorm.DB, name string) models.MenuGroup {
	t.Helper()
	group := models.MenuGroup{Name: name}
	require.NoError(t, db.Create(&group).Error)
	return group
}

func createProduct(t *testing.T, db *gorm.DB, name string, amount int64) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: decimal.NewFromInt(amount)}
	require.NoError(t, db.Create(&product).Error)
	return product
}

// createMenu stores a one-product menu directly, bypassing MenuService
func createMenu(t *testing.T, db *gorm.DB, name string, amount int64) models.Menu {
	t.Helper()
	group := createMenuGroup(t, db, "One chicken")
	product := createProduct(t, db, name, amount)
	menu := models.Menu{Name: name, Price: decimal.NewFromInt(amount), MenuGroupID: group.ID}
	require.NoError(t, db.Create(&menu).Error)
	require.NoError(t, db.Create(&models.MenuProduct{MenuID: menu.ID, ProductID: product.ID, Quantity: 1}).Error)
	return menu
}

func requireValidationCode(t *testing.T, err error, code string) {
	t.Helper()
	ve, ok := models.AsValidationError(err)
	require.True(t, ok, "expected a ValidationError, got %v", err)
	require.Equal(t, code, ve.Code)
}
