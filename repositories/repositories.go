// Package repositories defines the storage ports used by the application
// services together with their gorm implementations.
package repositories

import (
	"context"
	"errors"

	"github.com/kendall-kelly/kitchenpos-api/models"
)

// ErrNotFound is returned by FindByID lookups that match no row
var ErrNotFound = errors.New("record not found")

// ProductRepository stores products
type ProductRepository interface {
	Save(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
}

// MenuGroupRepository stores menu groups
type MenuGroupRepository interface {
	Save(ctx context.Context, group *models.MenuGroup) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
	FindAll(ctx context.Context) ([]models.MenuGroup, error)
}

// MenuRepository stores menus
type MenuRepository interface {
	Save(ctx context.Context, menu *models.Menu) error
	FindByID(ctx context.Context, id uint) (*models.Menu, error)
	FindAll(ctx context.Context) ([]models.Menu, error)
	CountByIDs(ctx context.Context, ids []uint) (int64, error)
}

// MenuProductRepository stores the product line entries of menus
type MenuProductRepository interface {
	Save(ctx context.Context, menuProduct *models.MenuProduct) error
	FindAllByMenuID(ctx context.Context, menuID uint) ([]models.MenuProduct, error)
}

// OrderRepository stores orders
type OrderRepository interface {
	Save(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	ExistsByOrderTableIDsAndStatusIn(ctx context.Context, tableIDs []uint, statuses []models.OrderStatus) (bool, error)
}

// OrderLineItemRepository stores the menu line entries of orders
type OrderLineItemRepository interface {
	Save(ctx context.Context, item *models.OrderLineItem) error
	FindAllByOrderID(ctx context.Context, orderID uint) ([]models.OrderLineItem, error)
}

// OrderTableRepository stores order tables
type OrderTableRepository interface {
	Save(ctx context.Context, table *models.OrderTable) error
	FindByID(ctx context.Context, id uint) (*models.OrderTable, error)
	FindAll(ctx context.Context) ([]models.OrderTable, error)
	FindAllByIDs(ctx context.Context, ids []uint) ([]models.OrderTable, error)
	FindAllByTableGroupID(ctx context.Context, tableGroupID uint) ([]models.OrderTable, error)
}

// TableGroupRepository stores table groups
type TableGroupRepository interface {
	Save(ctx context.Context, group *models.TableGroup) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

// Store hands out repositories that share one database session.
// Transaction runs fn against a Store bound to a single transaction,
// committing when fn returns nil and rolling back otherwise.
type Store interface {
	Products() ProductRepository
	MenuGroups() MenuGroupRepository
	Menus() MenuRepository
	MenuProducts() MenuProductRepository
	Orders() OrderRepository
	OrderLineItems() OrderLineItemRepository
	OrderTables() OrderTableRepository
	TableGroups() TableGroupRepository
	Transaction(ctx context.Context, fn func(tx Store) error) error
}
