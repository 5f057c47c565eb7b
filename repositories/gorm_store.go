package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/kendall-kelly/kitchenpos-api/models"
	"gorm.io/gorm"
)

// GormStore implements Store on top of a gorm session
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps db in a Store
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Products() ProductRepository             { return &productRepository{db: s.db} }
func (s *GormStore) MenuGroups() MenuGroupRepository         { return &menuGroupRepository{db: s.db} }
func (s *GormStore) Menus() MenuRepository                   { return &menuRepository{db: s.db} }
func (s *GormStore) MenuProducts() MenuProductRepository     { return &menuProductRepository{db: s.db} }
func (s *GormStore) Orders() OrderRepository                 { return &orderRepository{db: s.db} }
func (s *GormStore) OrderLineItems() OrderLineItemRepository { return &orderLineItemRepository{db: s.db} }
func (s *GormStore) OrderTables() OrderTableRepository       { return &orderTableRepository{db: s.db} }
func (s *GormStore) TableGroups() TableGroupRepository       { return &tableGroupRepository{db: s.db} }

// Transaction runs fn inside a database transaction
func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormStore(tx))
	})
}

// findByID loads one row into dest, translating gorm's not-found error
func findByID(ctx context.Context, db *gorm.DB, dest interface{}, id uint) error {
	err := db.WithContext(ctx).First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func existsByID(ctx context.Context, db *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func save(ctx context.Context, db *gorm.DB, value interface{}, what string) error {
	if err := db.WithContext(ctx).Save(value).Error; err != nil {
		return fmt.Errorf("failed to save %s: %w", what, err)
	}
	return nil
}

type productRepository struct{ db *gorm.DB }

func (r *productRepository) Save(ctx context.Context, product *models.Product) error {
	return save(ctx, r.db, product, "product")
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := findByID(ctx, r.db, &product, id); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error
	return products, err
}

type menuGroupRepository struct{ db *gorm.DB }

func (r *menuGroupRepository) Save(ctx context.Context, group *models.MenuGroup) error {
	return save(ctx, r.db, group, "menu group")
}

func (r *menuGroupRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return existsByID(ctx, r.db, &models.MenuGroup{}, id)
}

func (r *menuGroupRepository) FindAll(ctx context.Context) ([]models.MenuGroup, error) {
	var groups []models.MenuGroup
	err := r.db.WithContext(ctx).Order("id ASC").Find(&groups).Error
	return groups, err
}

type menuRepository struct{ db *gorm.DB }

func (r *menuRepository) Save(ctx context.Context, menu *models.Menu) error {
	return save(ctx, r.db, menu, "menu")
}

func (r *menuRepository) FindByID(ctx context.Context, id uint) (*models.Menu, error) {
	var menu models.Menu
	if err := findByID(ctx, r.db, &menu, id); err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepository) FindAll(ctx context.Context) ([]models.Menu, error) {
	var menus []models.Menu
	err := r.db.WithContext(ctx).Order("id ASC").Find(&menus).Error
	return menus, err
}

func (r *menuRepository) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Menu{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

type menuProductRepository struct{ db *gorm.DB }

func (r *menuProductRepository) Save(ctx context.Context, menuProduct *models.MenuProduct) error {
	return save(ctx, r.db, menuProduct, "menu product")
}

func (r *menuProductRepository) FindAllByMenuID(ctx context.Context, menuID uint) ([]models.MenuProduct, error) {
	var menuProducts []models.MenuProduct
	err := r.db.WithContext(ctx).Where("menu_id = ?", menuID).Order("id ASC").Find(&menuProducts).Error
	return menuProducts, err
}

type orderRepository struct{ db *gorm.DB }

func (r *orderRepository) Save(ctx context.Context, order *models.Order) error {
	return save(ctx, r.db, order, "order")
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := findByID(ctx, r.db, &order, id); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).Order("id ASC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ExistsByOrderTableIDsAndStatusIn(ctx context.Context, tableIDs []uint, statuses []models.OrderStatus) (bool, error) {
	if len(tableIDs) == 0 || len(statuses) == 0 {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("order_table_id IN ? AND order_status IN ?", tableIDs, statuses).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type orderLineItemRepository struct{ db *gorm.DB }

func (r *orderLineItemRepository) Save(ctx context.Context, item *models.OrderLineItem) error {
	return save(ctx, r.db, item, "order line item")
}

func (r *orderLineItemRepository) FindAllByOrderID(ctx context.Context, orderID uint) ([]models.OrderLineItem, error) {
	var items []models.OrderLineItem
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error
	return items, err
}

type orderTableRepository struct{ db *gorm.DB }

func (r *orderTableRepository) Save(ctx context.Context, table *models.OrderTable) error {
	return save(ctx, r.db, table, "order table")
}

func (r *orderTableRepository) FindByID(ctx context.Context, id uint) (*models.OrderTable, error) {
	var table models.OrderTable
	if err := findByID(ctx, r.db, &table, id); err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *orderTableRepository) FindAll(ctx context.Context) ([]models.OrderTable, error) {
	var tables []models.OrderTable
	err := r.db.WithContext(ctx).Order("id ASC").Find(&tables).Error
	return tables, err
}

func (r *orderTableRepository) FindAllByIDs(ctx context.Context, ids []uint) ([]models.OrderTable, error) {
	var tables []models.OrderTable
	if len(ids) == 0 {
		return tables, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&tables).Error
	return tables, err
}

func (r *orderTableRepository) FindAllByTableGroupID(ctx context.Context, tableGroupID uint) ([]models.OrderTable, error) {
	var tables []models.OrderTable
	err := r.db.WithContext(ctx).Where("table_group_id = ?", tableGroupID).Order("id ASC").Find(&tables).Error
	return tables, err
}

type tableGroupRepository struct{ db *gorm.DB }

func (r *tableGroupRepository) Save(ctx context.Context, group *models.TableGroup) error {
	return save(ctx, r.db, group, "table group")
}

func (r *tableGroupRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return existsByID(ctx, r.db, &models.TableGroup{}, id)
}
