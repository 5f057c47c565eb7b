package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Menu is a sellable bundle of products at a fixed price
type Menu struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(19,2);not null" json:"price"`
	MenuGroupID uint            `gorm:"not null;index" json:"menu_group_id"` // foreign key to menu_groups table
	ImageS3Key  *string         `json:"image_s3_key"`                        // nullable, S3 key for uploaded image
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName specifies the table name for the Menu model
func (Menu) TableName() string {
	return "menus"
}

// MenuProduct associates a quantity of one product with one menu
type MenuProduct struct {
	ID        uint  `gorm:"primaryKey" json:"id"`
	MenuID    uint  `gorm:"not null;index" json:"menu_id"`    // foreign key to menus table
	ProductID uint  `gorm:"not null;index" json:"product_id"` // foreign key to products table
	Quantity  int64 `gorm:"not null" json:"quantity"`
}

// TableName specifies the table name for the MenuProduct model
func (MenuProduct) TableName() string {
	return "menu_products"
}
