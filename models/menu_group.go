package models

import "time"

// MenuGroup categorizes menus, e.g. "Two chickens" or "Sides"
type MenuGroup struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the MenuGroup model
func (MenuGroup) TableName() string {
	return "menu_groups"
}
