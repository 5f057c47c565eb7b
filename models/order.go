package models

import (
	"fmt"
	"strings"
	"time"
)

// OrderStatus is the kitchen progress of an order
type OrderStatus string

const (
	OrderStatusCooking    OrderStatus = "COOKING"
	OrderStatusMeal       OrderStatus = "MEAL"
	OrderStatusCompletion OrderStatus = "COMPLETION"
)

// OpenOrderStatuses are the statuses that keep a table occupied
var OpenOrderStatuses = []OrderStatus{OrderStatusCooking, OrderStatusMeal}

// ParseOrderStatus converts a case-insensitive name into an OrderStatus
func ParseOrderStatus(value string) (OrderStatus, error) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(value)))
	switch status {
	case OrderStatusCooking, OrderStatusMeal, OrderStatusCompletion:
		return status, nil
	}
	return "", NewValidationError(CodeInvalidOrderStatus, fmt.Sprintf("Unknown order status %q", value))
}

// Order is placed against an occupied order table
type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	OrderTableID uint        `gorm:"not null;index" json:"order_table_id"` // foreign key to order_tables table
	OrderStatus  OrderStatus `gorm:"type:varchar(20);not null;default:'COOKING'" json:"order_status"`
	OrderedTime  time.Time   `gorm:"not null" json:"ordered_time"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// ChangeOrderStatus overwrites the status. Any status may follow any other.
func (o *Order) ChangeOrderStatus(status OrderStatus) {
	o.OrderStatus = status
}

// OrderLineItem associates a quantity of one menu with one order
type OrderLineItem struct {
	ID       uint  `gorm:"primaryKey" json:"id"`
	OrderID  uint  `gorm:"not null;index" json:"order_id"` // foreign key to orders table
	MenuID   uint  `gorm:"not null;index" json:"menu_id"`  // foreign key to menus table
	Quantity int64 `gorm:"not null" json:"quantity"`
}

// TableName specifies the table name for the OrderLineItem model
func (OrderLineItem) TableName() string {
	return "order_line_items"
}
