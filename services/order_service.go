package services

import (
	"context"
	"time"

	"github.com/kendall-kelly/kitchenpos-api/logger"
	"github.com/kendall-kelly/kitchenpos-api/models"
	"github.com/kendall-kelly/kitchenpos-api/repositories"
	"go.uber.org/zap"
)

// OrderLineItemCreateRequest is one menu line of a new order
type OrderLineItemCreateRequest struct {
	MenuID   uint  `json:"menu_id"`
	Quantity int64 `json:"quantity"`
}

// OrderCreateRequest is the body of POST /api/v1/orders
type OrderCreateRequest struct {
	OrderTableID   uint                         `json:"order_table_id"`
	OrderLineItems []OrderLineItemCreateRequest `json:"order_line_items"`
}

// OrderStatusChangeRequest is the body of PUT /api/v1/orders/:id/order-status
type OrderStatusChangeRequest struct {
	OrderStatus string `json:"order_status" binding:"required"`
}

// OrderLineItemResponse is a persisted order line
type OrderLineItemResponse struct {
	ID       uint  `json:"id"`
	OrderID  uint  `json:"order_id"`
	MenuID   uint  `json:"menu_id"`
	Quantity int64 `json:"quantity"`
}

// OrderResponse is an order with its line items
type OrderResponse struct {
	ID             uint                    `json:"id"`
	OrderTableID   uint                    `json:"order_table_id"`
	OrderStatus    models.OrderStatus      `json:"order_status"`
	OrderedTime    time.Time               `json:"ordered_time"`
	OrderLineItems []OrderLineItemResponse `json:"order_line_items"`
}

func newOrderResponse(order *models.Order, items []models.OrderLineItem) *OrderResponse {
	resp := &OrderResponse{
		ID:             order.ID,
		OrderTableID:   order.OrderTableID,
		OrderStatus:    order.OrderStatus,
		OrderedTime:    order.OrderedTime,
		OrderLineItems: make([]OrderLineItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.OrderLineItems = append(resp.OrderLineItems, OrderLineItemResponse{
			ID:       item.ID,
			OrderID:  item.OrderID,
			MenuID:   item.MenuID,
			Quantity: item.Quantity,
		})
	}
	return resp
}

// OrderService places orders and tracks their status
type OrderService struct {
	store repositories.Store
	clock func() time.Time
}

// NewOrderService creates an OrderService
func NewOrderService(store repositories.Store) *OrderService {
	return &OrderService{store: store, clock: time.Now}
}

// Create places an order on an occupied table. Every referenced menu must
// exist; the same menu may appear on several lines.
func (s *OrderService) Create(ctx context.Context, req OrderCreateRequest) (*OrderResponse, error) {
	if len(req.OrderLineItems) == 0 {
		return nil, models.NewValidationError(models.CodeEmptyOrderLineItems, "An order must contain at least one menu")
	}

	menuIDs := make([]uint, 0, len(req.OrderLineItems))
	for _, line := range req.OrderLineItems {
		if line.MenuID == 0 {
			return nil, models.NewValidationError(models.CodeMenuNotFound, "An order cannot contain a menu that does not exist")
		}
		menuIDs = append(menuIDs, line.MenuID)
	}
	menuIDs = distinctIDs(menuIDs)

	var resp *OrderResponse
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		count, err := tx.Menus().CountByIDs(ctx, menuIDs)
		if err != nil {
			return err
		}
		if count != int64(len(menuIDs)) {
			return models.NewValidationError(models.CodeMenuNotFound, "An order cannot contain a menu that does not exist")
		}

		if req.OrderTableID == 0 {
			return models.NewValidationError(models.CodeOrderTableNotFound, "An order cannot be placed on a table that does not exist")
		}
		table, err := tx.OrderTables().FindByID(ctx, req.OrderTableID)
		if err != nil {
			return notFound(err, models.CodeOrderTableNotFound, "An order cannot be placed on a table that does not exist")
		}
		if table.Empty {
			return models.NewValidationError(models.CodeOrderTableEmpty, "An order cannot be placed on an empty table")
		}

		order := &models.Order{
			OrderTableID: table.ID,
			OrderStatus:  models.OrderStatusCooking,
			OrderedTime:  s.clock(),
		}
		if err := tx.Orders().Save(ctx, order); err != nil {
			return err
		}

		items := make([]models.OrderLineItem, 0, len(req.OrderLineItems))
		for _, line := range req.OrderLineItems {
			item := models.OrderLineItem{OrderID: order.ID, MenuID: line.MenuID, Quantity: line.Quantity}
			if err := tx.OrderLineItems().Save(ctx, &item); err != nil {
				return err
			}
			items = append(items, item)
		}

		resp = newOrderResponse(order, items)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("order created",
		zap.Uint("order_id", resp.ID),
		zap.Uint("order_table_id", resp.OrderTableID),
		zap.Int("line_items", len(resp.OrderLineItems)))
	return resp, nil
}

// List returns every order with its line items
func (s *OrderService) List(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.store.Orders().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		items, err := s.store.OrderLineItems().FindAllByOrderID(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *newOrderResponse(&orders[i], items))
	}
	return responses, nil
}

// ChangeOrderStatus overwrites the status of an existing order
func (s *OrderService) ChangeOrderStatus(ctx context.Context, orderID uint, status models.OrderStatus) (*OrderResponse, error) {
	var resp *OrderResponse
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		order, err := tx.Orders().FindByID(ctx, orderID)
		if err != nil {
			return notFound(err, models.CodeOrderNotFound, "The order does not exist")
		}

		previous := order.OrderStatus
		order.ChangeOrderStatus(status)
		if err := tx.Orders().Save(ctx, order); err != nil {
			return err
		}

		items, err := tx.OrderLineItems().FindAllByOrderID(ctx, order.ID)
		if err != nil {
			return err
		}

		logger.Info("order status changed",
			zap.Uint("order_id", order.ID),
			zap.String("from", string(previous)),
			zap.String("to", string(status)))
		resp = newOrderResponse(order, items)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
