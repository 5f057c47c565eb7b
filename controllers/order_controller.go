package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/kitchenpos-api/models"
	"github.com/kendall-kelly/kitchenpos-api/services"
)

// CreateOrder handles POST /api/v1/orders - takes an order for an occupied table
func CreateOrder(c *gin.Context) {
	var req services.OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	order, err := services.Get().Orders.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create order")
		return
	}

	respondData(c, http.StatusCreated, order)
}

// ListOrders handles GET /api/v1/orders
func ListOrders(c *gin.Context) {
	orders, err := services.Get().Orders.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch orders")
		return
	}

	respondData(c, http.StatusOK, orders)
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/order-status
func ChangeOrderStatus(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.OrderStatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	status, err := models.ParseOrderStatus(req.OrderStatus)
	if err != nil {
		respondServiceError(c, err, "Failed to change order status")
		return
	}

	order, err := services.Get().Orders.ChangeOrderStatus(c.Request.Context(), orderID, status)
	if err != nil {
		respondServiceError(c, err, "Failed to change order status")
		return
	}

	respondData(c, http.StatusOK, order)
}
