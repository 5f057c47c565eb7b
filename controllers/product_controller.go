package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/kitchenpos-api/services"
)

// CreateProduct handles POST /api/v1/products
func CreateProduct(c *gin.Context) {
	var req services.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	product, err := services.Get().Products.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create product")
		return
	}

	respondData(c, http.StatusCreated, product)
}

// ListProducts handles GET /api/v1/products
func ListProducts(c *gin.Context) {
	products, err := services.Get().Products.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch products")
		return
	}

	respondData(c, http.StatusOK, products)
}
