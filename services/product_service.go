package services

import (
	"context"

	"github.com/kendall-kelly/kitchenpos-api/logger"
	"github.com/kendall-kelly/kitchenpos-api/models"
	"github.com/kendall-kelly/kitchenpos-api/repositories"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductCreateRequest is the body of POST /api/v1/products
type ProductCreateRequest struct {
	Name  string           `json:"name" binding:"required"`
	Price *decimal.Decimal `json:"price" binding:"required"`
}

// ProductResponse is a product as returned to clients
type ProductResponse struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

func newProductResponse(product *models.Product) ProductResponse {
	return ProductResponse{ID: product.ID, Name: product.Name, Price: product.Price}
}

// ProductService registers and lists products
type ProductService struct {
	store repositories.Store
}

// NewProductService creates a ProductService
func NewProductService(store repositories.Store) *ProductService {
	return &ProductService{store: store}
}

// Create registers a product with a non-negative price
func (s *ProductService) Create(ctx context.Context, req ProductCreateRequest) (*ProductResponse, error) {
	if req.Name == "" {
		return nil, models.NewValidationError(models.CodeInvalidName, "A product needs a name")
	}
	if req.Price == nil || req.Price.IsNegative() {
		return nil, models.NewValidationError(models.CodeInvalidPrice, "The product price must be zero or more")
	}

	product := &models.Product{Name: req.Name, Price: *req.Price}
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		return tx.Products().Save(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("product created", zap.Uint("product_id", product.ID), zap.String("price", product.Price.String()))
	resp := newProductResponse(product)
	return &resp, nil
}

// List returns every product
func (s *ProductService) List(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.store.Products().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, newProductResponse(&products[i]))
	}
	return responses, nil
}
