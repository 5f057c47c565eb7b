package services

import (
	"context"
	"mime/multipart"

	"github.com/kendall-kelly/kitchenpos-api/logger"
	"github.com/kendall-kelly/kitchenpos-api/models"
	"github.com/kendall-kelly/kitchenpos-api/repositories"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MenuProductCreateRequest is one product line of a new menu
type MenuProductCreateRequest struct {
	ProductID uint  `json:"product_id"`
	Quantity  int64 `json:"quantity" binding:"gte=0"`
}

// MenuCreateRequest is the body of POST /api/v1/menus
type MenuCreateRequest struct {
	Name         string                     `json:"name" binding:"required"`
	Price        *decimal.Decimal           `json:"price" binding:"required"`
	MenuGroupID  uint                       `json:"menu_group_id"`
	MenuProducts []MenuProductCreateRequest `json:"menu_products" binding:"dive"`
}

// MenuProductResponse is a persisted menu product line
type MenuProductResponse struct {
	ID        uint  `json:"id"`
	MenuID    uint  `json:"menu_id"`
	ProductID uint  `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// MenuResponse is a menu with its product lines
type MenuResponse struct {
	ID           uint                  `json:"id"`
	Name         string                `json:"name"`
	Price        decimal.Decimal       `json:"price"`
	MenuGroupID  uint                  `json:"menu_group_id"`
	ImageURL     *string               `json:"image_url,omitempty"` // presigned URL, only when an image was uploaded
	MenuProducts []MenuProductResponse `json:"menu_products"`
}

// MenuService creates and lists menus
type MenuService struct {
	store  repositories.Store
	images ImageService
}

// NewMenuService creates a MenuService. images may be nil.
func NewMenuService(store repositories.Store, images ImageService) *MenuService {
	return &MenuService{store: store, images: images}
}

// Create validates the menu group, the products and the price ceiling, then
// persists the menu followed by each of its product lines
func (s *MenuService) Create(ctx context.Context, req MenuCreateRequest) (*MenuResponse, error) {
	if req.Price == nil || req.Price.IsNegative() {
		return nil, models.NewValidationError(models.CodeInvalidPrice, "The menu price must be zero or more")
	}
	price := *req.Price

	var resp *MenuResponse
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		exists, err := tx.MenuGroups().ExistsByID(ctx, req.MenuGroupID)
		if err != nil {
			return err
		}
		if !exists {
			return models.NewValidationError(models.CodeMenuGroupNotFound, "The menu group does not exist")
		}

		sum := decimal.Zero
		for _, line := range req.MenuProducts {
			if line.ProductID == 0 {
				return models.NewValidationError(models.CodeProductNotFound, "A menu cannot contain a product that does not exist")
			}
			product, err := tx.Products().FindByID(ctx, line.ProductID)
			if err != nil {
				return notFound(err, models.CodeProductNotFound, "A menu cannot contain a product that does not exist")
			}
			sum = sum.Add(product.Price.Mul(decimal.NewFromInt(line.Quantity)))
		}

		if price.GreaterThan(sum) {
			return models.NewValidationError(models.CodeMenuPriceTooHigh,
				"The menu price must be less than or equal to the sum of its product prices")
		}

		menu := &models.Menu{Name: req.Name, Price: price, MenuGroupID: req.MenuGroupID}
		if err := tx.Menus().Save(ctx, menu); err != nil {
			return err
		}

		saved := make([]models.MenuProduct, 0, len(req.MenuProducts))
		for _, line := range req.MenuProducts {
			menuProduct := models.MenuProduct{MenuID: menu.ID, ProductID: line.ProductID, Quantity: line.Quantity}
			if err := tx.MenuProducts().Save(ctx, &menuProduct); err != nil {
				return err
			}
			saved = append(saved, menuProduct)
		}

		resp = s.newMenuResponse(ctx, menu, saved)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("menu created", zap.Uint("menu_id", resp.ID), zap.Int("menu_products", len(resp.MenuProducts)))
	return resp, nil
}

// List returns every menu with its product lines
func (s *MenuService) List(ctx context.Context) ([]MenuResponse, error) {
	menus, err := s.store.Menus().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]MenuResponse, 0, len(menus))
	for i := range menus {
		menuProducts, err := s.store.MenuProducts().FindAllByMenuID(ctx, menus[i].ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *s.newMenuResponse(ctx, &menus[i], menuProducts))
	}
	return responses, nil
}

// UploadImage stores a PNG picture for a menu, replacing any previous one
func (s *MenuService) UploadImage(ctx context.Context, menuID uint, fileHeader *multipart.FileHeader) (*MenuResponse, error) {
	if s.images == nil {
		return nil, ErrImageStorageUnavailable
	}

	// Fail fast on unknown menus before anything reaches S3
	if _, err := s.store.Menus().FindByID(ctx, menuID); err != nil {
		return nil, notFound(err, models.CodeMenuNotFound, "The menu does not exist")
	}

	key, err := s.images.UploadImage(ctx, fileHeader)
	if err != nil {
		return nil, err
	}

	var previous *string
	var resp *MenuResponse
	err = s.store.Transaction(ctx, func(tx repositories.Store) error {
		menu, err := tx.Menus().FindByID(ctx, menuID)
		if err != nil {
			return notFound(err, models.CodeMenuNotFound, "The menu does not exist")
		}

		previous = menu.ImageS3Key
		menu.ImageS3Key = &key
		if err := tx.Menus().Save(ctx, menu); err != nil {
			return err
		}

		menuProducts, err := tx.MenuProducts().FindAllByMenuID(ctx, menu.ID)
		if err != nil {
			return err
		}
		resp = s.newMenuResponse(ctx, menu, menuProducts)
		return nil
	})
	if err != nil {
		s.deleteImage(ctx, key)
		return nil, err
	}

	if previous != nil {
		s.deleteImage(ctx, *previous)
	}
	logger.Info("menu image uploaded", zap.Uint("menu_id", menuID), zap.String("key", key))
	return resp, nil
}

func (s *MenuService) deleteImage(ctx context.Context, key string) {
	if err := s.images.DeleteImage(ctx, key); err != nil {
		logger.Warn("failed to delete menu image", zap.String("key", key), zap.Error(err))
	}
}

func (s *MenuService) newMenuResponse(ctx context.Context, menu *models.Menu, menuProducts []models.MenuProduct) *MenuResponse {
	resp := &MenuResponse{
		ID:           menu.ID,
		Name:         menu.Name,
		Price:        menu.Price,
		MenuGroupID:  menu.MenuGroupID,
		MenuProducts: make([]MenuProductResponse, 0, len(menuProducts)),
	}
	for _, mp := range menuProducts {
		resp.MenuProducts = append(resp.MenuProducts, MenuProductResponse{
			ID:        mp.ID,
			MenuID:    mp.MenuID,
			ProductID: mp.ProductID,
			Quantity:  mp.Quantity,
		})
	}

	if menu.ImageS3Key != nil && s.images != nil {
		url, err := s.images.GetImageURL(ctx, *menu.ImageS3Key)
		if err != nil {
			logger.Warn("failed to resolve menu image URL", zap.Uint("menu_id", menu.ID), zap.Error(err))
		} else if url != "" {
			resp.ImageURL = &url
		}
	}
	return resp
}
