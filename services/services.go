package services

import (
	"errors"

	"github.com/kendall-kelly/kitchenpos-api/models"
	"github.com/kendall-kelly/kitchenpos-api/repositories"
)

// ErrImageStorageUnavailable is returned by image operations when no S3 bucket is configured
var ErrImageStorageUnavailable = errors.New("image storage is not configured")

// Services groups the application services used by the controllers
type Services struct {
	Products    *ProductService
	MenuGroups  *MenuGroupService
	Menus       *MenuService
	Orders      *OrderService
	Tables      *TableService
	TableGroups *TableGroupService
}

var instance *Services

// NewServices wires every application service to store. images may be nil,
// in which case menu image uploads fail with ErrImageStorageUnavailable.
func NewServices(store repositories.Store, images ImageService) *Services {
	return &Services{
		Products:    NewProductService(store),
		MenuGroups:  NewMenuGroupService(store),
		Menus:       NewMenuService(store, images),
		Orders:      NewOrderService(store),
		Tables:      NewTableService(store),
		TableGroups: NewTableGroupService(store),
	}
}

// Init builds the services and installs them as the shared instance
func Init(store repositories.Store, images ImageService) *Services {
	instance = NewServices(store, images)
	return instance
}

// Get returns the shared services instance
func Get() *Services {
	return instance
}

// Set replaces the shared services instance (primarily for testing)
func Set(s *Services) {
	instance = s
}

// notFound maps a repository miss onto the validation error callers see
func notFound(err error, code, message string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return models.NewValidationError(code, message)
	}
	return err
}

// distinctIDs returns ids without duplicates, keeping first-seen order
func distinctIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
