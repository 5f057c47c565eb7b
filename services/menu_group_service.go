package services

import (
	"context"

	"github.com/kendall-kelly/kitchenpos-api/models"
	"github.com/kendall-kelly/kitchenpos-api/repositories"
)

// MenuGroupCreateRequest is the body of POST /api/v1/menu-groups
type MenuGroupCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

// MenuGroupResponse is a menu group as returned to clients
type MenuGroupResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// MenuGroupService registers and lists menu groups
type MenuGroupService struct {
	store repositories.Store
}

// NewMenuGroupService creates a MenuGroupService
func NewMenuGroupService(store repositories.Store) *MenuGroupService {
	return &MenuGroupService{store: store}
}

// Create registers a menu group
func (s *MenuGroupService) Create(ctx context.Context, req MenuGroupCreateRequest) (*MenuGroupResponse, error) {
	if req.Name == "" {
		return nil, models.NewValidationError(models.CodeInvalidName, "A menu group needs a name")
	}

	group := &models.MenuGroup{Name: req.Name}
	if err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		return tx.MenuGroups().Save(ctx, group)
	}); err != nil {
		return nil, err
	}

	return &MenuGroupResponse{ID: group.ID, Name: group.Name}, nil
}

// List returns every menu group
func (s *MenuGroupService) List(ctx context.Context) ([]MenuGroupResponse, error) {
	groups, err := s.store.MenuGroups().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]MenuGroupResponse, 0, len(groups))
	for _, group := range groups {
		responses = append(responses, MenuGroupResponse{ID: group.ID, Name: group.Name})
	}
	return responses, nil
}
