package services

import (
	"context"

	"github.com/kendall-kelly/kitchenpos-api/models"
	"github.com/kendall-kelly/kitchenpos-api/repositories"
)

// OrderTableCreateRequest is the body of POST /api/v1/tables
type OrderTableCreateRequest struct {
	NumberOfGuests int  `json:"number_of_guests"`
	Empty          bool `json:"empty"`
}

// ChangeEmptyRequest is the body of PUT /api/v1/tables/:id/empty
type ChangeEmptyRequest struct {
	Empty *bool `json:"empty" binding:"required"`
}

// ChangeNumberOfGuestsRequest is the body of PUT /api/v1/tables/:id/number-of-guests
type ChangeNumberOfGuestsRequest struct {
	NumberOfGuests *int `json:"number_of_guests" binding:"required"`
}

// OrderTableResponse is an order table as returned to clients
type OrderTableResponse struct {
	ID             uint  `json:"id"`
	TableGroupID   *uint `json:"table_group_id"`
	NumberOfGuests int   `json:"number_of_guests"`
	Empty          bool  `json:"empty"`
}

func newOrderTableResponse(table *models.OrderTable) OrderTableResponse {
	return OrderTableResponse{
		ID:             table.ID,
		TableGroupID:   table.TableGroupID,
		NumberOfGuests: table.NumberOfGuests,
		Empty:          table.Empty,
	}
}

func newOrderTableResponses(tables []models.OrderTable) []OrderTableResponse {
	responses := make([]OrderTableResponse, 0, len(tables))
	for i := range tables {
		responses = append(responses, newOrderTableResponse(&tables[i]))
	}
	return responses
}

// TableService manages single order tables
type TableService struct {
	store repositories.Store
}

// NewTableService creates a TableService
func NewTableService(store repositories.Store) *TableService {
	return &TableService{store: store}
}

// Create registers an ungrouped table
func (s *TableService) Create(ctx context.Context, req OrderTableCreateRequest) (*OrderTableResponse, error) {
	if req.NumberOfGuests < 0 {
		return nil, models.NewValidationError(models.CodeNegativeGuests, "The number of guests cannot be negative")
	}

	table := models.NewOrderTable(req.NumberOfGuests, req.Empty)
	if err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		return tx.OrderTables().Save(ctx, table)
	}); err != nil {
		return nil, err
	}

	resp := newOrderTableResponse(table)
	return &resp, nil
}

// List returns every table
func (s *TableService) List(ctx context.Context) ([]OrderTableResponse, error) {
	tables, err := s.store.OrderTables().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return newOrderTableResponses(tables), nil
}

// ChangeEmpty marks an ungrouped table empty or occupied
func (s *TableService) ChangeEmpty(ctx context.Context, tableID uint, empty bool) (*OrderTableResponse, error) {
	return s.update(ctx, tableID, func(table *models.OrderTable) error {
		return table.ChangeEmpty(empty)
	})
}

// ChangeNumberOfGuests sets the guest count of an occupied table
func (s *TableService) ChangeNumberOfGuests(ctx context.Context, tableID uint, numberOfGuests int) (*OrderTableResponse, error) {
	return s.update(ctx, tableID, func(table *models.OrderTable) error {
		return table.ChangeNumberOfGuests(numberOfGuests)
	})
}

// update loads a table, applies change and saves it in one transaction
func (s *TableService) update(ctx context.Context, tableID uint, change func(*models.OrderTable) error) (*OrderTableResponse, error) {
	var resp OrderTableResponse
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		table, err := tx.OrderTables().FindByID(ctx, tableID)
		if err != nil {
			return notFound(err, models.CodeOrderTableNotFound, "The table does not exist")
		}
		if err := change(table); err != nil {
			return err
		}
		if err := tx.OrderTables().Save(ctx, table); err != nil {
			return err
		}
		resp = newOrderTableResponse(table)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
