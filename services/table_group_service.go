package services

import (
	"context"
	"time"

	"github.com/kendall-kelly/kitchenpos-api/logger"
	"github.com/kendall-kelly/kitchenpos-api/models"
	"github.com/kendall-kelly/kitchenpos-api/repositories"
	"go.uber.org/zap"
)

// minTablesPerGroup is the smallest number of tables that can be merged
const minTablesPerGroup = 2

// TableGroupCreateRequest is the body of POST /api/v1/table-groups
type TableGroupCreateRequest struct {
	OrderTableIDs []uint `json:"order_table_ids" binding:"required"`
}

// TableGroupResponse is a table group with its member tables
type TableGroupResponse struct {
	ID          uint                 `json:"id"`
	CreatedDate time.Time            `json:"created_date"`
	OrderTables []OrderTableResponse `json:"order_tables"`
}

// TableGroupService merges and splits order tables
type TableGroupService struct {
	store repositories.Store
	clock func() time.Time
}

// NewTableGroupService creates a TableGroupService
func NewTableGroupService(store repositories.Store) *TableGroupService {
	return &TableGroupService{store: store, clock: time.Now}
}

// Create groups two or more empty, ungrouped tables. All tables are checked
// before the group row is written.
func (s *TableGroupService) Create(ctx context.Context, req TableGroupCreateRequest) (*TableGroupResponse, error) {
	tableIDs := distinctIDs(req.OrderTableIDs)
	if len(tableIDs) < minTablesPerGroup {
		return nil, models.NewValidationError(models.CodeTableGroupTooSmall, "A table group needs at least two different tables")
	}

	var resp *TableGroupResponse
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		tables, err := tx.OrderTables().FindAllByIDs(ctx, tableIDs)
		if err != nil {
			return err
		}
		if len(tables) != len(tableIDs) {
			return models.NewValidationError(models.CodeOrderTableNotFound, "A table group cannot contain a table that does not exist")
		}
		for i := range tables {
			if err := tables[i].CheckGroupable(); err != nil {
				return err
			}
		}

		group := &models.TableGroup{CreatedDate: s.clock()}
		if err := tx.TableGroups().Save(ctx, group); err != nil {
			return err
		}

		for i := range tables {
			if err := tables[i].Group(group.ID); err != nil {
				return err
			}
			if err := tx.OrderTables().Save(ctx, &tables[i]); err != nil {
				return err
			}
		}

		resp = &TableGroupResponse{
			ID:          group.ID,
			CreatedDate: group.CreatedDate,
			OrderTables: newOrderTableResponses(tables),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("tables grouped", zap.Uint("table_group_id", resp.ID), zap.Uints("order_table_ids", tableIDs))
	return resp, nil
}

// Ungroup releases every table of a group, provided none still has a
// cooking or meal order
func (s *TableGroupService) Ungroup(ctx context.Context, tableGroupID uint) error {
	return s.store.Transaction(ctx, func(tx repositories.Store) error {
		exists, err := tx.TableGroups().ExistsByID(ctx, tableGroupID)
		if err != nil {
			return err
		}
		if !exists {
			return models.NewValidationError(models.CodeTableGroupNotFound, "The table group does not exist")
		}

		tables, err := tx.OrderTables().FindAllByTableGroupID(ctx, tableGroupID)
		if err != nil {
			return err
		}

		tableIDs := make([]uint, 0, len(tables))
		for _, table := range tables {
			tableIDs = append(tableIDs, table.ID)
		}
		open, err := tx.Orders().ExistsByOrderTableIDsAndStatusIn(ctx, tableIDs, models.OpenOrderStatuses)
		if err != nil {
			return err
		}
		if open {
			return models.NewValidationError(models.CodeTableHasOpenOrders, "Tables with cooking or meal orders cannot be ungrouped")
		}

		for i := range tables {
			tables[i].Ungroup()
			if err := tx.OrderTables().Save(ctx, &tables[i]); err != nil {
				return err
			}
		}

		logger.Info("tables ungrouped", zap.Uint("table_group_id", tableGroupID), zap.Uints("order_table_ids", tableIDs))
		return nil
	})
}
