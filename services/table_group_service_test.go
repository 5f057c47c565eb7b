package services

import (
	"context"
	"testing"
	"time"

	"github.com/kendall-kelly/kitchenpos-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableGroupService_Create(t *testing.T) {
	db, store := setupStore(t)
	first := createOrderTable(t, db, 0, true)
	second := createOrderTable(t, db, 0, true)
	svc := NewTableGroupService(store)
	svc.clock = func() time.Time { return fixedTime }

	resp, err := svc.Create(context.Background(), TableGroupCreateRequest{OrderTableIDs: []uint{first.ID, second.ID}})

	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.True(t, fixedTime.Equal(resp.CreatedDate))
	require.Len(t, resp.OrderTables, 2)
	for _, table := range resp.OrderTables {
		require.NotNil(t, table.TableGroupID)
		assert.Equal(t, resp.ID, *table.TableGroupID)
		assert.False(t, table.Empty)
	}

	var stored models.OrderTable
	require.NoError(t, db.First(&stored, first.ID).Error)
	require.NotNil(t, stored.TableGroupID)
	assert.Equal(t, resp.ID, *stored.TableGroupID)
	assert.False(t, stored.Empty)
}

func TestTableGroupService_Create_Rejected(t *testing.T) {
	db, store := setupStore(t)
	emptyA := createOrderTable(t, db, 0, true)
	emptyB := createOrderTable(t, db, 0, true)
	occupied := createOrderTable(t, db, 3, false)
	svc := NewTableGroupService(store)

	grouped := createOrderTable(t, db, 0, true)
	existing := models.TableGroup{CreatedDate: fixedTime}
	require.NoError(t, db.Create(&existing).Error)
	require.NoError(t, grouped.Group(existing.ID))
	require.NoError(t, db.Save(&grouped).Error)

	tests := []struct {
		name     string
		ids      []uint
		wantCode string
	}{
		{"no tables", nil, models.CodeTableGroupTooSmall},
		{"one table", []uint{emptyA.ID}, models.CodeTableGroupTooSmall},
		{"same table twice", []uint{emptyA.ID, emptyA.ID}, models.CodeTableGroupTooSmall},
		{"unknown table", []uint{emptyA.ID, emptyB.ID + 100}, models.CodeOrderTableNotFound},
		{"occupied table", []uint{emptyA.ID, occupied.ID}, models.CodeTableNotEmpty},
		{"already grouped", []uint{emptyB.ID, grouped.ID}, models.CodeTableGrouped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), TableGroupCreateRequest{OrderTableIDs: tt.ids})
			requireValidationCode(t, err, tt.wantCode)
		})
	}

	var groups int64
	db.Model(&models.TableGroup{}).Count(&groups)
	assert.Equal(t, int64(1), groups, "Only the pre-existing group should be stored")

	var stored models.OrderTable
	require.NoError(t, db.First(&stored, emptyA.ID).Error)
	assert.Nil(t, stored.TableGroupID)
	assert.True(t, stored.Empty)
}

func TestTableGroupService_Ungroup(t *testing.T) {
	db, store := setupStore(t)
	first := createOrderTable(t, db, 0, true)
	second := createOrderTable(t, db, 0, true)
	svc := NewTableGroupService(store)
	ctx := context.Background()

	group, err := svc.Create(ctx, TableGroupCreateRequest{OrderTableIDs: []uint{first.ID, second.ID}})
	require.NoError(t, err)

	completed := models.Order{OrderTableID: first.ID, OrderStatus: models.OrderStatusCompletion, OrderedTime: fixedTime}
	require.NoError(t, db.Create(&completed).Error)

	require.NoError(t, svc.Ungroup(ctx, group.ID))

	var tables []models.OrderTable
	require.NoError(t, db.Find(&tables, []uint{first.ID, second.ID}).Error)
	require.Len(t, tables, 2)
	for _, table := range tables {
		assert.Nil(t, table.TableGroupID)
		assert.False(t, table.Empty)
	}
}

func TestTableGroupService_Ungroup_Rejected(t *testing.T) {
	for _, status := range models.OpenOrderStatuses {
		t.Run(string(status), func(t *testing.T) {
			db, store := setupStore(t)
			first := createOrderTable(t, db, 0, true)
			second := createOrderTable(t, db, 0, true)
			svc := NewTableGroupService(store)
			ctx := context.Background()

			group, err := svc.Create(ctx, TableGroupCreateRequest{OrderTableIDs: []uint{first.ID, second.ID}})
			require.NoError(t, err)

			order := models.Order{OrderTableID: second.ID, OrderStatus: status, OrderedTime: fixedTime}
			require.NoError(t, db.Create(&order).Error)

			err = svc.Ungroup(ctx, group.ID)
			requireValidationCode(t, err, models.CodeTableHasOpenOrders)

			var stored models.OrderTable
			require.NoError(t, db.First(&stored, first.ID).Error)
			assert.NotNil(t, stored.TableGroupID, "Tables stay grouped when ungrouping is refused")
		})
	}

	_, store := setupStore(t)
	err := NewTableGroupService(store).Ungroup(context.Background(), 99)
	requireValidationCode(t, err, models.CodeTableGroupNotFound)
}
