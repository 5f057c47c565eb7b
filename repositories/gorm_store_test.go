package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kendall-kelly/kitchenpos-api/models"
	"github.com/kendall-kelly/kitchenpos-api/tests/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormStore_FindByIDNotFound(t *testing.T) {
	store := NewGormStore(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := store.Products().FindByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Menus().FindByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Orders().FindByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.OrderTables().FindByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	exists, err := store.MenuGroups().ExistsByID(ctx, 42)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = store.TableGroups().ExistsByID(ctx, 42)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormStore_SaveAndFind(t *testing.T) {
	store := NewGormStore(testutil.NewTestDB(t))
	ctx := context.Background()

	product := &models.Product{Name: "Fried chicken", Price: decimal.RequireFromString("16000.50")}
	require.NoError(t, store.Products().Save(ctx, product))
	require.NotZero(t, product.ID)

	found, err := store.Products().FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fried chicken", found.Name)
	assert.True(t, product.Price.Equal(found.Price), "got %s", found.Price)

	group := &models.MenuGroup{Name: "One chicken"}
	require.NoError(t, store.MenuGroups().Save(ctx, group))
	exists, err := store.MenuGroups().ExistsByID(ctx, group.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMenuRepository_CountByIDs(t *testing.T) {
	store := NewGormStore(testutil.NewTestDB(t))
	ctx := context.Background()

	var ids []uint
	for _, name := range []string{"Fried", "Seasoned"} {
		menu := &models.Menu{Name: name, Price: decimal.NewFromInt(1000), MenuGroupID: 1}
		require.NoError(t, store.Menus().Save(ctx, menu))
		ids = append(ids, menu.ID)
	}

	count, err := store.Menus().CountByIDs(ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = store.Menus().CountByIDs(ctx, []uint{ids[0], 999})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = store.Menus().CountByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestOrderRepository_ExistsByOrderTableIDsAndStatusIn(t *testing.T) {
	store := NewGormStore(testutil.NewTestDB(t))
	ctx := context.Background()

	order := &models.Order{OrderTableID: 1, OrderStatus: models.OrderStatusMeal, OrderedTime: time.Now()}
	require.NoError(t, store.Orders().Save(ctx, order))

	tests := []struct {
		name     string
		tableIDs []uint
		statuses []models.OrderStatus
		want     bool
	}{
		{"open order on the table", []uint{1, 2}, models.OpenOrderStatuses, true},
		{"other tables", []uint{2, 3}, models.OpenOrderStatuses, false},
		{"status not asked for", []uint{1}, []models.OrderStatus{models.OrderStatusCompletion}, false},
		{"no tables", nil, models.OpenOrderStatuses, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Orders().ExistsByOrderTableIDsAndStatusIn(ctx, tt.tableIDs, tt.statuses)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderTableRepository_Queries(t *testing.T) {
	store := NewGormStore(testutil.NewTestDB(t))
	ctx := context.Background()

	group := &models.TableGroup{CreatedDate: time.Now()}
	require.NoError(t, store.TableGroups().Save(ctx, group))

	first := models.NewOrderTable(0, true)
	second := models.NewOrderTable(0, true)
	loner := models.NewOrderTable(2, false)
	for _, table := range []*models.OrderTable{first, second, loner} {
		require.NoError(t, store.OrderTables().Save(ctx, table))
	}
	require.NoError(t, first.Group(group.ID))
	require.NoError(t, second.Group(group.ID))
	require.NoError(t, store.OrderTables().Save(ctx, first))
	require.NoError(t, store.OrderTables().Save(ctx, second))

	members, err := store.OrderTables().FindAllByTableGroupID(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, first.ID, members[0].ID)
	assert.False(t, members[0].Empty)

	found, err := store.OrderTables().FindAllByIDs(ctx, []uint{loner.ID, 999})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, loner.ID, found[0].ID)

	// Ungrouping must write the cleared group id back
	second.Ungroup()
	require.NoError(t, store.OrderTables().Save(ctx, second))
	reloaded, err := store.OrderTables().FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.TableGroupID)
}

func TestGormStore_TransactionRollsBack(t *testing.T) {
	store := NewGormStore(testutil.NewTestDB(t))
	ctx := context.Background()
	failure := errors.New("guard failed")

	err := store.Transaction(ctx, func(tx Store) error {
		if err := tx.MenuGroups().Save(ctx, &models.MenuGroup{Name: "Discarded"}); err != nil {
			return err
		}
		return failure
	})
	assert.ErrorIs(t, err, failure)

	groups, err := store.MenuGroups().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, groups)

	err = store.Transaction(ctx, func(tx Store) error {
		return tx.MenuGroups().Save(ctx, &models.MenuGroup{Name: "Kept"})
	})
	require.NoError(t, err)

	groups, err = store.MenuGroups().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Kept", groups[0].Name)
}
