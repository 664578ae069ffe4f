package service

import (
	"context"
	"testing"

	"candystock/internal/apperr"
	"candystock/internal/dto"
	"candystock/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubInventoryRepo struct {
	records map[int64]*model.InventoryRecord
}

func newStubInventoryRepo() *stubInventoryRepo {
	return &stubInventoryRepo{records: map[int64]*model.InventoryRecord{}}
}

func (r *stubInventoryRepo) ListStocked(_ context.Context) ([]dto.StockedItem, error)     { return nil, nil }
func (r *stubInventoryRepo) ListOutOfStock(_ context.Context) ([]dto.StockedItem, error)  { return nil, nil }
func (r *stubInventoryRepo) ListOverstocked(_ context.Context) ([]dto.StockedItem, error) { return nil, nil }
func (r *stubInventoryRepo) ListLowStock(_ context.Context) ([]dto.StockedItem, error)    { return nil, nil }

func (r *stubInventoryRepo) FindStockedByItem(_ context.Context, itemID int64) (*dto.StockedItem, error) {
	rec, ok := r.records[itemID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &dto.StockedItem{ID: rec.ItemID, Stock: rec.Stock, Capacity: rec.Capacity}, nil
}

func (r *stubInventoryRepo) FindByItem(_ context.Context, itemID int64) (*model.InventoryRecord, error) {
	rec, ok := r.records[itemID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rec, nil
}

func (r *stubInventoryRepo) Create(_ context.Context, rec *model.InventoryRecord) error {
	rec.ID = int64(len(r.records) + 1)
	r.records[rec.ItemID] = rec
	return nil
}

func (r *stubInventoryRepo) Update(_ context.Context, itemID int64, stock, capacity int) error {
	rec, ok := r.records[itemID]
	if !ok {
		return nil
	}
	rec.Stock, rec.Capacity = stock, capacity
	return nil
}

func (r *stubInventoryRepo) DeleteByItem(_ context.Context, itemID int64) error {
	delete(r.records, itemID)
	return nil
}

func intp(v int) *int { return &v }

func TestAddToInventory(t *testing.T) {
	items := newStubItemRepo("Sour Gummies")
	inv := newStubInventoryRepo()
	svc := NewInventoryService(items, inv)

	resp, err := svc.AddToInventory(context.Background(), dto.AddInventoryRequest{
		ItemID: 1, Stock: intp(0), Capacity: intp(80),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ItemID)
	assert.Equal(t, 0, resp.Stock, "zero stock is a legal starting level")
	assert.Equal(t, 80, resp.Capacity)
}

func TestAddToInventoryUnknownItem(t *testing.T) {
	svc := NewInventoryService(newStubItemRepo(), newStubInventoryRepo())

	_, err := svc.AddToInventory(context.Background(), dto.AddInventoryRequest{
		ItemID: 5, Stock: intp(10), Capacity: intp(50),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "item 5 does not exist")
}

func TestAddToInventoryAlreadyStocked(t *testing.T) {
	items := newStubItemRepo("Sour Gummies")
	inv := newStubInventoryRepo()
	inv.records[1] = &model.InventoryRecord{ID: 1, ItemID: 1, Stock: 10, Capacity: 50}
	svc := NewInventoryService(items, inv)

	_, err := svc.AddToInventory(context.Background(), dto.AddInventoryRequest{
		ItemID: 1, Stock: intp(20), Capacity: intp(60),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// Existing slot unchanged.
	assert.Equal(t, 10, inv.records[1].Stock)
}

func TestAddToInventoryMissingItemBeatsConflict(t *testing.T) {
	// When the item does not exist at all, the answer is not-found even
	// though the conflict check would also fail.
	inv := newStubInventoryRepo()
	inv.records[3] = &model.InventoryRecord{ID: 1, ItemID: 3, Stock: 1, Capacity: 10}
	svc := NewInventoryService(newStubItemRepo(), inv)

	_, err := svc.AddToInventory(context.Background(), dto.AddInventoryRequest{
		ItemID: 3, Stock: intp(1), Capacity: intp(10),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpdateInventory(t *testing.T) {
	items := newStubItemRepo("Sour Gummies")
	inv := newStubInventoryRepo()
	inv.records[1] = &model.InventoryRecord{ID: 1, ItemID: 1, Stock: 10, Capacity: 50}
	svc := NewInventoryService(items, inv)

	resp, err := svc.UpdateInventory(context.Background(), 1, dto.UpdateInventoryRequest{
		Stock: intp(0), Capacity: intp(75),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Stock)
	assert.Equal(t, 75, inv.records[1].Capacity)
}

func TestUpdateInventoryNotStocked(t *testing.T) {
	svc := NewInventoryService(newStubItemRepo("Sour Gummies"), newStubInventoryRepo())

	_, err := svc.UpdateInventory(context.Background(), 1, dto.UpdateInventoryRequest{
		Stock: intp(5), Capacity: intp(10),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestRemoveFromInventory(t *testing.T) {
	inv := newStubInventoryRepo()
	inv.records[1] = &model.InventoryRecord{ID: 1, ItemID: 1, Stock: 10, Capacity: 50}
	svc := NewInventoryService(newStubItemRepo("Sour Gummies"), inv)

	require.NoError(t, svc.RemoveFromInventory(context.Background(), 1))
	assert.Empty(t, inv.records)

	err := svc.RemoveFromInventory(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGetStockedItemNotFound(t *testing.T) {
	svc := NewInventoryService(newStubItemRepo(), newStubInventoryRepo())

	_, err := svc.GetStockedItem(context.Background(), 12)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
