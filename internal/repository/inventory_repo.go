package repository

import (
	"context"

	"candystock/internal/dto"
	"candystock/internal/model"

	"gorm.io/gorm"
)

// lowStockRatio: items stocked below 35% of capacity count as low stock.
const lowStockRatio = 0.35

type InventoryRepository interface {
	ListStocked(ctx context.Context) ([]dto.StockedItem, error)
	ListOutOfStock(ctx context.Context) ([]dto.StockedItem, error)
	ListOverstocked(ctx context.Context) ([]dto.StockedItem, error)
	ListLowStock(ctx context.Context) ([]dto.StockedItem, error)
	FindStockedByItem(ctx context.Context, itemID int64) (*dto.StockedItem, error)
	FindByItem(ctx context.Context, itemID int64) (*model.InventoryRecord, error)
	Create(ctx context.Context, rec *model.InventoryRecord) error
	Update(ctx context.Context, itemID int64, stock, capacity int) error
	DeleteByItem(ctx context.Context, itemID int64) error
}

type inventoryRepo struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) InventoryRepository { return &inventoryRepo{db: db} }

// stockedQuery is the items×inventory join every listing builds on.
// Ordering by item id is part of the listing contract.
func (r *inventoryRepo) stockedQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("items").
		Select("items.id, items.name, inventory.stock, inventory.capacity").
		Joins("INNER JOIN inventory ON inventory.item = items.id").
		Order("items.id ASC")
}

func (r *inventoryRepo) ListStocked(ctx context.Context) ([]dto.StockedItem, error) {
	var rows []dto.StockedItem
	err := r.stockedQuery(ctx).Scan(&rows).Error
	return rows, err
}

func (r *inventoryRepo) ListOutOfStock(ctx context.Context) ([]dto.StockedItem, error) {
	var rows []dto.StockedItem
	err := r.stockedQuery(ctx).Where("inventory.stock = 0").Scan(&rows).Error
	return rows, err
}

func (r *inventoryRepo) ListOverstocked(ctx context.Context) ([]dto.StockedItem, error) {
	var rows []dto.StockedItem
	err := r.stockedQuery(ctx).Where("inventory.stock > inventory.capacity").Scan(&rows).Error
	return rows, err
}

// ListLowStock returns items below the low-stock ratio. Rows violating the
// capacity > 0 invariant are excluded rather than dividing by zero.
func (r *inventoryRepo) ListLowStock(ctx context.Context) ([]dto.StockedItem, error) {
	var rows []dto.StockedItem
	err := r.stockedQuery(ctx).
		Where("inventory.capacity > 0 AND inventory.stock * 1.0 / inventory.capacity < ?", lowStockRatio).
		Scan(&rows).Error
	return rows, err
}

func (r *inventoryRepo) FindStockedByItem(ctx context.Context, itemID int64) (*dto.StockedItem, error) {
	var row dto.StockedItem
	res := r.stockedQuery(ctx).Where("items.id = ?", itemID).Limit(1).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *inventoryRepo) FindByItem(ctx context.Context, itemID int64) (*model.InventoryRecord, error) {
	var rec model.InventoryRecord
	err := r.db.WithContext(ctx).Where("item = ?", itemID).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *inventoryRepo) Create(ctx context.Context, rec *model.InventoryRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *inventoryRepo) Update(ctx context.Context, itemID int64, stock, capacity int) error {
	return r.db.WithContext(ctx).
		Model(&model.InventoryRecord{}).
		Where("item = ?", itemID).
		Updates(map[string]interface{}{"stock": stock, "capacity": capacity}).Error
}

func (r *inventoryRepo) DeleteByItem(ctx context.Context, itemID int64) error {
	return r.db.WithContext(ctx).Where("item = ?", itemID).Delete(&model.InventoryRecord{}).Error
}
