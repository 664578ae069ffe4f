package repository

import (
	"context"

	"candystock/internal/dto"
	"candystock/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DistributorRepository interface {
	Create(ctx context.Context, d *model.Distributor) error
	FindByID(ctx context.Context, id int64) (*model.Distributor, error)
	List(ctx context.Context) ([]model.Distributor, error)

	ListCatalog(ctx context.Context, distributorID int64) ([]dto.DistributorItem, error)
	ListOfferings(ctx context.Context, itemID int64) ([]dto.ItemOffering, error)
	FindEntry(ctx context.Context, distributorID, itemID int64) (*model.CatalogEntry, error)
	CreateEntry(ctx context.Context, e *model.CatalogEntry) error
	UpdateEntryCost(ctx context.Context, distributorID, itemID int64, cost decimal.Decimal) error

	DeleteWithCatalog(ctx context.Context, id int64) (int64, error)
}

type distributorRepo struct{ db *gorm.DB }

func NewDistributorRepository(db *gorm.DB) DistributorRepository { return &distributorRepo{db: db} }

func (r *distributorRepo) Create(ctx context.Context, d *model.Distributor) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *distributorRepo) FindByID(ctx context.Context, id int64) (*model.Distributor, error) {
	var d model.Distributor
	err := r.db.WithContext(ctx).First(&d, id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *distributorRepo) List(ctx context.Context) ([]model.Distributor, error) {
	var ds []model.Distributor
	err := r.db.WithContext(ctx).Order("id ASC").Find(&ds).Error
	return ds, err
}

// ListCatalog returns the items one distributor offers, with its unit cost,
// ordered by ascending item id.
func (r *distributorRepo) ListCatalog(ctx context.Context, distributorID int64) ([]dto.DistributorItem, error) {
	var rows []dto.DistributorItem
	err := r.db.WithContext(ctx).
		Table("items").
		Select("items.id, items.name, distributor_prices.cost").
		Joins("INNER JOIN distributor_prices ON distributor_prices.item = items.id").
		Where("distributor_prices.distributor = ?", distributorID).
		Order("items.id ASC").
		Scan(&rows).Error
	return rows, err
}

// ListOfferings returns every distributor's offer for one item, cheapest
// first; distributor id breaks unit-cost ties so iteration order is stable.
func (r *distributorRepo) ListOfferings(ctx context.Context, itemID int64) ([]dto.ItemOffering, error) {
	var rows []dto.ItemOffering
	err := r.db.WithContext(ctx).
		Table("distributors").
		Select("distributors.id, distributors.name, distributor_prices.cost").
		Joins("INNER JOIN distributor_prices ON distributor_prices.distributor = distributors.id").
		Where("distributor_prices.item = ?", itemID).
		Order("distributor_prices.cost ASC, distributors.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *distributorRepo) FindEntry(ctx context.Context, distributorID, itemID int64) (*model.CatalogEntry, error) {
	var e model.CatalogEntry
	err := r.db.WithContext(ctx).
		Where("distributor = ? AND item = ?", distributorID, itemID).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *distributorRepo) CreateEntry(ctx context.Context, e *model.CatalogEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *distributorRepo) UpdateEntryCost(ctx context.Context, distributorID, itemID int64, cost decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&model.CatalogEntry{}).
		Where("distributor = ? AND item = ?", distributorID, itemID).
		Update("cost", cost).Error
}

// DeleteWithCatalog removes a distributor and all its catalog entries as one
// atomic unit, returning the number of entries removed. When the distributor
// row itself is gone by delete time (concurrent delete), the whole
// transaction rolls back — catalog rows included — and gorm.ErrRecordNotFound
// is returned.
func (r *distributorRepo) DeleteWithCatalog(ctx context.Context, id int64) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("distributor = ?", id).Delete(&model.CatalogEntry{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected

		res = tx.Delete(&model.Distributor{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
