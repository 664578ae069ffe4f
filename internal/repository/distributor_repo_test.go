package repository

import (
	"context"
	"testing"

	"candystock/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedDistributor(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	d := model.Distributor{Name: name}
	require.NoError(t, db.Create(&d).Error)
	return d.ID
}

func seedEntry(t *testing.T, db *gorm.DB, distributorID, itemID int64, cost string) {
	t.Helper()
	require.NoError(t, db.Create(&model.CatalogEntry{
		DistributorID: distributorID,
		ItemID:        itemID,
		Cost:          mustDecimal(t, cost),
	}).Error)
}

func TestListOfferingsOrder(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	item := model.Item{Name: "Sour Gummies"}
	require.NoError(t, db.Create(&item).Error)

	d1 := seedDistributor(t, db, "SweetSource Co")
	d2 := seedDistributor(t, db, "Bulk Candy Direct")
	d3 := seedDistributor(t, db, "Northside Confections")
	seedEntry(t, db, d1, item.ID, "5.00")
	seedEntry(t, db, d2, item.ID, "3.00")
	seedEntry(t, db, d3, item.ID, "3.00")

	offers, err := NewDistributorRepository(db).ListOfferings(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, offers, 3)

	// Cheapest first; equal costs fall back to ascending distributor id.
	assert.Equal(t, d2, offers[0].ID)
	assert.Equal(t, d3, offers[1].ID)
	assert.Equal(t, d1, offers[2].ID)
	assert.True(t, offers[0].Cost.Equal(mustDecimal(t, "3.00")))
}

func TestListCatalog(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	gummies := model.Item{Name: "Sour Gummies"}
	chocolate := model.Item{Name: "Milk Chocolate Bar"}
	require.NoError(t, db.Create(&gummies).Error)
	require.NoError(t, db.Create(&chocolate).Error)

	d := seedDistributor(t, db, "SweetSource Co")
	other := seedDistributor(t, db, "Bulk Candy Direct")
	seedEntry(t, db, d, chocolate.ID, "2.10")
	seedEntry(t, db, d, gummies.ID, "1.25")
	seedEntry(t, db, other, gummies.ID, "1.10")

	rows, err := NewDistributorRepository(db).ListCatalog(ctx, d)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, gummies.ID, rows[0].ID, "catalog ordered by item id")
	assert.Equal(t, chocolate.ID, rows[1].ID)
	assert.True(t, rows[1].Cost.Equal(mustDecimal(t, "2.10")))
}

func TestFindAndUpdateEntry(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	item := model.Item{Name: "Sour Gummies"}
	require.NoError(t, db.Create(&item).Error)
	d := seedDistributor(t, db, "SweetSource Co")
	seedEntry(t, db, d, item.ID, "1.25")

	repo := NewDistributorRepository(db)

	e, err := repo.FindEntry(ctx, d, item.ID)
	require.NoError(t, err)
	assert.True(t, e.Cost.Equal(mustDecimal(t, "1.25")))

	require.NoError(t, repo.UpdateEntryCost(ctx, d, item.ID, mustDecimal(t, "1.40")))
	e, err = repo.FindEntry(ctx, d, item.ID)
	require.NoError(t, err)
	assert.True(t, e.Cost.Equal(mustDecimal(t, "1.40")))

	_, err = repo.FindEntry(ctx, d, item.ID+99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteWithCatalog(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	item := model.Item{Name: "Sour Gummies"}
	require.NoError(t, db.Create(&item).Error)
	d := seedDistributor(t, db, "SweetSource Co")
	survivor := seedDistributor(t, db, "Bulk Candy Direct")
	seedEntry(t, db, d, item.ID, "1.25")
	seedEntry(t, db, survivor, item.ID, "1.10")

	removed, err := NewDistributorRepository(db).DeleteWithCatalog(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	var count int64
	require.NoError(t, db.Model(&model.CatalogEntry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "only the deleted distributor's entries go")

	assert.ErrorIs(t, db.First(&model.Distributor{}, d).Error, gorm.ErrRecordNotFound)
	assert.NoError(t, db.First(&model.Distributor{}, survivor).Error)
}

func TestDeleteWithCatalogRollsBackOnMissingRow(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	item := model.Item{Name: "Sour Gummies"}
	require.NoError(t, db.Create(&item).Error)
	d := seedDistributor(t, db, "SweetSource Co")
	seedEntry(t, db, d, item.ID, "1.25")

	// Simulate a concurrent delete winning the race: the distributor row is
	// gone but its catalog entries are still being read by the caller.
	require.NoError(t, db.Delete(&model.Distributor{}, d).Error)

	_, err := NewDistributorRepository(db).DeleteWithCatalog(ctx, d)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The transaction rolled back, so the entries are untouched.
	var count int64
	require.NoError(t, db.Model(&model.CatalogEntry{}).Where("distributor = ?", d).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
