package service

import (
	"context"
	"testing"

	"candystock/internal/apperr"
	"candystock/internal/dto"
	"candystock/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ─── Stubs ───────────────────────────────────────────────────────────────────

type stubItemRepo struct {
	items map[int64]*model.Item
}

func newStubItemRepo(names ...string) *stubItemRepo {
	r := &stubItemRepo{items: map[int64]*model.Item{}}
	for i, n := range names {
		id := int64(i + 1)
		r.items[id] = &model.Item{ID: id, Name: n}
	}
	return r
}

func (r *stubItemRepo) Create(_ context.Context, item *model.Item) error {
	item.ID = int64(len(r.items) + 1)
	r.items[item.ID] = item
	return nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id int64) (*model.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return it, nil
}

func (r *stubItemRepo) List(_ context.Context) ([]model.Item, error) {
	out := make([]model.Item, 0, len(r.items))
	for i := int64(1); i <= int64(len(r.items)); i++ {
		out = append(out, *r.items[i])
	}
	return out, nil
}

type stubDistributorRepo struct {
	distributors map[int64]*model.Distributor
	entries      []*model.CatalogEntry
	offerings    map[int64][]dto.ItemOffering

	deleteErr     error
	deleteRemoved int64
	createCalls   int
}

func newStubDistributorRepo(names ...string) *stubDistributorRepo {
	r := &stubDistributorRepo{
		distributors: map[int64]*model.Distributor{},
		offerings:    map[int64][]dto.ItemOffering{},
	}
	for i, n := range names {
		id := int64(i + 1)
		r.distributors[id] = &model.Distributor{ID: id, Name: n}
	}
	return r
}

func (r *stubDistributorRepo) Create(_ context.Context, d *model.Distributor) error {
	d.ID = int64(len(r.distributors) + 1)
	r.distributors[d.ID] = d
	return nil
}

func (r *stubDistributorRepo) FindByID(_ context.Context, id int64) (*model.Distributor, error) {
	d, ok := r.distributors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *stubDistributorRepo) List(_ context.Context) ([]model.Distributor, error) {
	out := make([]model.Distributor, 0, len(r.distributors))
	for i := int64(1); i <= int64(len(r.distributors)); i++ {
		out = append(out, *r.distributors[i])
	}
	return out, nil
}

func (r *stubDistributorRepo) ListCatalog(_ context.Context, _ int64) ([]dto.DistributorItem, error) {
	return nil, nil
}

func (r *stubDistributorRepo) ListOfferings(_ context.Context, itemID int64) ([]dto.ItemOffering, error) {
	return r.offerings[itemID], nil
}

func (r *stubDistributorRepo) FindEntry(_ context.Context, distributorID, itemID int64) (*model.CatalogEntry, error) {
	for _, e := range r.entries {
		if e.DistributorID == distributorID && e.ItemID == itemID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubDistributorRepo) CreateEntry(_ context.Context, e *model.CatalogEntry) error {
	r.createCalls++
	e.ID = int64(len(r.entries) + 1)
	r.entries = append(r.entries, e)
	return nil
}

func (r *stubDistributorRepo) UpdateEntryCost(_ context.Context, distributorID, itemID int64, cost decimal.Decimal) error {
	for _, e := range r.entries {
		if e.DistributorID == distributorID && e.ItemID == itemID {
			e.Cost = cost
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubDistributorRepo) DeleteWithCatalog(_ context.Context, id int64) (int64, error) {
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	delete(r.distributors, id)
	return r.deleteRemoved, nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ─── CheapestRestock ─────────────────────────────────────────────────────────

func TestCheapestRestockPicksLowestTotal(t *testing.T) {
	items := newStubItemRepo("Sour Gummies")
	repo := newStubDistributorRepo("SweetSource", "Bulk Direct", "Northside")
	// Offerings arrive sorted by cost ASC, distributor id ASC.
	repo.offerings[1] = []dto.ItemOffering{
		{ID: 2, Name: "Bulk Direct", Cost: dec("3.00")},
		{ID: 3, Name: "Northside", Cost: dec("3.00")},
		{ID: 1, Name: "SweetSource", Cost: dec("5.00")},
	}
	svc := NewDistributorService(repo, items)

	quote, err := svc.CheapestRestock(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(2), quote.DistributorID, "tie on cost goes to the lower distributor id")
	assert.Equal(t, "Bulk Direct", quote.DistributorName)
	assert.Equal(t, 10, quote.Quantity)
	assert.True(t, quote.UnitCost.Equal(dec("3.00")))
	assert.True(t, quote.TotalCost.Equal(dec("30.00")))
}

func TestCheapestRestockNoOffers(t *testing.T) {
	items := newStubItemRepo("Sour Gummies")
	repo := newStubDistributorRepo("SweetSource")
	svc := NewDistributorService(repo, items)

	_, err := svc.CheapestRestock(context.Background(), 1, 5)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "no distributors offer this item")
}

func TestCheapestRestockUnknownItem(t *testing.T) {
	svc := NewDistributorService(newStubDistributorRepo(), newStubItemRepo())

	_, err := svc.CheapestRestock(context.Background(), 99, 5)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

// ─── Catalog entries ─────────────────────────────────────────────────────────

func TestAddCatalogEntry(t *testing.T) {
	items := newStubItemRepo("Sour Gummies")
	repo := newStubDistributorRepo("SweetSource")
	svc := NewDistributorService(repo, items)

	cost := dec("1.25")
	resp, err := svc.AddCatalogEntry(context.Background(), 1, dto.AddCatalogEntryRequest{ItemID: 1, Cost: &cost})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.DistributorID)
	assert.True(t, resp.Cost.Equal(cost))
}

func TestAddCatalogEntryUnknownDistributor(t *testing.T) {
	items := newStubItemRepo("Sour Gummies")
	svc := NewDistributorService(newStubDistributorRepo(), items)

	cost := dec("1.25")
	_, err := svc.AddCatalogEntry(context.Background(), 42, dto.AddCatalogEntryRequest{ItemID: 1, Cost: &cost})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "distributor 42")
}

func TestAddCatalogEntryUnknownItem(t *testing.T) {
	repo := newStubDistributorRepo("SweetSource")
	svc := NewDistributorService(repo, newStubItemRepo())

	cost := dec("1.25")
	_, err := svc.AddCatalogEntry(context.Background(), 1, dto.AddCatalogEntryRequest{ItemID: 7, Cost: &cost})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "item 7")
}

func TestAddCatalogEntryDuplicatePair(t *testing.T) {
	items := newStubItemRepo("Sour Gummies")
	repo := newStubDistributorRepo("SweetSource")
	repo.entries = append(repo.entries, &model.CatalogEntry{ID: 1, DistributorID: 1, ItemID: 1, Cost: dec("1.25")})
	svc := NewDistributorService(repo, items)

	newCost := dec("9.99")
	_, err := svc.AddCatalogEntry(context.Background(), 1, dto.AddCatalogEntryRequest{ItemID: 1, Cost: &newCost})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// The existing price must be untouched and no insert attempted.
	assert.Zero(t, repo.createCalls)
	assert.True(t, repo.entries[0].Cost.Equal(dec("1.25")))
}

func TestUpdateCatalogPriceMissingEntry(t *testing.T) {
	repo := newStubDistributorRepo("SweetSource")
	svc := NewDistributorService(repo, newStubItemRepo("Sour Gummies"))

	cost := dec("2.00")
	_, err := svc.UpdateCatalogPrice(context.Background(), 1, 1, dto.UpdateCatalogPriceRequest{Cost: &cost})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

// ─── Delete ──────────────────────────────────────────────────────────────────

func TestDeleteDistributor(t *testing.T) {
	repo := newStubDistributorRepo("SweetSource")
	repo.deleteRemoved = 3
	svc := NewDistributorService(repo, newStubItemRepo())

	resp, err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "SweetSource", resp.Name)
	assert.Equal(t, int64(3), resp.EntriesRemoved)
}

func TestDeleteDistributorUnknown(t *testing.T) {
	svc := NewDistributorService(newStubDistributorRepo(), newStubItemRepo())

	_, err := svc.Delete(context.Background(), 8)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDeleteDistributorConcurrentDelete(t *testing.T) {
	repo := newStubDistributorRepo("SweetSource")
	repo.deleteErr = gorm.ErrRecordNotFound
	svc := NewDistributorService(repo, newStubItemRepo())

	_, err := svc.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}
