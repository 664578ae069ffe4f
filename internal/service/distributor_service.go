package service

import (
	"context"
	"errors"

	"candystock/internal/apperr"
	"candystock/internal/dto"
	"candystock/internal/model"
	"candystock/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DistributorService covers distributor CRUD, catalog pricing, the restock
// optimizer, and the transactional cascade delete.
type DistributorService interface {
	Create(ctx context.Context, req dto.CreateDistributorRequest) (*dto.DistributorResponse, error)
	List(ctx context.Context) ([]dto.DistributorResponse, error)
	ListCatalog(ctx context.Context, distributorID int64) ([]dto.DistributorItem, error)
	ListOfferings(ctx context.Context, itemID int64) ([]dto.ItemOffering, error)
	AddCatalogEntry(ctx context.Context, distributorID int64, req dto.AddCatalogEntryRequest) (*dto.CatalogEntryResponse, error)
	UpdateCatalogPrice(ctx context.Context, distributorID, itemID int64, req dto.UpdateCatalogPriceRequest) (*dto.CatalogEntryResponse, error)
	CheapestRestock(ctx context.Context, itemID int64, quantity int) (*dto.RestockQuote, error)
	Delete(ctx context.Context, id int64) (*dto.DeleteDistributorResponse, error)
}

type distributorService struct {
	repo  repository.DistributorRepository
	items repository.ItemRepository
}

func NewDistributorService(repo repository.DistributorRepository, items repository.ItemRepository) DistributorService {
	return &distributorService{repo: repo, items: items}
}

func (s *distributorService) Create(ctx context.Context, req dto.CreateDistributorRequest) (*dto.DistributorResponse, error) {
	d := &model.Distributor{Name: req.Name}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, apperr.Database(err, "failed to create distributor")
	}
	return &dto.DistributorResponse{ID: d.ID, Name: d.Name}, nil
}

func (s *distributorService) List(ctx context.Context) ([]dto.DistributorResponse, error) {
	ds, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Database(err, "failed to list distributors")
	}
	resp := make([]dto.DistributorResponse, 0, len(ds))
	for _, d := range ds {
		resp = append(resp, dto.DistributorResponse{ID: d.ID, Name: d.Name})
	}
	return resp, nil
}

func (s *distributorService) ListCatalog(ctx context.Context, distributorID int64) ([]dto.DistributorItem, error) {
	rows, err := s.repo.ListCatalog(ctx, distributorID)
	if err != nil {
		return nil, apperr.Database(err, "failed to list distributor catalog")
	}
	return rows, nil
}

func (s *distributorService) ListOfferings(ctx context.Context, itemID int64) ([]dto.ItemOffering, error) {
	rows, err := s.repo.ListOfferings(ctx, itemID)
	if err != nil {
		return nil, apperr.Database(err, "failed to list offerings")
	}
	return rows, nil
}

// AddCatalogEntry runs three sequential checks — distributor exists, item
// exists, pair not yet listed — each with its own failure mode, before the
// insert executes.
func (s *distributorService) AddCatalogEntry(ctx context.Context, distributorID int64, req dto.AddCatalogEntryRequest) (*dto.CatalogEntryResponse, error) {
	if _, err := s.repo.FindByID(ctx, distributorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("distributor %d does not exist", distributorID)
		}
		return nil, apperr.Database(err, "failed to verify distributor")
	}

	if _, err := s.items.FindByID(ctx, req.ItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("item %d does not exist", req.ItemID)
		}
		return nil, apperr.Database(err, "failed to verify item")
	}

	if _, err := s.repo.FindEntry(ctx, distributorID, req.ItemID); err == nil {
		return nil, apperr.Conflictf("distributor %d already offers item %d", distributorID, req.ItemID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Database(err, "failed to verify catalog entry")
	}

	e := &model.CatalogEntry{
		DistributorID: distributorID,
		ItemID:        req.ItemID,
		Cost:          *req.Cost,
	}
	if err := s.repo.CreateEntry(ctx, e); err != nil {
		return nil, apperr.Database(err, "failed to add catalog entry")
	}
	return &dto.CatalogEntryResponse{DistributorID: distributorID, ItemID: req.ItemID, Cost: e.Cost}, nil
}

func (s *distributorService) UpdateCatalogPrice(ctx context.Context, distributorID, itemID int64, req dto.UpdateCatalogPriceRequest) (*dto.CatalogEntryResponse, error) {
	if _, err := s.repo.FindEntry(ctx, distributorID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("distributor %d does not offer item %d", distributorID, itemID)
		}
		return nil, apperr.Database(err, "failed to verify catalog entry")
	}

	if err := s.repo.UpdateEntryCost(ctx, distributorID, itemID, *req.Cost); err != nil {
		return nil, apperr.Database(err, "failed to update catalog price")
	}
	return &dto.CatalogEntryResponse{DistributorID: distributorID, ItemID: itemID, Cost: *req.Cost}, nil
}

// CheapestRestock finds the single cheapest way to buy quantity units of an
// item. One pass over the offers keeps a running minimum of total cost
// (unit cost × quantity); a strict comparison means the first offer seen wins
// exact ties, and the source query orders by ascending unit cost then
// distributor id, so the result is deterministic.
func (s *distributorService) CheapestRestock(ctx context.Context, itemID int64, quantity int) (*dto.RestockQuote, error) {
	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("item %d does not exist", itemID)
		}
		return nil, apperr.Database(err, "failed to verify item")
	}

	offers, err := s.repo.ListOfferings(ctx, itemID)
	if err != nil {
		return nil, apperr.Database(err, "failed to fetch offerings")
	}
	if len(offers) == 0 {
		return nil, apperr.NotFound("no distributors offer this item")
	}

	qty := decimal.NewFromInt(int64(quantity))
	best := offers[0]
	bestTotal := best.Cost.Mul(qty)
	for _, o := range offers[1:] {
		total := o.Cost.Mul(qty)
		if total.LessThan(bestTotal) {
			best = o
			bestTotal = total
		}
	}

	return &dto.RestockQuote{
		DistributorID:   best.ID,
		DistributorName: best.Name,
		ItemID:          itemID,
		UnitCost:        best.Cost,
		Quantity:        quantity,
		TotalCost:       bestTotal,
	}, nil
}

// Delete removes a distributor and every catalog entry that references it as
// one atomic unit. The name is read before the delete so the response can
// still report it; a zero-row distributor delete inside the transaction means
// a concurrent delete won the race, and everything rolls back.
func (s *distributorService) Delete(ctx context.Context, id int64) (*dto.DeleteDistributorResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("distributor %d does not exist", id)
		}
		return nil, apperr.Database(err, "failed to verify distributor")
	}

	removed, err := s.repo.DeleteWithCatalog(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Conflictf("distributor %d was deleted concurrently", id)
		}
		return nil, apperr.Database(err, "failed to delete distributor")
	}

	return &dto.DeleteDistributorResponse{ID: d.ID, Name: d.Name, EntriesRemoved: removed}, nil
}
