package service

import (
	"context"
	"errors"

	"candystock/internal/apperr"
	"candystock/internal/dto"
	"candystock/internal/model"
	"candystock/internal/repository"

	"gorm.io/gorm"
)

// InventoryService defines business operations over items and their
// inventory slots.
type InventoryService interface {
	CreateItem(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error)
	ListItems(ctx context.Context) ([]dto.ItemResponse, error)

	ListStocked(ctx context.Context) ([]dto.StockedItem, error)
	ListOutOfStock(ctx context.Context) ([]dto.StockedItem, error)
	ListOverstocked(ctx context.Context) ([]dto.StockedItem, error)
	ListLowStock(ctx context.Context) ([]dto.StockedItem, error)
	GetStockedItem(ctx context.Context, itemID int64) (*dto.StockedItem, error)

	AddToInventory(ctx context.Context, req dto.AddInventoryRequest) (*dto.InventoryResponse, error)
	UpdateInventory(ctx context.Context, itemID int64, req dto.UpdateInventoryRequest) (*dto.InventoryResponse, error)
	RemoveFromInventory(ctx context.Context, itemID int64) error
}

type inventoryService struct {
	items repository.ItemRepository
	inv   repository.InventoryRepository
}

func NewInventoryService(items repository.ItemRepository, inv repository.InventoryRepository) InventoryService {
	return &inventoryService{items: items, inv: inv}
}

func (s *inventoryService) CreateItem(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error) {
	item := &model.Item{Name: req.Name}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, apperr.Database(err, "failed to create item")
	}
	return &dto.ItemResponse{ID: item.ID, Name: item.Name}, nil
}

func (s *inventoryService) ListItems(ctx context.Context) ([]dto.ItemResponse, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, apperr.Database(err, "failed to list items")
	}
	resp := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, dto.ItemResponse{ID: it.ID, Name: it.Name})
	}
	return resp, nil
}

func (s *inventoryService) ListStocked(ctx context.Context) ([]dto.StockedItem, error) {
	rows, err := s.inv.ListStocked(ctx)
	if err != nil {
		return nil, apperr.Database(err, "failed to list inventory")
	}
	return rows, nil
}

func (s *inventoryService) ListOutOfStock(ctx context.Context) ([]dto.StockedItem, error) {
	rows, err := s.inv.ListOutOfStock(ctx)
	if err != nil {
		return nil, apperr.Database(err, "failed to list out-of-stock items")
	}
	return rows, nil
}

func (s *inventoryService) ListOverstocked(ctx context.Context) ([]dto.StockedItem, error) {
	rows, err := s.inv.ListOverstocked(ctx)
	if err != nil {
		return nil, apperr.Database(err, "failed to list overstocked items")
	}
	return rows, nil
}

func (s *inventoryService) ListLowStock(ctx context.Context) ([]dto.StockedItem, error) {
	rows, err := s.inv.ListLowStock(ctx)
	if err != nil {
		return nil, apperr.Database(err, "failed to list low-stock items")
	}
	return rows, nil
}

func (s *inventoryService) GetStockedItem(ctx context.Context, itemID int64) (*dto.StockedItem, error) {
	row, err := s.inv.FindStockedByItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("item %d is not in inventory", itemID)
		}
		return nil, apperr.Database(err, "failed to fetch inventory item")
	}
	return row, nil
}

// AddToInventory creates the inventory slot for an item. Preconditions are
// checked in order: the item must exist, and it must not already be stocked.
func (s *inventoryService) AddToInventory(ctx context.Context, req dto.AddInventoryRequest) (*dto.InventoryResponse, error) {
	if _, err := s.items.FindByID(ctx, req.ItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("item %d does not exist", req.ItemID)
		}
		return nil, apperr.Database(err, "failed to verify item")
	}

	if _, err := s.inv.FindByItem(ctx, req.ItemID); err == nil {
		return nil, apperr.Conflictf("item %d is already in inventory", req.ItemID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Database(err, "failed to verify inventory")
	}

	rec := &model.InventoryRecord{
		ItemID:   req.ItemID,
		Stock:    *req.Stock,
		Capacity: *req.Capacity,
	}
	if err := s.inv.Create(ctx, rec); err != nil {
		return nil, apperr.Database(err, "failed to add item to inventory")
	}
	return &dto.InventoryResponse{ItemID: rec.ItemID, Stock: rec.Stock, Capacity: rec.Capacity}, nil
}

func (s *inventoryService) UpdateInventory(ctx context.Context, itemID int64, req dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	if _, err := s.inv.FindByItem(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("item %d is not in inventory", itemID)
		}
		return nil, apperr.Database(err, "failed to verify inventory")
	}

	if err := s.inv.Update(ctx, itemID, *req.Stock, *req.Capacity); err != nil {
		return nil, apperr.Database(err, "failed to update inventory")
	}
	return &dto.InventoryResponse{ItemID: itemID, Stock: *req.Stock, Capacity: *req.Capacity}, nil
}

func (s *inventoryService) RemoveFromInventory(ctx context.Context, itemID int64) error {
	if _, err := s.inv.FindByItem(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("item %d is not in inventory", itemID)
		}
		return apperr.Database(err, "failed to verify inventory")
	}
	if err := s.inv.DeleteByItem(ctx, itemID); err != nil {
		return apperr.Database(err, "failed to remove item from inventory")
	}
	return nil
}
