package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateDistributorRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

type AddCatalogEntryRequest struct {
	ItemID int64            `json:"item_id" validate:"required,gt=0"`
	Cost   *decimal.Decimal `json:"cost"    validate:"required,min=0"`
}

type UpdateCatalogPriceRequest struct {
	Cost *decimal.Decimal `json:"cost" validate:"required,min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DistributorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DistributorItem is one row of a distributor's catalog: the item plus the
// distributor's unit cost for it.
type DistributorItem struct {
	ID   int64           `json:"id"`
	Name string          `json:"name"`
	Cost decimal.Decimal `json:"cost"`
}

// ItemOffering is one distributor's offer for a given item.
type ItemOffering struct {
	ID   int64           `json:"id"`
	Name string          `json:"name"`
	Cost decimal.Decimal `json:"cost"`
}

type CatalogEntryResponse struct {
	DistributorID int64           `json:"distributor_id"`
	ItemID        int64           `json:"item_id"`
	Cost          decimal.Decimal `json:"cost"`
}

// RestockQuote is the single cheapest way to buy Quantity units of an item.
type RestockQuote struct {
	DistributorID   int64           `json:"distributor_id"`
	DistributorName string          `json:"distributor_name"`
	ItemID          int64           `json:"item_id"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	Quantity        int             `json:"quantity"`
	TotalCost       decimal.Decimal `json:"total_cost"`
}

type DeleteDistributorResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	EntriesRemoved int64  `json:"catalog_entries_removed"`
}
