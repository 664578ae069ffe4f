package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AddInventoryRequest struct {
	ItemID   int64 `json:"item_id"  validate:"required,gt=0"`
	Stock    *int  `json:"stock"    validate:"required,min=0"`
	Capacity *int  `json:"capacity" validate:"required,gt=0"`
}

type UpdateInventoryRequest struct {
	Stock    *int `json:"stock"    validate:"required,min=0"`
	Capacity *int `json:"capacity" validate:"required,gt=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// StockedItem is one row of the items×inventory join used by every
// inventory listing.
type StockedItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	Capacity int    `json:"capacity"`
}

type InventoryResponse struct {
	ItemID   int64 `json:"item_id"`
	Stock    int   `json:"stock"`
	Capacity int   `json:"capacity"`
}
