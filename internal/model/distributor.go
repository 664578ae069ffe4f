package model

import "github.com/shopspring/decimal"

// Distributor is a supplier that offers items at per-item prices.
type Distributor struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

func (Distributor) TableName() string { return "distributors" }

// CatalogEntry is one distributor's price offer for one item.
// A distributor lists a given item at most once.
type CatalogEntry struct {
	ID            int64           `gorm:"primaryKey"`
	DistributorID int64           `gorm:"column:distributor;not null;uniqueIndex:idx_catalog_pair"`
	ItemID        int64           `gorm:"column:item;not null;uniqueIndex:idx_catalog_pair"`
	Cost          decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Distributor *Distributor `gorm:"foreignKey:DistributorID"`
	Item        *Item        `gorm:"foreignKey:ItemID"`
}

func (CatalogEntry) TableName() string { return "distributor_prices" }
