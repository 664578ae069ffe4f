package model

// Item is a candy product known to the system. Items are created once and
// never renamed; the store assigns the id.
type Item struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

func (Item) TableName() string { return "items" }

// InventoryRecord is the stocking slot for one item. An item may exist
// without a record (not yet stocked); at most one record exists per item.
type InventoryRecord struct {
	ID       int64 `gorm:"primaryKey"`
	ItemID   int64 `gorm:"column:item;uniqueIndex;not null"`
	Stock    int   `gorm:"not null"`
	Capacity int   `gorm:"not null"`

	Item *Item `gorm:"foreignKey:ItemID"`
}

func (InventoryRecord) TableName() string { return "inventory" }
