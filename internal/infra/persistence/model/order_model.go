package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. The partial unique index on
// (user_id, restaurant_id) where paid = false and status = 'pending'
// enforces the one-open-cart invariant at the schema level, so concurrent
// cart creation cannot race into duplicates. Cancelled unpaid orders drop
// out of the index and stop blocking a fresh cart for the pair.
type OrderModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderNumber  string          `gorm:"type:varchar(20);uniqueIndex;not null"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_open_cart,where:paid = false AND status = 'pending'"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_open_cart,where:paid = false AND status = 'pending'"`
	Status       string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	TotalPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Paid         bool            `gorm:"not null;default:false"`
	AddressID    *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. The composite unique
// index guarantees one line per (order, menu item) pair; additions merge
// through an ON CONFLICT upsert instead of creating duplicate rows.
type OrderItemModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_order_line"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_order_line"`
	Quantity   int             `gorm:"not null;check:quantity >= 1"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// OrderAddressModel mirrors the 'order_addresses' table.
type OrderAddressModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	AddressLine1 string    `gorm:"type:text;not null"`
	AddressLine2 string    `gorm:"type:text"`
	PhoneNumber  string    `gorm:"type:varchar(12);not null"`
	Email        string    `gorm:"type:varchar(255);not null"`
	Saved        bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderAddressModel) TableName() string {
	return "order_addresses"
}
