package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuModel mirrors the 'menus' table.
type MenuModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(200);not null"`
	Description  string    `gorm:"type:text"`
	CuisineID    uuid.UUID `gorm:"type:uuid;not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Items []MenuItemModel `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MenuModel) TableName() string {
	return "menus"
}

// MenuItemModel mirrors the 'menu_items' table.
type MenuItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	MenuID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status      string          `gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "menu_items"
}
