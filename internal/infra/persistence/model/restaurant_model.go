package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantModel mirrors the 'restaurants' table. Opening hours are stored
// as zero-padded "HH:MM" strings, which order correctly under string
// comparison in SQL.
type RestaurantModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string          `gorm:"type:varchar(200);uniqueIndex;not null"`
	Description string          `gorm:"type:text"`
	Address     string          `gorm:"type:text;not null"`
	PhoneNumber string          `gorm:"type:varchar(12)"`
	Email       string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	OpeningTime string          `gorm:"type:varchar(5);not null"`
	ClosingTime string          `gorm:"type:varchar(5);not null"`
	Status      string          `gorm:"type:varchar(20);not null;default:'active';index"`
	Rating      decimal.Decimal `gorm:"type:decimal(2,1);not null;default:0.0"`
	CreatorID   uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Cuisines []CuisineModel         `gorm:"many2many:restaurant_cuisines"`
	Menus    []MenuModel            `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	Staff    []RestaurantStaffModel `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// CuisineModel mirrors the 'cuisines' table.
type CuisineModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name string    `gorm:"type:varchar(200);uniqueIndex;not null"`
}

// TableName explicitly sets the table name for GORM.
func (CuisineModel) TableName() string {
	return "cuisines"
}

// RestaurantStaffModel mirrors the 'restaurant_staff' table. The composite
// unique index guarantees at most one record per (user, restaurant) pair.
type RestaurantStaffModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_staff_user_restaurant"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_staff_user_restaurant"`
	Role         string    `gorm:"type:varchar(20);not null;default:'staff'"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantStaffModel) TableName() string {
	return "restaurant_staff"
}
