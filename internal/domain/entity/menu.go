// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Menu is a named collection of menu items belonging to one restaurant.
// A menu always references a cuisine. Deleting a menu cascades to its items.
type Menu struct {
	ID           uuid.UUID       // The Global Unique Identifier (GUID) for the menu.
	RestaurantID uuid.UUID       // The owning restaurant.
	Name         string          // Display name, e.g., "Lunch Specials".
	Description  string          // Free-text description.
	CuisineID    uuid.UUID       // The cuisine this menu belongs to.
	Status       LifecycleStatus // active or archived.
	CreatedAt    time.Time       // Timestamp of when the menu was created.
	UpdatedAt    time.Time       // Timestamp of the last modification.
}

// MenuItem is a single orderable dish on a menu.
type MenuItem struct {
	ID          uuid.UUID       // The Global Unique Identifier (GUID) for the item.
	MenuID      uuid.UUID       // The owning menu.
	Name        string          // Display name of the dish.
	Description string          // Free-text description.
	Price       decimal.Decimal // Unit price, non-negative, two decimal places.
	Status      LifecycleStatus // active or archived.
	CreatedAt   time.Time       // Timestamp of when the item was created.
	UpdatedAt   time.Time       // Timestamp of the last modification.
}
