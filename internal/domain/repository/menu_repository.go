package repository

import (
	"context"
	"errors"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMenuNotFound is returned when a menu does not exist.
var ErrMenuNotFound = errors.New("menu not found")

// ErrMenuItemNotFound is returned when a menu item does not exist.
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuRepository defines the standard operations for menu persistence.
type MenuRepository interface {
	// FindByID retrieves a menu by ID regardless of lifecycle status.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Menu, error)

	// ListByRestaurant retrieves a restaurant's menus with the given status.
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, status entity.LifecycleStatus) ([]*entity.Menu, error)

	// Create persists a new menu.
	Create(ctx context.Context, menu *entity.Menu) error

	// Update modifies an existing menu.
	Update(ctx context.Context, menu *entity.Menu) error

	// Delete removes a menu permanently, cascading to its menu items.
	Delete(ctx context.Context, id uuid.UUID) error
}

// MenuItemRepository defines the standard operations for menu item persistence.
type MenuItemRepository interface {
	// FindByID retrieves a menu item by ID regardless of lifecycle status.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)

	// ListByMenu retrieves a menu's items with the given status.
	ListByMenu(ctx context.Context, menuID uuid.UUID, status entity.LifecycleStatus) ([]*entity.MenuItem, error)

	// Create persists a new menu item.
	Create(ctx context.Context, item *entity.MenuItem) error

	// Update modifies an existing menu item.
	Update(ctx context.Context, item *entity.MenuItem) error

	// Delete removes a menu item permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
