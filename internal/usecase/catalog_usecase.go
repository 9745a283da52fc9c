package usecase

import (
	"context"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// RegisterRestaurantInput defines the data required to register a restaurant.
// Opening hours are zero-padded "HH:MM" strings.
type RegisterRestaurantInput struct {
	Name        string      `json:"name" validate:"required,max=200"`
	Description string      `json:"description"`
	Address     string      `json:"address" validate:"required"`
	PhoneNumber string      `json:"phone_number" validate:"omitempty,max=12"`
	Email       string      `json:"email" validate:"required,email"`
	OpeningTime string      `json:"opening_time" validate:"required"`
	ClosingTime string      `json:"closing_time" validate:"required"`
	CuisineIDs  []uuid.UUID `json:"cuisine_ids"`
}

// UpdateRestaurantInput carries a partial restaurant patch. Nil fields are
// left unchanged; a non-nil CuisineIDs replaces the cuisine set.
type UpdateRestaurantInput struct {
	Name        *string      `json:"name" validate:"omitempty,max=200"`
	Description *string      `json:"description"`
	Address     *string      `json:"address"`
	PhoneNumber *string      `json:"phone_number" validate:"omitempty,max=12"`
	Email       *string      `json:"email" validate:"omitempty,email"`
	OpeningTime *string      `json:"opening_time"`
	ClosingTime *string      `json:"closing_time"`
	CuisineIDs  *[]uuid.UUID `json:"cuisine_ids"`
}

// AssignStaffInput links a user to a restaurant with a per-restaurant role.
type AssignStaffInput struct {
	RestaurantID uuid.UUID        `json:"restaurant_id" validate:"required"`
	UserID       uuid.UUID        `json:"user_id" validate:"required"`
	Role         entity.StaffRole `json:"role" validate:"required"`
}

// CreateMenuInput defines the data required to create a menu.
type CreateMenuInput struct {
	RestaurantID uuid.UUID `json:"restaurant_id" validate:"required"`
	Name         string    `json:"name" validate:"required,max=200"`
	Description  string    `json:"description"`
	CuisineID    uuid.UUID `json:"cuisine_id" validate:"required"`
}

// UpdateMenuInput carries a partial menu patch.
type UpdateMenuInput struct {
	Name        *string    `json:"name" validate:"omitempty,max=200"`
	Description *string    `json:"description"`
	CuisineID   *uuid.UUID `json:"cuisine_id"`
}

// CreateMenuItemInput defines the data required to create a menu item.
type CreateMenuItemInput struct {
	MenuID      uuid.UUID       `json:"menu_id" validate:"required"`
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
}

// UpdateMenuItemInput carries a partial menu item patch.
type UpdateMenuItemInput struct {
	Name        *string          `json:"name" validate:"omitempty,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

// CatalogUsecase defines the administrative write surface of the catalog:
// restaurants, staff assignments, cuisines, menus and menu items. Every
// operation takes the caller so the role checks happen per request.
type CatalogUsecase interface {
	// RegisterRestaurant creates a restaurant. Platform admin only.
	RegisterRestaurant(ctx context.Context, caller Principal, input *RegisterRestaurantInput) (*entity.Restaurant, error)

	// UpdateRestaurantInfo applies a partial patch. Restaurant admin only.
	UpdateRestaurantInfo(ctx context.Context, caller Principal, restaurantID uuid.UUID, input *UpdateRestaurantInput) (*entity.Restaurant, error)

	// DisableRestaurant archives a restaurant, hiding it from customers.
	// Platform admin only.
	DisableRestaurant(ctx context.Context, caller Principal, restaurantID uuid.UUID) error

	// AssignStaff grants a user a role at a restaurant. Platform admin only.
	AssignStaff(ctx context.Context, caller Principal, input *AssignStaffInput) (*entity.RestaurantStaff, error)

	// CreateCuisine adds a cuisine category. Platform admin only.
	CreateCuisine(ctx context.Context, caller Principal, name string) (*entity.Cuisine, error)

	// CreateMenu creates a menu on a restaurant. Restaurant admin only.
	CreateMenu(ctx context.Context, caller Principal, input *CreateMenuInput) (*entity.Menu, error)

	// UpdateMenu applies a partial patch. Restaurant admin only.
	UpdateMenu(ctx context.Context, caller Principal, menuID uuid.UUID, input *UpdateMenuInput) (*entity.Menu, error)

	// ArchiveMenu hides a menu without destroying order history references.
	// Restaurant admin only.
	ArchiveMenu(ctx context.Context, caller Principal, menuID uuid.UUID) error

	// DeleteMenu removes a menu permanently, cascading to its items.
	// Restaurant admin only.
	DeleteMenu(ctx context.Context, caller Principal, menuID uuid.UUID) error

	// CreateMenuItem adds a dish to a menu. Restaurant admin only.
	CreateMenuItem(ctx context.Context, caller Principal, input *CreateMenuItemInput) (*entity.MenuItem, error)

	// UpdateMenuItem applies a partial patch. Restaurant admin only.
	UpdateMenuItem(ctx context.Context, caller Principal, itemID uuid.UUID, input *UpdateMenuItemInput) (*entity.MenuItem, error)

	// ArchiveMenuItem hides a menu item. Restaurant admin only.
	ArchiveMenuItem(ctx context.Context, caller Principal, itemID uuid.UUID) error

	// DeleteMenuItem removes a menu item permanently. Restaurant admin only.
	DeleteMenuItem(ctx context.Context, caller Principal, itemID uuid.UUID) error
}
