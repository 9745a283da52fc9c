package usecase

import (
	"context"
	"time"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FilterRestaurantsInput holds the optional, conjunctively combined
// restaurant filters. Nil or empty fields are not applied.
type FilterRestaurantsInput struct {
	Name       *string          `json:"name"`
	CuisineIDs []uuid.UUID      `json:"cuisine_ids"`
	OpenNow    bool             `json:"open_now"`
	MinRating  *decimal.Decimal `json:"min_rating"`

	// Now supplies the instant for the open-now comparison. The zero
	// value means time.Now().
	Now time.Time `json:"-"`
}

// RestaurantUsecase defines the customer-facing read surface of the
// catalog. Archived restaurants, menus and items are invisible here.
type RestaurantUsecase interface {
	// GetRestaurantInfo retrieves an active restaurant. NotFound when
	// absent or archived.
	GetRestaurantInfo(ctx context.Context, restaurantID uuid.UUID) (*entity.Restaurant, error)

	// ListRestaurants retrieves all active restaurants.
	ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error)

	// ListRestaurantsByCuisine retrieves the active restaurants serving
	// the cuisine.
	ListRestaurantsByCuisine(ctx context.Context, cuisineID uuid.UUID) ([]*entity.Restaurant, error)

	// FilterRestaurants retrieves the active restaurants matching every
	// supplied filter.
	FilterRestaurants(ctx context.Context, input *FilterRestaurantsInput) ([]*entity.Restaurant, error)

	// ListCuisines retrieves all cuisines.
	ListCuisines(ctx context.Context) ([]*entity.Cuisine, error)

	// GetMenu retrieves a menu by ID. NotFound when absent.
	GetMenu(ctx context.Context, menuID uuid.UUID) (*entity.Menu, error)

	// ListRestaurantMenus retrieves a restaurant's active menus.
	ListRestaurantMenus(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Menu, error)

	// ListArchivedRestaurantMenus retrieves a restaurant's archived menus.
	// Restaurant admin only.
	ListArchivedRestaurantMenus(ctx context.Context, caller Principal, restaurantID uuid.UUID) ([]*entity.Menu, error)

	// GetMenuItem retrieves a menu item by ID. NotFound when absent.
	GetMenuItem(ctx context.Context, itemID uuid.UUID) (*entity.MenuItem, error)

	// ListMenuItems retrieves a menu's active items.
	ListMenuItems(ctx context.Context, menuID uuid.UUID) ([]*entity.MenuItem, error)
}
