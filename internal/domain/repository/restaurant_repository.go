package repository

import (
	"context"
	"errors"
	"time"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrRestaurantNotFound is returned when a restaurant does not exist.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// ErrRestaurantAlreadyExists is returned when the name or email is taken.
var ErrRestaurantAlreadyExists = errors.New("restaurant already exists")

// RestaurantFilter holds the optional, conjunctively combined predicates
// for restaurant listing. Nil fields are not applied.
type RestaurantFilter struct {
	// Name filters by case-insensitive substring match.
	Name *string
	// CuisineIDs filters to restaurants serving any of the given cuisines.
	CuisineIDs []uuid.UUID
	// OpenAt filters to restaurants whose opening hours cover the
	// time-of-day component of the given instant.
	OpenAt *time.Time
	// MinRating filters to restaurants rated at or above the given value.
	MinRating *decimal.Decimal
}

// RestaurantRepository defines the standard operations for restaurant persistence.
type RestaurantRepository interface {
	// FindByID retrieves a restaurant by ID regardless of lifecycle status.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// FindActiveByID retrieves a restaurant by ID, failing when archived.
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// ListActive retrieves all active restaurants.
	ListActive(ctx context.Context) ([]*entity.Restaurant, error)

	// ListByCuisine retrieves all active restaurants serving the cuisine.
	ListByCuisine(ctx context.Context, cuisineID uuid.UUID) ([]*entity.Restaurant, error)

	// Filter retrieves active restaurants matching every supplied predicate.
	Filter(ctx context.Context, filter RestaurantFilter) ([]*entity.Restaurant, error)

	// Create persists a new restaurant with its cuisine associations.
	Create(ctx context.Context, restaurant *entity.Restaurant) error

	// Update modifies an existing restaurant.
	Update(ctx context.Context, restaurant *entity.Restaurant) error
}
