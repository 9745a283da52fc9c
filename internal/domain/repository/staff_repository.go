package repository

import (
	"context"
	"errors"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStaffNotFound is returned when no staff record links the user to the restaurant.
var ErrStaffNotFound = errors.New("restaurant staff record not found")

// ErrStaffAlreadyExists is returned when the (user, restaurant) pair already has a record.
var ErrStaffAlreadyExists = errors.New("restaurant staff record already exists")

// StaffRepository defines the standard operations for restaurant staff persistence.
type StaffRepository interface {
	// FindByUserAndRestaurant retrieves the staff record for a (user, restaurant) pair.
	FindByUserAndRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) (*entity.RestaurantStaff, error)

	// FindByUser retrieves every staff record for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RestaurantStaff, error)

	// Create persists a new staff record.
	Create(ctx context.Context, staff *entity.RestaurantStaff) error

	// Update modifies an existing staff record.
	Update(ctx context.Context, staff *entity.RestaurantStaff) error
}
