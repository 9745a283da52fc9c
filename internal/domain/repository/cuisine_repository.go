package repository

import (
	"context"
	"errors"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCuisineNotFound is returned when a cuisine does not exist.
var ErrCuisineNotFound = errors.New("cuisine not found")

// ErrCuisineAlreadyExists is returned when the cuisine name is taken.
var ErrCuisineAlreadyExists = errors.New("cuisine already exists")

// CuisineRepository defines the standard operations for cuisine persistence.
type CuisineRepository interface {
	// FindByID retrieves a cuisine by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cuisine, error)

	// List retrieves all cuisines ordered by name.
	List(ctx context.Context) ([]*entity.Cuisine, error)

	// Create persists a new cuisine.
	Create(ctx context.Context, cuisine *entity.Cuisine) error
}
