package repository

import (
	"context"
	"errors"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an order address does not exist.
var ErrAddressNotFound = errors.New("order address not found")

// AddressRepository defines the standard operations for order address persistence.
type AddressRepository interface {
	// FindByID retrieves an address by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.OrderAddress, error)

	// ListSavedByUser retrieves a user's saved addresses.
	ListSavedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.OrderAddress, error)

	// CountSavedByUserForUpdate counts a user's saved addresses while
	// holding a per-user lock for the rest of the transaction, so the
	// saved-address cap check and the subsequent write cannot race a
	// concurrent transaction's insert.
	CountSavedByUserForUpdate(ctx context.Context, userID uuid.UUID) (int64, error)

	// Create persists a new address.
	Create(ctx context.Context, address *entity.OrderAddress) error

	// Update modifies an existing address.
	Update(ctx context.Context, address *entity.OrderAddress) error
}
