package repository

import (
	"context"
	"errors"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// ErrOrderItemNotFound is returned when an order line does not exist.
var ErrOrderItemNotFound = errors.New("order item not found")

// ErrDuplicateCart is returned when an unpaid order already exists for the
// (user, restaurant) pair. The partial unique index makes concurrent cart
// creation lose the race here instead of producing a duplicate.
var ErrDuplicateCart = errors.New("an open cart already exists for this restaurant")

// ErrInvalidQuantity is returned when a line write violates the positive
// quantity constraint.
var ErrInvalidQuantity = errors.New("order line quantity must be at least 1")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// FindByID retrieves an order by its unique ID, with line items loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindCartForUpdate retrieves the pending unpaid order for a
	// (user, restaurant) pair, acquiring a row lock that serializes
	// concurrent cart mutations for the duration of the surrounding
	// transaction. Paid and cancelled orders never match.
	FindCartForUpdate(ctx context.Context, userID, restaurantID uuid.UUID) (*entity.Order, error)

	// ListByUserAndStatus retrieves a user's orders in the given status.
	ListByUserAndStatus(ctx context.Context, userID uuid.UUID, status entity.OrderStatus) ([]*entity.Order, error)

	// ListPaidByUser retrieves a user's order history, newest first.
	ListPaidByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// Update modifies an existing order.
	Update(ctx context.Context, order *entity.Order) error
}

// OrderItemRepository defines the standard operations for order line persistence.
type OrderItemRepository interface {
	// FindByID retrieves an order line by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.OrderItem, error)

	// ListByOrder retrieves all lines of an order.
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)

	// Upsert inserts the line or, when a line for the (order, menu item)
	// pair already exists, adds the quantity to it. The stored row is
	// written back into item.
	Upsert(ctx context.Context, item *entity.OrderItem) error

	// Update modifies an existing line.
	Update(ctx context.Context, item *entity.OrderItem) error

	// Delete removes a line permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
