package usecase

import (
	"context"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// PlaceOrderInput adds a menu item to the caller's cart at a restaurant,
// creating the cart when none is open.
type PlaceOrderInput struct {
	RestaurantID uuid.UUID `json:"restaurant_id" validate:"required"`
	MenuItemID   uuid.UUID `json:"menu_item_id" validate:"required"`
	Quantity     int       `json:"quantity" validate:"omitempty,min=1"`
}

// AddOrderItemInput adds a menu item to an existing open order.
type AddOrderItemInput struct {
	OrderID    uuid.UUID `json:"order_id" validate:"required"`
	MenuItemID uuid.UUID `json:"menu_item_id" validate:"required"`
	Quantity   int       `json:"quantity" validate:"required,min=1"`
}

// AddressInput defines a delivery address.
type AddressInput struct {
	AddressLine1 string `json:"address_line1" validate:"required"`
	AddressLine2 string `json:"address_line2"`
	PhoneNumber  string `json:"phone_number" validate:"required,max=12"`
	Email        string `json:"email" validate:"required,email"`
	Saved        bool   `json:"saved"`
}

// --- Output DTOs ---

// OrderLine pairs an order line with the menu item details it references.
type OrderLine struct {
	Item          *entity.OrderItem
	MenuItemName  string
	MenuItemPrice decimal.Decimal
}

// OrderDetails returns an order together with its resolved lines.
type OrderDetails struct {
	Order *entity.Order
	Lines []OrderLine
}

// OrderUsecase defines the interface for order and cart business operations.
// The unpaid order per (user, restaurant) acts as the cart; paid orders are
// immutable to every cart mutation here.
type OrderUsecase interface {
	// PlaceOrder merges the item into the caller's open cart at the
	// restaurant, creating the cart first when none exists.
	PlaceOrder(ctx context.Context, userID uuid.UUID, input *PlaceOrderInput) (*entity.Order, error)

	// AddOrderItem merges the item into an existing open order owned by
	// the caller and recomputes the total.
	AddOrderItem(ctx context.Context, userID uuid.UUID, input *AddOrderItemInput) (*entity.OrderItem, error)

	// ReduceOrderItemQuantity decrements a line by one. When the decrement
	// reaches zero the line is removed and nil is returned.
	ReduceOrderItemQuantity(ctx context.Context, userID uuid.UUID, orderItemID uuid.UUID) (*entity.OrderItem, error)

	// DeleteOrderItem removes a line regardless of its quantity.
	DeleteOrderItem(ctx context.Context, userID uuid.UUID, orderItemID uuid.UUID) error

	// AddOrderAddress creates a delivery address for the caller. Saved
	// addresses are capped per user.
	AddOrderAddress(ctx context.Context, userID uuid.UUID, input *AddressInput) (*entity.OrderAddress, error)

	// EditOrderAddress updates an address owned by the caller.
	EditOrderAddress(ctx context.Context, userID uuid.UUID, addressID uuid.UUID, input *AddressInput) (*entity.OrderAddress, error)

	// GetSavedAddresses retrieves the caller's saved addresses.
	GetSavedAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.OrderAddress, error)

	// GetOrderHistory retrieves the caller's paid orders, newest first.
	GetOrderHistory(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// GetOrdersByStatus retrieves the caller's orders in the given status.
	GetOrdersByStatus(ctx context.Context, userID uuid.UUID, status entity.OrderStatus) ([]*entity.Order, error)

	// GetOrderDetails retrieves an order owned by the caller together with
	// its lines resolved against the menu.
	GetOrderDetails(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) (*OrderDetails, error)

	// GetOrderItems retrieves the lines of an order owned by the caller.
	GetOrderItems(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) ([]*entity.OrderItem, error)

	// UpdateOrderStatus moves a paid order along the status lifecycle.
	// Restaurant admin of the order's restaurant only.
	UpdateOrderStatus(ctx context.Context, caller Principal, orderID uuid.UUID, next entity.OrderStatus) (*entity.Order, error)

	// MarkOrderPaid seals the caller's cart, making it immutable and
	// visible in the order history.
	MarkOrderPaid(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) (*entity.Order, error)
}
