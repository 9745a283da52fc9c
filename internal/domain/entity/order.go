// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order once it has been placed.
type OrderStatus string

const (
	// OrderStatusPending means the order has been placed and awaits the restaurant.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusAccepted means the restaurant has accepted the order.
	OrderStatusAccepted OrderStatus = "accepted"
	// OrderStatusPreparing means the kitchen is working on the order.
	OrderStatusPreparing OrderStatus = "preparing"
	// OrderStatusDelivered means the order reached the customer. Terminal.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled means the order was cancelled. Terminal.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// validOrderTransitions is the authoritative state machine definition.
// Any non-terminal state may move to cancelled.
var validOrderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusAccepted, OrderStatusCancelled},
	OrderStatusAccepted:  {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	_, ok := validOrderTransitions[s]

	return ok
}

// IsTerminal reports whether no further transitions are possible.
func (s OrderStatus) IsTerminal() bool {
	next, ok := validOrderTransitions[s]

	return ok && len(next) == 0
}

// CanTransitionTo reports whether the status may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// NextStatuses returns all statuses reachable from s.
func (s OrderStatus) NextStatuses() []OrderStatus {
	return validOrderTransitions[s]
}

// Order is a customer's order at one restaurant. While it is pending and
// unpaid the order acts as the cart: at most one such order exists per
// (user, restaurant) pair, and only open carts accept cart mutations.
// A cancelled unpaid order is terminal, not a cart.
type Order struct {
	ID           uuid.UUID       // The Global Unique Identifier (GUID) for the order.
	OrderNumber  string          // Opaque, randomly generated public identifier.
	UserID       uuid.UUID       // The ordering customer.
	RestaurantID uuid.UUID       // The restaurant the order is placed at.
	Status       OrderStatus     // Current lifecycle state.
	TotalPrice   decimal.Decimal // Sum of line item quantities times unit prices.
	Paid         bool            // True once payment completed; paid orders are immutable to cart operations.
	AddressID    *uuid.UUID      // Optional delivery address.
	Items        []OrderItem     // The order's line items, when loaded.
	CreatedAt    time.Time       // Timestamp of when the order was created.
	UpdatedAt    time.Time       // Timestamp of the last modification.
}

// IsCart reports whether the order is still an open, mutable cart. An
// order stops being a cart the moment it is paid or leaves pending, so a
// cancelled unpaid order is immutable like any other settled order.
func (o *Order) IsCart() bool {
	return !o.Paid && o.Status == OrderStatusPending
}

// RecalculateTotal recomputes TotalPrice from the loaded line items.
func (o *Order) RecalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	o.TotalPrice = total
}

// OrderItem is one (menu item, quantity) line within an order. At most one
// line exists per (order, menu item) pair; repeated additions merge into
// the existing line.
type OrderItem struct {
	ID         uuid.UUID       // The Global Unique Identifier (GUID) for the line.
	OrderID    uuid.UUID       // The owning order.
	MenuItemID uuid.UUID       // The referenced menu item.
	Quantity   int             // Number of units, always >= 1 while the line exists.
	UnitPrice  decimal.Decimal // Menu item price captured when the line was first added.
	CreatedAt  time.Time       // Timestamp of when the line was created.
	UpdatedAt  time.Time       // Timestamp of the last modification.
}

// LineTotal returns quantity times unit price.
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderAddress is a delivery address owned by a user. Addresses flagged
// saved are reusable across orders, capped at MaxSavedAddresses per user.
type OrderAddress struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the address.
	UserID       uuid.UUID // The owning user.
	AddressLine1 string    // First address line.
	AddressLine2 string    // Optional second address line.
	PhoneNumber  string    // Contact phone for the delivery.
	Email        string    // Contact email for the delivery.
	Saved        bool      // True when the address is kept for reuse.
	CreatedAt    time.Time // Timestamp of when the address was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// MaxSavedAddresses is the cap on simultaneously saved addresses per user.
const MaxSavedAddresses = 2
