package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusAccepted, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusPreparing, false},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusAccepted, OrderStatusPreparing, true},
		{OrderStatusAccepted, OrderStatusCancelled, true},
		{OrderStatusAccepted, OrderStatusDelivered, false},
		{OrderStatusAccepted, OrderStatusPending, false},
		{OrderStatusPreparing, OrderStatusDelivered, true},
		{OrderStatusPreparing, OrderStatusCancelled, true},
		{OrderStatusPreparing, OrderStatusAccepted, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusDelivered, false},
	}

	for _, tc := range cases {
		t.Run(tc.from.String()+"_to_"+tc.to.String(), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusAccepted.IsTerminal())
	assert.False(t, OrderStatusPreparing.IsTerminal())
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.True(t, OrderStatusCancelled.IsValid())
	assert.False(t, OrderStatus("shipped").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestOrder_RecalculateTotal(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{Quantity: 2, UnitPrice: decimal.RequireFromString("9.50")},
			{Quantity: 1, UnitPrice: decimal.RequireFromString("3.25")},
		},
	}

	order.RecalculateTotal()

	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("22.25")),
		"got total %s", order.TotalPrice)
}

func TestOrder_RecalculateTotal_Empty(t *testing.T) {
	order := &Order{}
	order.RecalculateTotal()

	assert.True(t, order.TotalPrice.IsZero())
}

func TestOrder_IsCart(t *testing.T) {
	order := &Order{Status: OrderStatusPending, Paid: false}
	require.True(t, order.IsCart())

	order.Paid = true
	assert.False(t, order.IsCart())

	// A cancelled unpaid order is settled, not an open cart.
	cancelled := &Order{Status: OrderStatusCancelled, Paid: false}
	assert.False(t, cancelled.IsCart())

	delivered := &Order{Status: OrderStatusDelivered, Paid: true}
	assert.False(t, delivered.IsCart())
}

func TestOrderItem_LineTotal(t *testing.T) {
	item := &OrderItem{Quantity: 3, UnitPrice: decimal.RequireFromString("4.10")}

	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("12.30")))
}
