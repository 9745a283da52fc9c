package handler

import (
	"log/slog"
	"net/http"

	"savor/internal/delivery/http/response"
	"savor/internal/domain/entity"
	"savor/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UpdateOrderStatusInput defines the target status for a staff-driven
// lifecycle transition.
type UpdateOrderStatusInput struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// OrderHandler holds dependencies for order, cart and address handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// PlaceOrder handles the request to add an item to the caller's cart,
// creating the cart when none is open at the restaurant.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// AddOrderItem handles the request to merge an item into an open order.
func (h *OrderHandler) AddOrderItem(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.AddOrderItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order item input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.AddOrderItem(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Order item added successfully")
}

// ReduceOrderItem handles the request to decrement a line by one. The
// line disappears from the response once the quantity reaches zero.
func (h *OrderHandler) ReduceOrderItem(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	itemID, err := pathUUID(c, "itemID")
	if err != nil {
		return err
	}

	item, err := h.uc.ReduceOrderItemQuantity(c.Request().Context(), userID, itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	if item == nil {
		return response.Success(c, http.StatusOK, map[string]string{"message": "Order item removed"}, "Order item removed")
	}

	return response.Success(c, http.StatusOK, item, "Order item quantity reduced")
}

// DeleteOrderItem handles the request to remove a line entirely.
func (h *OrderHandler) DeleteOrderItem(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	itemID, err := pathUUID(c, "itemID")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteOrderItem(c.Request().Context(), userID, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Order item removed"}, "Order item removed successfully")
}

// AddAddress handles the request to create a delivery address.
func (h *OrderHandler) AddAddress(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.AddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.AddOrderAddress(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "Address added successfully")
}

// EditAddress handles the request to update an owned delivery address.
func (h *OrderHandler) EditAddress(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addressID, err := pathUUID(c, "addressID")
	if err != nil {
		return err
	}

	var input *usecase.AddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.EditOrderAddress(c.Request().Context(), userID, addressID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "Address updated successfully")
}

// ListSavedAddresses handles the request to list the caller's saved addresses.
func (h *OrderHandler) ListSavedAddresses(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addresses, err := h.uc.GetSavedAddresses(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "Addresses retrieved successfully")
}

// GetOrderHistory handles the request to list the caller's paid orders.
func (h *OrderHandler) GetOrderHistory(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.uc.GetOrderHistory(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Order history retrieved successfully")
}

// GetOrdersByStatus handles the request to list the caller's orders in a
// given status.
func (h *OrderHandler) GetOrdersByStatus(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	status := entity.OrderStatus(c.Param("status"))

	orders, err := h.uc.GetOrdersByStatus(c.Request().Context(), userID, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetOrderDetails handles the request to get an order with resolved lines.
func (h *OrderHandler) GetOrderDetails(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return err
	}

	details, err := h.uc.GetOrderDetails(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, details, "Order retrieved successfully")
}

// GetOrderItems handles the request to list the lines of an owned order.
func (h *OrderHandler) GetOrderItems(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return err
	}

	items, err := h.uc.GetOrderItems(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Order items retrieved successfully")
}

// UpdateOrderStatus handles the staff request to move a paid order along
// the status lifecycle.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	principal, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return err
	}

	var input *UpdateOrderStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), principal, orderID, input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}

// PayOrder handles the request to seal the caller's cart.
func (h *OrderHandler) PayOrder(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return err
	}

	order, err := h.uc.MarkOrderPaid(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order paid successfully")
}
