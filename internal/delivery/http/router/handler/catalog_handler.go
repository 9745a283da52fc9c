package handler

import (
	"log/slog"
	"net/http"

	"savor/internal/delivery/http/response"
	"savor/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CreateCuisineInput defines the data required to create a cuisine.
type CreateCuisineInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CatalogHandler holds dependencies for the administrative catalog
// endpoints: restaurants, staff, cuisines, menus and menu items.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterRestaurant handles the platform admin request to register a restaurant.
func (h *CatalogHandler) RegisterRestaurant(c echo.Context) error {
	principal, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.RegisterRestaurantInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	restaurant, err := h.uc.RegisterRestaurant(c.Request().Context(), principal, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, restaurant, "Restaurant registered successfully")
}

// UpdateRestaurant handles the restaurant admin request to patch restaurant info.
func (h *CatalogHandler) UpdateRestaurant(c echo.Context) error {
	principal, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	restaurantID, err := pathUUID(c, "restaurantID")
	if err != nil {
		return err
	}

	var input *usecase.UpdateRestaurantInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	restaurant, err := h.uc.UpdateRestaurantInfo(c.Request().Context(), principal, restaurantID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurant, "Restaurant updated successfully")
}

// DisableRestaurant handles the platform admin request to archive a restaurant.
func (h *CatalogHandler) DisableRestaurant(c echo.Context) error {
	principal, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	restaurantID, err := pathUUID(c, "restaurantID")
	if err != nil {
		return err
	}

	if err := h.uc.DisableRestaurant(c.Request().Context(), principal, restaurantID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Restaurant disabled"}, "Restaurant disabled successfully")
}

// AssignStaff handles the platform admin request to grant a restaurant role.
func (h *CatalogHandler) AssignStaff(c echo.Context) error {
	principal, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.AssignStaffInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid staff input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	staff, err := h.uc.AssignStaff(c.Request().Context(), principal, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, staff, "Staff assigned successfully")
}

// CreateCuisine handles the platform admin request to add a cuisine category.
func (h *CatalogHandler) CreateCuisine(c echo.Context) error {
	principal, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *CreateCuisineInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cuisine input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	cuisine, err := h.uc.CreateCuisine(c.Request().Context(), principal, input.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, cuisine, "Cuisine created successfully")
}

// CreateMenu handles the restaurant admin request to create a menu.
func (h *CatalogHandler) CreateMenu(c echo.Context) error {
	principal, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.CreateMenuInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	menu, err := h.uc.CreateMenu(c.Request().Context(), principal, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, menu, "Menu created successfully")
}

// UpdateMenu handles the restaurant admin request to patch a menu.
func (h *CatalogHandler) UpdateMenu(c echo.Context) error {
	principal, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	menuID, err := pathUUID(c, "menuID")
	if err != nil {
		return err
	}

	var input *usecase.UpdateMenuInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	menu, err := h.uc.UpdateMenu(c.Request().Context(), principal, menuID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, menu, "Menu updated successfully")
}

// ArchiveMenu handles the restaurant admin request to hide a menu.
func (h *CatalogHandler) ArchiveMenu(c echo.Context) error {
	principal, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	menuID, err := pathUUID(c, "menuID")
	if err != nil {
		return err
	}

	if err := h.uc.ArchiveMenu(c.Request().Context(), principal, menuID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Menu archived"}, "Menu archived successfully")
}

// DeleteMenu handles the restaurant admin request to remove a menu permanently.
func (h *CatalogHandler) DeleteMenu(c echo.Context) error {
	principal, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	menuID, err := pathUUID(c, "menuID")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteMenu(c.Request().Context(), principal, menuID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Menu deleted"}, "Menu deleted successfully")
}

// CreateMenuItem handles the restaurant admin request to add a dish.
func (h *CatalogHandler) CreateMenuItem(c echo.Context) error {
	principal, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.CreateMenuItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.CreateMenuItem(c.Request().Context(), principal, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Menu item created successfully")
}

// UpdateMenuItem handles the restaurant admin request to patch a dish.
func (h *CatalogHandler) UpdateMenuItem(c echo.Context) error {
	principal, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	itemID, err := pathUUID(c, "itemID")
	if err != nil {
		return err
	}

	var input *usecase.UpdateMenuItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.UpdateMenuItem(c.Request().Context(), principal, itemID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Menu item updated successfully")
}

// ArchiveMenuItem handles the restaurant admin request to hide a dish.
func (h *CatalogHandler) ArchiveMenuItem(c echo.Context) error {
	principal, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	itemID, err := pathUUID(c, "itemID")
	if err != nil {
		return err
	}

	if err := h.uc.ArchiveMenuItem(c.Request().Context(), principal, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Menu item archived"}, "Menu item archived successfully")
}

// DeleteMenuItem handles the restaurant admin request to remove a dish permanently.
func (h *CatalogHandler) DeleteMenuItem(c echo.Context) error {
	principal, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	itemID, err := pathUUID(c, "itemID")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteMenuItem(c.Request().Context(), principal, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Menu item deleted"}, "Menu item deleted successfully")
}
