package handler

import (
	"log/slog"
	"net/http"

	"savor/internal/delivery/http/response"
	"savor/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RestaurantHandler holds dependencies for the customer-facing catalog
// read endpoints.
type RestaurantHandler struct {
	uc     usecase.RestaurantUsecase
	logger *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler, injected by Fx.
func NewRestaurantHandler(uc usecase.RestaurantUsecase, logger *slog.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListRestaurants handles the request to list all active restaurants.
func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	restaurants, err := h.uc.ListRestaurants(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurants, "Restaurants retrieved successfully")
}

// GetRestaurant handles the request to get one active restaurant.
func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	restaurantID, err := pathUUID(c, "restaurantID")
	if err != nil {
		return err
	}

	restaurant, err := h.uc.GetRestaurantInfo(c.Request().Context(), restaurantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurant, "Restaurant retrieved successfully")
}

// ListRestaurantsByCuisine handles the request to list active restaurants
// serving a cuisine.
func (h *RestaurantHandler) ListRestaurantsByCuisine(c echo.Context) error {
	cuisineID, err := pathUUID(c, "cuisineID")
	if err != nil {
		return err
	}

	restaurants, err := h.uc.ListRestaurantsByCuisine(c.Request().Context(), cuisineID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurants, "Restaurants retrieved successfully")
}

// FilterRestaurants handles the combined restaurant filter request.
func (h *RestaurantHandler) FilterRestaurants(c echo.Context) error {
	var input *usecase.FilterRestaurantsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter input")
	}

	restaurants, err := h.uc.FilterRestaurants(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurants, "Restaurants retrieved successfully")
}

// ListCuisines handles the request to list all cuisine categories.
func (h *RestaurantHandler) ListCuisines(c echo.Context) error {
	cuisines, err := h.uc.ListCuisines(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cuisines, "Cuisines retrieved successfully")
}

// GetMenu handles the request to get one menu.
func (h *RestaurantHandler) GetMenu(c echo.Context) error {
	menuID, err := pathUUID(c, "menuID")
	if err != nil {
		return err
	}

	menu, err := h.uc.GetMenu(c.Request().Context(), menuID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, menu, "Menu retrieved successfully")
}

// ListRestaurantMenus handles the request to list a restaurant's active menus.
func (h *RestaurantHandler) ListRestaurantMenus(c echo.Context) error {
	restaurantID, err := pathUUID(c, "restaurantID")
	if err != nil {
		return err
	}

	menus, err := h.uc.ListRestaurantMenus(c.Request().Context(), restaurantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, menus, "Menus retrieved successfully")
}

// ListArchivedRestaurantMenus handles the staff request to list a
// restaurant's archived menus.
func (h *RestaurantHandler) ListArchivedRestaurantMenus(c echo.Context) error {
	principal, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	restaurantID, err := pathUUID(c, "restaurantID")
	if err != nil {
		return err
	}

	menus, err := h.uc.ListArchivedRestaurantMenus(c.Request().Context(), principal, restaurantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, menus, "Archived menus retrieved successfully")
}

// GetMenuItem handles the request to get one menu item.
func (h *RestaurantHandler) GetMenuItem(c echo.Context) error {
	itemID, err := pathUUID(c, "itemID")
	if err != nil {
		return err
	}

	item, err := h.uc.GetMenuItem(c.Request().Context(), itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Menu item retrieved successfully")
}

// ListMenuItems handles the request to list a menu's active items.
func (h *RestaurantHandler) ListMenuItems(c echo.Context) error {
	menuID, err := pathUUID(c, "menuID")
	if err != nil {
		return err
	}

	items, err := h.uc.ListMenuItems(c.Request().Context(), menuID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Menu items retrieved successfully")
}
