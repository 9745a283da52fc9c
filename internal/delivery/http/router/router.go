// Package router contains routing setup for the HTTP delivery.
package router

import (
	"savor/internal/delivery/http/middleware"
	"savor/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	RestaurantHandler *handler.RestaurantHandler
	CatalogHandler    *handler.CatalogHandler
	OrderHandler      *handler.OrderHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	restaurantHandler *handler.RestaurantHandler
	catalogHandler    *handler.CatalogHandler
	orderHandler      *handler.OrderHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		restaurantHandler: params.RestaurantHandler,
		catalogHandler:    params.CatalogHandler,
		orderHandler:      params.OrderHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/staff/login", r.userHandler.StaffLogin)
	}

	// Public catalog reads
	restaurantGroup := e.Group("/restaurants")
	{
		restaurantGroup.GET("", r.restaurantHandler.ListRestaurants)
		restaurantGroup.POST("/filter", r.restaurantHandler.FilterRestaurants)
		restaurantGroup.GET("/:restaurantID", r.restaurantHandler.GetRestaurant)
		restaurantGroup.GET("/:restaurantID/menus", r.restaurantHandler.ListRestaurantMenus)
	}

	e.GET("/cuisines", r.restaurantHandler.ListCuisines)
	e.GET("/cuisines/:cuisineID/restaurants", r.restaurantHandler.ListRestaurantsByCuisine)
	e.GET("/menus/:menuID", r.restaurantHandler.GetMenu)
	e.GET("/menus/:menuID/items", r.restaurantHandler.ListMenuItems)
	e.GET("/menu-items/:itemID", r.restaurantHandler.GetMenuItem)

	// Account routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PATCH("/profile", r.userHandler.UpdateProfile)
		userGroup.DELETE("/profile", r.userHandler.Deactivate)
	}

	// Cart and order routes
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.PlaceOrder)
		orderGroup.POST("/items", r.orderHandler.AddOrderItem)
		orderGroup.PATCH("/items/:itemID/reduce", r.orderHandler.ReduceOrderItem)
		orderGroup.DELETE("/items/:itemID", r.orderHandler.DeleteOrderItem)
		orderGroup.GET("/history", r.orderHandler.GetOrderHistory)
		orderGroup.GET("/status/:status", r.orderHandler.GetOrdersByStatus)
		orderGroup.GET("/:orderID", r.orderHandler.GetOrderDetails)
		orderGroup.GET("/:orderID/items", r.orderHandler.GetOrderItems)
		orderGroup.POST("/:orderID/pay", r.orderHandler.PayOrder)
	}

	// Delivery address routes
	addressGroup := e.Group("/addresses")
	addressGroup.Use(r.authMiddleware.Authenticate)
	{
		addressGroup.GET("", r.orderHandler.ListSavedAddresses)
		addressGroup.POST("", r.orderHandler.AddAddress)
		addressGroup.PUT("/:addressID", r.orderHandler.EditAddress)
	}

	// Platform admin routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.POST("/restaurants", r.catalogHandler.RegisterRestaurant)
		adminGroup.DELETE("/restaurants/:restaurantID", r.catalogHandler.DisableRestaurant)
		adminGroup.POST("/staff", r.catalogHandler.AssignStaff)
		adminGroup.POST("/cuisines", r.catalogHandler.CreateCuisine)
	}

	// Restaurant staff routes. Per-restaurant admin checks happen in the
	// use cases against the staff records.
	staffGroup := e.Group("/staff")
	staffGroup.Use(r.authMiddleware.Authenticate)
	{
		staffGroup.PATCH("/restaurants/:restaurantID", r.catalogHandler.UpdateRestaurant)
		staffGroup.GET("/restaurants/:restaurantID/menus/archived", r.restaurantHandler.ListArchivedRestaurantMenus)
		staffGroup.POST("/menus", r.catalogHandler.CreateMenu)
		staffGroup.PATCH("/menus/:menuID", r.catalogHandler.UpdateMenu)
		staffGroup.POST("/menus/:menuID/archive", r.catalogHandler.ArchiveMenu)
		staffGroup.DELETE("/menus/:menuID", r.catalogHandler.DeleteMenu)
		staffGroup.POST("/menu-items", r.catalogHandler.CreateMenuItem)
		staffGroup.PATCH("/menu-items/:itemID", r.catalogHandler.UpdateMenuItem)
		staffGroup.POST("/menu-items/:itemID/archive", r.catalogHandler.ArchiveMenuItem)
		staffGroup.DELETE("/menu-items/:itemID", r.catalogHandler.DeleteMenuItem)
		staffGroup.PATCH("/orders/:orderID/status", r.orderHandler.UpdateOrderStatus)
	}
}
