// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodorder/config"
	"foodorder/internal/delivery/api/middleware"
	"foodorder/internal/delivery/api/router/handler"
	"foodorder/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	RestaurantHandler *handler.RestaurantHandler
	MenuHandler       *handler.MenuHandler
	CartHandler       *handler.CartHandler
	OrderHandler      *handler.OrderHandler
	DeviceHandler     *handler.DeviceHandler
	TestHandler       *handler.TestHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	restaurantHandler *handler.RestaurantHandler
	menuHandler       *handler.MenuHandler
	cartHandler       *handler.CartHandler
	orderHandler      *handler.OrderHandler
	deviceHandler     *handler.DeviceHandler
	testHandler       *handler.TestHandler
	authMiddleware    *middleware.AuthMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		restaurantHandler: params.RestaurantHandler,
		menuHandler:       params.MenuHandler,
		cartHandler:       params.CartHandler,
		orderHandler:      params.OrderHandler,
		deviceHandler:     params.DeviceHandler,
		testHandler:       params.TestHandler,
		authMiddleware:    params.AuthMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
	}

	owner := []echo.MiddlewareFunc{r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleOwner)}
	customer := []echo.MiddlewareFunc{r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleCustomer)}

	restaurantGroup := api.Group("/restaurant")
	{
		restaurantGroup.GET("", r.restaurantHandler.ListRestaurants)
		restaurantGroup.GET("/:id/menu", r.restaurantHandler.GetRestaurantMenu)
		restaurantGroup.POST("", r.restaurantHandler.CreateRestaurant, owner...)
		restaurantGroup.PUT("", r.restaurantHandler.UpdateRestaurant, owner...)
		restaurantGroup.GET("/me", r.restaurantHandler.GetMyRestaurant, owner...)
		restaurantGroup.GET("/me/qr", r.restaurantHandler.GetMenuQRCode, owner...)
	}

	menuGroup := api.Group("/menu", owner...)
	{
		menuGroup.POST("", r.menuHandler.CreateMenuItem)
		menuGroup.GET("/mine", r.menuHandler.ListMyMenu)
		menuGroup.PUT("/:itemId", r.menuHandler.UpdateMenuItem)
		menuGroup.DELETE("/:itemId", r.menuHandler.DeleteMenuItem)
	}

	userGroup := api.Group("/user")
	{
		userGroup.GET("/test", r.testHandler.TestPublicEndpoint)
		// Public catalogue aliases kept for existing clients
		userGroup.GET("/restaurant", r.restaurantHandler.ListRestaurants)
		userGroup.GET("/restaurant/:id/menu", r.restaurantHandler.GetRestaurantMenu)

		userGroup.GET("/cart", r.cartHandler.GetCart, customer...)
		userGroup.POST("/cart/add", r.cartHandler.AddItem, customer...)
		userGroup.DELETE("/cart/:menuItem", r.cartHandler.RemoveItem, customer...)

		userGroup.POST("/devices", r.deviceHandler.RegisterDevice, customer...)
		userGroup.GET("/devices", r.deviceHandler.GetUserDevices, customer...)
		userGroup.PUT("/devices/:id/token", r.deviceHandler.UpdateFCMToken, customer...)
		userGroup.DELETE("/devices/:id", r.deviceHandler.DeactivateDevice, customer...)
	}

	ordersGroup := api.Group("/orders")
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder, customer...)
		ordersGroup.GET("/my-orders", r.orderHandler.ListMyOrders, customer...)
		ordersGroup.GET("/restaurant-orders", r.orderHandler.ListRestaurantOrders, owner...)
		ordersGroup.PUT("/:orderId/status", r.orderHandler.UpdateOrderStatus, owner...)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.authMiddleware.Authenticate)
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
