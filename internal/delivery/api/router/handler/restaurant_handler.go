package handler

import (
	"log/slog"
	"net/http"

	"foodorder/internal/delivery/api/middleware"
	"foodorder/internal/delivery/api/response"
	"foodorder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	RestaurantUC usecase.RestaurantUsecase
	Logger       *slog.Logger
}

// RestaurantHandler serves restaurant profiles and public menus.
type RestaurantHandler struct {
	restaurantUC usecase.RestaurantUsecase
	logger       *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler.
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: params.RestaurantUC,
		logger:       params.Logger,
	}
}

// CreateRestaurantRequest is the body of POST /api/restaurant.
type CreateRestaurantRequest struct {
	Name         string  `json:"name" validate:"required"`
	Address      string  `json:"address" validate:"required"`
	Phone        string  `json:"phone" validate:"omitempty,phone"`
	LogoURL      string  `json:"logoUrl" validate:"omitempty,url"`
	Description  string  `json:"description"`
	Cuisine      string  `json:"cuisine"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"deliveryTime"`
}

// UpdateRestaurantRequest is the body of PUT /api/restaurant. Absent fields are left unchanged.
type UpdateRestaurantRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=1"`
	Address      *string  `json:"address" validate:"omitempty,min=1"`
	Phone        *string  `json:"phone"`
	LogoURL      *string  `json:"logoUrl" validate:"omitempty,url"`
	Description  *string  `json:"description"`
	Cuisine      *string  `json:"cuisine"`
	Rating       *float64 `json:"rating"`
	DeliveryTime *string  `json:"deliveryTime"`
}

// CreateRestaurant creates the caller's restaurant.
func (h *RestaurantHandler) CreateRestaurant(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateRestaurantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	restaurant, err := h.restaurantUC.CreateRestaurant(c.Request().Context(), ownerID, &usecase.RestaurantInput{
		Name:         req.Name,
		Address:      req.Address,
		Phone:        req.Phone,
		LogoURL:      req.LogoURL,
		Description:  req.Description,
		Cuisine:      req.Cuisine,
		Rating:       req.Rating,
		DeliveryTime: req.DeliveryTime,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurant)
}

// UpdateRestaurant patches the caller's restaurant.
func (h *RestaurantHandler) UpdateRestaurant(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateRestaurantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	restaurant, err := h.restaurantUC.UpdateRestaurant(c.Request().Context(), ownerID, &usecase.RestaurantPatch{
		Name:         req.Name,
		Address:      req.Address,
		Phone:        req.Phone,
		LogoURL:      req.LogoURL,
		Description:  req.Description,
		Cuisine:      req.Cuisine,
		Rating:       req.Rating,
		DeliveryTime: req.DeliveryTime,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurant)
}

// GetMyRestaurant returns the caller's restaurant.
func (h *RestaurantHandler) GetMyRestaurant(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	restaurant, err := h.restaurantUC.GetMyRestaurant(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurant)
}

// GetMenuQRCode renders a PNG QR code pointing at the caller's public menu.
func (h *RestaurantHandler) GetMenuQRCode(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	png, err := h.restaurantUC.GetMenuQRCode(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListRestaurants lists every restaurant.
func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	restaurants, err := h.restaurantUC.ListRestaurants(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurants)
}

// GetRestaurantMenu lists the public menu of a restaurant.
func (h *RestaurantHandler) GetRestaurantMenu(c echo.Context) error {
	restaurantID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items, err := h.restaurantUC.GetRestaurantMenu(c.Request().Context(), restaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}
