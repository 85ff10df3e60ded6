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

// MenuHandlerParams holds dependencies for MenuHandler, injected by Fx.
type MenuHandlerParams struct {
	fx.In

	MenuUC usecase.MenuUsecase
	Logger *slog.Logger
}

// MenuHandler serves the owner's menu management.
type MenuHandler struct {
	menuUC usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler.
func NewMenuHandler(params MenuHandlerParams) *MenuHandler {
	return &MenuHandler{
		menuUC: params.MenuUC,
		logger: params.Logger,
	}
}

// CreateMenuItemRequest is the body of POST /api/menu.
type CreateMenuItemRequest struct {
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" validate:"gt=0"`
	Category     string  `json:"category" validate:"required"`
	ImageURL     string  `json:"imageUrl" validate:"omitempty,url"`
	IsAvailable  *bool   `json:"isAvailable"`
	IsVegetarian bool    `json:"isVegetarian"`
	IsSpicy      bool    `json:"isSpicy"`
}

// UpdateMenuItemRequest is the body of PUT /api/menu/:itemId. Absent fields are left unchanged.
type UpdateMenuItemRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=1"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price" validate:"omitempty,gt=0"`
	Category     *string  `json:"category" validate:"omitempty,min=1"`
	ImageURL     *string  `json:"imageUrl" validate:"omitempty,url"`
	IsAvailable  *bool    `json:"isAvailable"`
	IsVegetarian *bool    `json:"isVegetarian"`
	IsSpicy      *bool    `json:"isSpicy"`
}

// CreateMenuItem adds an item to the caller's restaurant.
func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateMenuItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.menuUC.CreateMenuItem(c.Request().Context(), ownerID, &usecase.MenuItemInput{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		IsAvailable:  req.IsAvailable,
		IsVegetarian: req.IsVegetarian,
		IsSpicy:      req.IsSpicy,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// ListMyMenu lists the caller's menu.
func (h *MenuHandler) ListMyMenu(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	items, err := h.menuUC.ListMyMenu(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// UpdateMenuItem patches an item of the caller's restaurant.
func (h *MenuHandler) UpdateMenuItem(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	itemID, err := paramUUID(c, "itemId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateMenuItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.menuUC.UpdateMenuItem(c.Request().Context(), ownerID, itemID, &usecase.MenuItemPatch{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		IsAvailable:  req.IsAvailable,
		IsVegetarian: req.IsVegetarian,
		IsSpicy:      req.IsSpicy,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// DeleteMenuItem removes an item of the caller's restaurant.
func (h *MenuHandler) DeleteMenuItem(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	itemID, err := paramUUID(c, "itemId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.menuUC.DeleteMenuItem(c.Request().Context(), ownerID, itemID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Menu item deleted"})
}
