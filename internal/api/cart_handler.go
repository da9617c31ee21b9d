package api

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/entity"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/service"
)

var quantityTooLarge = fmt.Sprintf("quantity cannot exceed %d", entity.MaxCartQuantity)

type CartHandler struct {
	cartService *service.CartService
}

func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GetCart --> GET /api/cart
func (h *CartHandler) GetCart(c echo.Context) error {
	return c.JSON(200, h.cartService.Cart(currentUser(c).ID))
}

// AddToCart --> POST /api/cart
func (h *CartHandler) AddToCart(c echo.Context) error {
	in := struct {
		MedicineID int `json:"medicineId"`
		Quantity   int `json:"quantity"`
	}{Quantity: 1}
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "Invalid request payload")
	}
	if in.MedicineID < 1 {
		return badRequest(c, "medicineId is required")
	}
	if in.Quantity > entity.MaxCartQuantity {
		return badRequest(c, quantityTooLarge)
	}

	item, err := h.cartService.AddToCart(c.Request().Context(), currentUser(c).ID, in.MedicineID, in.Quantity)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(201, item)
}

// UpdateQuantity --> PUT /api/cart/:id
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid ID")
	}
	in := struct {
		Quantity int `json:"quantity"`
	}{}
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "Invalid request payload")
	}
	if in.Quantity > entity.MaxCartQuantity {
		return badRequest(c, quantityTooLarge)
	}

	item, err := h.cartService.UpdateQuantity(c.Request().Context(), currentUser(c).ID, id, in.Quantity)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, item)
}

// RemoveItem --> DELETE /api/cart/:id
func (h *CartHandler) RemoveItem(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid ID")
	}
	if err := h.cartService.RemoveItem(c.Request().Context(), currentUser(c).ID, id); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(204)
}

// ClearCart --> DELETE /api/cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	removed := h.cartService.Clear(c.Request().Context(), currentUser(c).ID)
	return c.JSON(200, map[string]int{"removed": removed})
}
