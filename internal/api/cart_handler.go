package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"farmtotable-be/internal/cart"
	"farmtotable-be/internal/httpctx"
)

// CartAPI wires HTTP transport with the cart engine.
type CartAPI struct {
	service cart.Service
}

func NewCartAPI(service cart.Service) CartAPI {
	return CartAPI{service: service}
}

type addToCartPayload struct {
	UserID    uint `json:"user_id" binding:"required"`
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type updateQuantityPayload struct {
	Quantity int `json:"quantity" binding:"required"`
}

// Get /api/cart?userId=N
func (api *CartAPI) ListCart(c *gin.Context) {
	raw := c.Query("userId")
	if raw == "" {
		respondError(c, http.StatusBadRequest, "User ID is required.")
		return
	}

	userID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid userId")
		return
	}

	lines, err := api.service.ListLines(c.Request.Context(), uint(userID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

// Post /api/cart
func (api *CartAPI) AddToCart(c *gin.Context) {
	var payload addToCartPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "User ID, product ID, and quantity are required.")
		return
	}

	lines, err := api.service.AddLine(c.Request.Context(),
		payload.UserID, payload.ProductID, payload.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

// Put /api/cart/:productId
func (api *CartAPI) UpdateQuantity(c *gin.Context) {
	userID, ok := httpctx.UserID(c.Request.Context())
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}

	var payload updateQuantityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	err := api.service.SetLineQuantity(c.Request.Context(), userID, productID, payload.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item quantity updated successfully."})
}

// Delete /api/cart/:productId
func (api *CartAPI) RemoveFromCart(c *gin.Context) {
	userID, ok := httpctx.UserID(c.Request.Context())
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}

	if err := api.service.RemoveLine(c.Request.Context(), userID, productID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart successfully."})
}
