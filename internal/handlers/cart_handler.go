package handlers

import (
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService services.CartService
}

func NewCartHandler(cartService services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// cartKey resolves the cart for the request: the user's cart when
// authenticated, otherwise the guest cart named by the X-Cart-ID header.
func (h *CartHandler) cartKey(c *gin.Context) (string, bool) {
	if claims := middleware.GetClaims(c); claims != nil {
		return services.UserCartKey(claims.UserID), true
	}
	if cartID := c.GetHeader("X-Cart-ID"); cartID != "" {
		return services.GuestCartKey(cartID), true
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "No cart: log in or create a guest cart", "code": "VALIDATION_ERROR"})
	return "", false
}

func (h *CartHandler) CreateGuestCart(c *gin.Context) {
	cart, err := h.cartService.CreateGuestCart()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"cart": cart})
}

func (h *CartHandler) GetCart(c *gin.Context) {
	key, ok := h.cartKey(c)
	if !ok {
		return
	}

	cart, err := h.cartService.GetCart(key)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": cart, "subtotal": cart.Subtotal()})
}

func (h *CartHandler) AddItem(c *gin.Context) {
	key, ok := h.cartKey(c)
	if !ok {
		return
	}

	var req struct {
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": "VALIDATION_ERROR"})
		return
	}

	cart, err := h.cartService.AddItem(key, req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	key, ok := h.cartKey(c)
	if !ok {
		return
	}

	productID, ok := parseUintParam(c, "product_id")
	if !ok {
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": "VALIDATION_ERROR"})
		return
	}

	cart, err := h.cartService.UpdateItemQuantity(key, productID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	key, ok := h.cartKey(c)
	if !ok {
		return
	}

	productID, ok := parseUintParam(c, "product_id")
	if !ok {
		return
	}

	cart, err := h.cartService.RemoveItem(key, productID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	key, ok := h.cartKey(c)
	if !ok {
		return
	}

	if err := h.cartService.ClearCart(key); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
