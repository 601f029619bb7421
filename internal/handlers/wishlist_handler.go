package handlers

import (
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	wishlistService services.WishlistService
}

func NewWishlistHandler(wishlistService services.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	claims := middleware.GetClaims(c)

	entries, err := h.wishlistService.GetWishlist(claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wishlist": entries})
}

func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req struct {
		ProductID uint `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": "VALIDATION_ERROR"})
		return
	}

	if err := h.wishlistService.AddToWishlist(claims.UserID, req.ProductID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "added"})
}

func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	claims := middleware.GetClaims(c)

	productID, ok := parseUintParam(c, "product_id")
	if !ok {
		return
	}

	if err := h.wishlistService.RemoveFromWishlist(claims.UserID, productID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}
