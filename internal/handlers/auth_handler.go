package handlers

import (
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	userService services.UserService
	cartService services.CartService
}

func NewAuthHandler(authService services.AuthService, userService services.UserService, cartService services.CartService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		cartService: cartService,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": "VALIDATION_ERROR"})
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required"`
		GuestCartID string `json:"guest_cart_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": "VALIDATION_ERROR"})
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	// Fold any guest cart into the user's cart on login.
	if req.GuestCartID != "" {
		if _, err := h.cartService.MergeGuestCart(req.GuestCartID, user.ID); err != nil {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)

	user, err := h.userService.GetUserByID(claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Phone     string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": "VALIDATION_ERROR"})
		return
	}

	user, err := h.userService.GetUserByID(claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Phone = req.Phone
	if err := h.userService.UpdateProfile(user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
