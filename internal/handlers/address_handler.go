package handlers

import (
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/models"

	"github.com/gin-gonic/gin"
)

type addressRequest struct {
	Label      string `json:"label"`
	FullName   string `json:"full_name" binding:"required"`
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
	Phone      string `json:"phone"`
	IsDefault  bool   `json:"is_default"`
}

func (h *AuthHandler) ListAddresses(c *gin.Context) {
	claims := middleware.GetClaims(c)

	addresses, err := h.userService.GetAddresses(claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"addresses": addresses})
}

func (h *AuthHandler) CreateAddress(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": "VALIDATION_ERROR"})
		return
	}

	address := &models.Address{
		UserID:     claims.UserID,
		Label:      req.Label,
		FullName:   req.FullName,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Phone:      req.Phone,
		IsDefault:  req.IsDefault,
	}
	if err := h.userService.CreateAddress(address); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"address": address})
}

func (h *AuthHandler) UpdateAddress(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": "VALIDATION_ERROR"})
		return
	}

	address, err := h.userService.GetAddress(id, claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	address.Label = req.Label
	address.FullName = req.FullName
	address.Line1 = req.Line1
	address.Line2 = req.Line2
	address.City = req.City
	address.State = req.State
	address.PostalCode = req.PostalCode
	address.Country = req.Country
	address.Phone = req.Phone
	address.IsDefault = req.IsDefault

	if err := h.userService.UpdateAddress(address); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"address": address})
}

func (h *AuthHandler) DeleteAddress(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.DeleteAddress(id, claims.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
