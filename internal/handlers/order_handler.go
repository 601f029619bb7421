package handlers

import (
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService    services.OrderService
	trackingService services.OrderTrackingService
	returnService   services.OrderReturnService
}

func NewOrderHandler(
	orderService services.OrderService,
	trackingService services.OrderTrackingService,
	returnService services.OrderReturnService,
) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		trackingService: trackingService,
		returnService:   returnService,
	}
}

func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	claims := middleware.GetClaims(c)

	orders, err := h.orderService.GetOrdersByUser(claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrderForUser(id, claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.CancelOrder(id, claims.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *OrderHandler) GetTimeline(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.orderService.GetOrderForUser(id, claims.UserID); err != nil {
		respondError(c, err)
		return
	}

	timeline, err := h.trackingService.GetTimeline(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"timeline": timeline})
}

func (h *OrderHandler) TrackOrder(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.orderService.GetOrderForUser(id, claims.UserID); err != nil {
		respondError(c, err)
		return
	}

	tracking, err := h.trackingService.GetTracking(id)
	if err != nil {
		respondError(c, err)
		return
	}

	courierStatus, err := h.trackingService.TrackWithCourier(id)
	if err != nil {
		// No carrier assigned yet: return what we have.
		c.JSON(http.StatusOK, gin.H{"tracking": tracking})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tracking": tracking, "courier": courierStatus})
}

func (h *OrderHandler) RequestReturn(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req services.ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": "VALIDATION_ERROR"})
		return
	}

	orderReturn, err := h.returnService.CreateReturnRequest(claims.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"return": orderReturn})
}

func (h *OrderHandler) ListMyReturns(c *gin.Context) {
	claims := middleware.GetClaims(c)

	returns, err := h.returnService.GetReturnsByUser(claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"returns": returns})
}
