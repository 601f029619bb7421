package handlers

import (
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutService services.CheckoutService
	paymentService  services.PaymentService
	cartService     services.CartService
	shippingService services.ShippingService
}

func NewCheckoutHandler(
	checkoutService services.CheckoutService,
	paymentService services.PaymentService,
	cartService services.CartService,
	shippingService services.ShippingService,
) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		paymentService:  paymentService,
		cartService:     cartService,
		shippingService: shippingService,
	}
}

func (h *CheckoutHandler) ListShippingMethods(c *gin.Context) {
	methods, err := h.shippingService.GetActiveMethods()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"shipping_methods": methods})
}

func (h *CheckoutHandler) InitializeCheckout(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": "VALIDATION_ERROR"})
		return
	}

	result, err := h.checkoutService.InitializeCheckout(claims.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	// The cart is spent once the order exists.
	if err := h.cartService.ClearCart(services.UserCartKey(claims.UserID)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// VerifyPayment is the gateway-callback endpoint: the frontend posts the
// gateway order id, payment id and signature it received after payment.
func (h *CheckoutHandler) VerifyPayment(c *gin.Context) {
	var req struct {
		GatewayOrderID   string `json:"gateway_order_id" binding:"required"`
		GatewayPaymentID string `json:"gateway_payment_id" binding:"required"`
		Signature        string `json:"signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": "VALIDATION_ERROR"})
		return
	}

	result := h.paymentService.ProcessPaymentVerification(req.GatewayOrderID, req.GatewayPaymentID, req.Signature)
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}

	c.JSON(http.StatusOK, result)
}
