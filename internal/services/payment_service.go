package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"

	"storefront/internal/models"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

// PaymentResult is the structured outcome payment operations hand back to
// handlers; gateway and verification failures land here instead of as
// errors so callers branch on Success.
type PaymentResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID uint   `json:"order_id,omitempty"`
}

type PaymentService interface {
	VerifyPaymentSignature(gatewayOrderID, gatewayPaymentID, signature string) bool
	ProcessPaymentVerification(gatewayOrderID, gatewayPaymentID, signature string) *PaymentResult
	ProcessRefund(orderID uint, amount float64) *PaymentResult
}

type paymentService struct {
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	checkout    CheckoutService
	gateway     PaymentGateway
	keySecret   string
}

func NewPaymentService(
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	checkout CheckoutService,
	gateway PaymentGateway,
	keySecret string,
) PaymentService {
	return &paymentService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		checkout:    checkout,
		gateway:     gateway,
		keySecret:   keySecret,
	}
}

// VerifyPaymentSignature checks the gateway callback signature:
// HMAC-SHA256 over "orderID|paymentID" keyed with the secret.
func (s *paymentService) VerifyPaymentSignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// ProcessPaymentVerification runs the post-payment pipeline: signature
// check, remote capture check, then order confirmation with stock
// decrement. Each failure is reported back as a tagged result.
func (s *paymentService) ProcessPaymentVerification(gatewayOrderID, gatewayPaymentID, signature string) *PaymentResult {
	if !s.VerifyPaymentSignature(gatewayOrderID, gatewayPaymentID, signature) {
		return &PaymentResult{Success: false, Message: "Invalid payment signature"}
	}

	payment, err := s.gateway.FetchPayment(gatewayPaymentID)
	if err != nil {
		log.Printf("payment fetch failed for %s: %v", gatewayPaymentID, err)
		return &PaymentResult{Success: false, Message: "Payment verification failed"}
	}
	if payment.Status != "captured" {
		return &PaymentResult{Success: false, Message: fmt.Sprintf("Payment not captured (status: %s)", payment.Status)}
	}

	order, err := s.orderRepo.GetByGatewayOrderID(gatewayOrderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return &PaymentResult{Success: false, Message: "Order not found"}
		}
		log.Printf("order lookup failed for gateway order %s: %v", gatewayOrderID, err)
		return &PaymentResult{Success: false, Message: "Payment verification failed"}
	}

	if err := s.checkout.ConfirmPaidOrder(order, gatewayPaymentID); err != nil {
		log.Printf("order confirmation failed for order %d: %v", order.ID, err)
		return &PaymentResult{Success: false, Message: "Failed to confirm order"}
	}

	return &PaymentResult{Success: true, Message: "Payment verified", OrderID: order.ID}
}

// ProcessRefund refunds the given amount (the full total when amount is 0)
// through the gateway, cancels the order and appends a negative-amount
// transaction row. Refunds above the order total are rejected.
func (s *paymentService) ProcessRefund(orderID uint, amount float64) *PaymentResult {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return &PaymentResult{Success: false, Message: "Order not found"}
		}
		log.Printf("order lookup failed for refund of order %d: %v", orderID, err)
		return &PaymentResult{Success: false, Message: "Refund failed"}
	}

	if order.GatewayPaymentID == "" {
		return &PaymentResult{Success: false, Message: "Order has no captured payment"}
	}

	if amount == 0 {
		amount = order.TotalAmount
	}
	if amount > order.TotalAmount {
		return &PaymentResult{Success: false, Message: ErrRefundExceedsTotal.Error()}
	}

	refund, err := s.gateway.RefundPayment(order.GatewayPaymentID, ToMinorUnits(amount))
	if err != nil {
		log.Printf("gateway refund failed for order %d: %v", orderID, err)
		return &PaymentResult{Success: false, Message: "Refund failed"}
	}

	order.Status = string(models.OrderCancelled)
	order.PaymentStatus = string(models.PaymentRefunded)
	if err := s.orderRepo.Update(order); err != nil {
		log.Printf("order update failed after refund of order %d: %v", orderID, err)
		return &PaymentResult{Success: false, Message: "Refund failed"}
	}

	transaction := &models.PaymentTransaction{
		OrderID:          order.ID,
		GatewayPaymentID: order.GatewayPaymentID,
		GatewayRefundID:  refund.ID,
		Type:             string(models.TransactionRefund),
		Amount:           -amount,
		Status:           refund.Status,
	}
	if err := s.paymentRepo.CreateTransaction(transaction); err != nil {
		log.Printf("transaction log failed after refund of order %d: %v", orderID, err)
	}

	return &PaymentResult{Success: true, Message: "Refund processed", OrderID: order.ID}
}
