package services

import (
	"fmt"
	"math"
	"strings"

	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/pkg/payments"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// TaxRate is applied to the item subtotal.
	TaxRate = 0.18
	// DefaultItemWeightKG is assumed per unit when computing shipping cost.
	DefaultItemWeightKG = 0.5
	// PriceTolerance is the largest accepted drift between the price the
	// client asserted and the live catalog price.
	PriceTolerance = 0.01
)

// PaymentGateway is the slice of the gateway client the checkout and
// payment services need. pkg/payments.Client satisfies it.
type PaymentGateway interface {
	CreateOrder(amount int64, currency, receipt string) (*payments.GatewayOrder, error)
	FetchPayment(paymentID string) (*payments.GatewayPayment, error)
	RefundPayment(paymentID string, amount int64) (*payments.GatewayRefund, error)
}

type CheckoutItem struct {
	ProductID  uint    `json:"product_id" binding:"required"`
	Quantity   int     `json:"quantity" binding:"required,min=1"`
	UnitPrice  float64 `json:"unit_price" binding:"required"`
	TotalPrice float64 `json:"total_price" binding:"required"`
}

type ShippingAddress struct {
	FullName   string `json:"full_name" binding:"required"`
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
	Phone      string `json:"phone"`
}

type CheckoutRequest struct {
	Items            []CheckoutItem  `json:"items" binding:"required"`
	ShippingAddress  ShippingAddress `json:"shipping_address" binding:"required"`
	ShippingMethodID uint            `json:"shipping_method_id" binding:"required"`
	PaymentMethod    string          `json:"payment_method" binding:"required"`
}

type CheckoutResult struct {
	OrderID        uint    `json:"order_id"`
	OrderNumber    string  `json:"order_number"`
	GatewayOrderID string  `json:"gateway_order_id"`
	Subtotal       float64 `json:"subtotal"`
	TaxAmount      float64 `json:"tax_amount"`
	ShippingAmount float64 `json:"shipping_amount"`
	TotalAmount    float64 `json:"total_amount"`
}

type CheckoutService interface {
	InitializeCheckout(userID uint, req *CheckoutRequest) (*CheckoutResult, error)
	ConfirmPaidOrder(order *models.Order, gatewayPaymentID string) error
}

type checkoutService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	shippingRepo repository.ShippingRepository
	paymentRepo  repository.PaymentRepository
	gateway      PaymentGateway
}

func NewCheckoutService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	shippingRepo repository.ShippingRepository,
	paymentRepo repository.PaymentRepository,
	gateway PaymentGateway,
) CheckoutService {
	return &checkoutService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		shippingRepo: shippingRepo,
		paymentRepo:  paymentRepo,
		gateway:      gateway,
	}
}

// InitializeCheckout validates the cart against live stock and prices,
// prices the order, registers a gateway order and persists the pending
// order with its items. Any failure stops the flow; nothing earlier is
// rolled back because nothing earlier has externally visible effects
// until the order row is written.
func (s *checkoutService) InitializeCheckout(userID uint, req *CheckoutRequest) (*CheckoutResult, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	subtotal := 0.0
	totalQuantity := 0

	for _, item := range req.Items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, fmt.Errorf("%w: product %d", ErrProductNotFound, item.ProductID)
			}
			return nil, fmt.Errorf("failed to load product %d: %w", item.ProductID, err)
		}
		if !product.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrProductInactive, product.Name)
		}
		if product.StockQuantity < item.Quantity {
			return nil, fmt.Errorf("%w: %s has %d left", ErrInsufficientStock, product.Name, product.StockQuantity)
		}
		if math.Abs(product.Price-item.UnitPrice) > PriceTolerance {
			return nil, fmt.Errorf("%w: %s is now %.2f", ErrPriceMismatch, product.Name, product.Price)
		}

		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
		subtotal += item.TotalPrice
		totalQuantity += item.Quantity
	}

	taxAmount := subtotal * TaxRate

	method, err := s.shippingRepo.GetActiveByID(req.ShippingMethodID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidShippingMethod
		}
		return nil, fmt.Errorf("failed to load shipping method: %w", err)
	}
	shippingAmount := ShippingCost(method, totalQuantity)

	totalAmount := subtotal + taxAmount + shippingAmount

	orderNumber := generateOrderNumber()
	gatewayOrder, err := s.gateway.CreateOrder(ToMinorUnits(totalAmount), "INR", orderNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}

	order := &models.Order{
		OrderNumber:      orderNumber,
		UserID:           userID,
		Status:           string(models.OrderPending),
		PaymentStatus:    string(models.PaymentUnpaid),
		Subtotal:         subtotal,
		TaxAmount:        taxAmount,
		ShippingAmount:   shippingAmount,
		TotalAmount:      totalAmount,
		ShippingMethodID: method.ID,
		PaymentMethod:    req.PaymentMethod,
		GatewayOrderID:   gatewayOrder.ID,
		ShipFullName:     req.ShippingAddress.FullName,
		ShipLine1:        req.ShippingAddress.Line1,
		ShipLine2:        req.ShippingAddress.Line2,
		ShipCity:         req.ShippingAddress.City,
		ShipState:        req.ShippingAddress.State,
		ShipPostalCode:   req.ShippingAddress.PostalCode,
		ShipCountry:      req.ShippingAddress.Country,
		ShipPhone:        req.ShippingAddress.Phone,
	}

	if err := s.orderRepo.CreateWithItems(order, items); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	return &CheckoutResult{
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
		GatewayOrderID: gatewayOrder.ID,
		Subtotal:       subtotal,
		TaxAmount:      taxAmount,
		ShippingAmount: shippingAmount,
		TotalAmount:    totalAmount,
	}, nil
}

// ConfirmPaidOrder marks an order paid and confirmed, records the capture
// transaction and takes the stock. Called by the payment service once the
// gateway reports the payment captured.
func (s *checkoutService) ConfirmPaidOrder(order *models.Order, gatewayPaymentID string) error {
	if !models.OrderStatus(order.Status).CanTransition(models.OrderConfirmed) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, models.OrderConfirmed)
	}

	order.Status = string(models.OrderConfirmed)
	order.PaymentStatus = string(models.PaymentPaid)
	order.GatewayPaymentID = gatewayPaymentID
	if err := s.orderRepo.Update(order); err != nil {
		return fmt.Errorf("failed to confirm order: %w", err)
	}

	transaction := &models.PaymentTransaction{
		OrderID:          order.ID,
		GatewayPaymentID: gatewayPaymentID,
		Type:             string(models.TransactionCapture),
		Amount:           order.TotalAmount,
		Status:           "captured",
	}
	if err := s.paymentRepo.CreateTransaction(transaction); err != nil {
		return fmt.Errorf("failed to log payment transaction: %w", err)
	}

	items, err := s.orderRepo.GetItems(order.ID)
	if err != nil {
		return fmt.Errorf("failed to load order items: %w", err)
	}
	for _, item := range items {
		ok, err := s.productRepo.DecrementStock(item.ProductID, item.Quantity)
		if err != nil {
			return fmt.Errorf("failed to decrement stock for product %d: %w", item.ProductID, err)
		}
		if !ok {
			// Payment is already captured; keep the order confirmed and
			// surface the shortage instead of failing the confirmation.
			return fmt.Errorf("%w: product %d oversold after payment", ErrInsufficientStock, item.ProductID)
		}
	}

	return nil
}

// ShippingCost prices delivery as base rate plus the per-kg rate applied to
// the default unit weight times quantity. Non-decreasing in quantity as
// long as the method rates are non-negative.
func ShippingCost(method *models.ShippingMethod, totalQuantity int) float64 {
	weight := DefaultItemWeightKG * float64(totalQuantity)
	return method.BaseRate + method.RatePerKG*weight
}

// ToMinorUnits converts a major-unit amount to the gateway's minor units.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func generateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:12]
	return "ORD-" + suffix
}
