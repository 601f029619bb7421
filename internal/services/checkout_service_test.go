package services

import (
	"testing"

	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutFixture() (*checkoutService, *fakeOrderRepo, *fakeProductRepo, *fakeGateway) {
	productRepo := newFakeProductRepo(
		&models.Product{ID: 1, Name: "Keyboard", Price: 50.00, StockQuantity: 10, IsActive: true},
		&models.Product{ID: 2, Name: "Mouse", Price: 25.00, StockQuantity: 3, IsActive: true},
		&models.Product{ID: 3, Name: "Retired Hub", Price: 40.00, StockQuantity: 5, IsActive: false},
	)
	shippingRepo := newFakeShippingRepo(
		&models.ShippingMethod{ID: 1, Name: "standard", BaseRate: 0, RatePerKG: 10, IsActive: true},
		&models.ShippingMethod{ID: 2, Name: "express", BaseRate: 50, RatePerKG: 20, IsActive: true},
		&models.ShippingMethod{ID: 3, Name: "legacy", BaseRate: 5, RatePerKG: 5, IsActive: false},
	)
	orderRepo := newFakeOrderRepo()
	paymentRepo := &fakePaymentRepo{}
	gateway := &fakeGateway{}

	svc := NewCheckoutService(orderRepo, productRepo, shippingRepo, paymentRepo, gateway).(*checkoutService)
	return svc, orderRepo, productRepo, gateway
}

func validRequest() *CheckoutRequest {
	return &CheckoutRequest{
		Items: []CheckoutItem{
			{ProductID: 1, Quantity: 2, UnitPrice: 50.00, TotalPrice: 100.00},
		},
		ShippingAddress: ShippingAddress{
			FullName: "Asha Rao", Line1: "12 MG Road", City: "Bengaluru",
			PostalCode: "560001", Country: "IN",
		},
		ShippingMethodID: 1,
		PaymentMethod:    "card",
	}
}

func TestInitializeCheckout(t *testing.T) {
	t.Run("happy path persists pending order with totals", func(t *testing.T) {
		svc, orderRepo, _, gateway := checkoutFixture()

		result, err := svc.InitializeCheckout(7, validRequest())
		require.NoError(t, err)

		assert.Equal(t, 100.00, result.Subtotal)
		assert.InDelta(t, 18.00, result.TaxAmount, 1e-9)
		// standard: base 0 + 10/kg * (0.5kg * 2)
		assert.InDelta(t, 10.00, result.ShippingAmount, 1e-9)
		assert.InDelta(t, 128.00, result.TotalAmount, 1e-9)
		assert.NotEmpty(t, result.OrderNumber)
		assert.NotEmpty(t, result.GatewayOrderID)

		order, err := orderRepo.GetByID(result.OrderID)
		require.NoError(t, err)
		assert.Equal(t, string(models.OrderPending), order.Status)
		assert.Equal(t, string(models.PaymentUnpaid), order.PaymentStatus)
		assert.Equal(t, uint(7), order.UserID)
		assert.Equal(t, "Asha Rao", order.ShipFullName)

		items, _ := orderRepo.GetItems(result.OrderID)
		require.Len(t, items, 1)
		assert.Equal(t, "Keyboard", items[0].ProductName)

		// Gateway got the total in minor units.
		require.Len(t, gateway.createdOrders, 1)
		assert.Equal(t, int64(12800), gateway.createdOrders[0].Amount)
	})

	t.Run("unknown product fails and creates no order", func(t *testing.T) {
		svc, orderRepo, _, _ := checkoutFixture()

		req := validRequest()
		req.Items[0].ProductID = 99

		_, err := svc.InitializeCheckout(7, req)
		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.Empty(t, orderRepo.orders)
	})

	t.Run("inactive product is rejected", func(t *testing.T) {
		svc, _, _, _ := checkoutFixture()

		req := validRequest()
		req.Items[0].ProductID = 3
		req.Items[0].UnitPrice = 40.00
		req.Items[0].TotalPrice = 80.00

		_, err := svc.InitializeCheckout(7, req)
		assert.ErrorIs(t, err, ErrProductInactive)
	})

	t.Run("quantity above stock fails with insufficient stock", func(t *testing.T) {
		svc, orderRepo, _, _ := checkoutFixture()

		req := validRequest()
		req.Items = []CheckoutItem{{ProductID: 2, Quantity: 5, UnitPrice: 25.00, TotalPrice: 125.00}}

		_, err := svc.InitializeCheckout(7, req)
		assert.ErrorIs(t, err, ErrInsufficientStock)
		assert.Empty(t, orderRepo.orders)
	})

	t.Run("price drift beyond tolerance fails, within tolerance passes", func(t *testing.T) {
		svc, orderRepo, _, _ := checkoutFixture()

		req := validRequest()
		req.Items[0].UnitPrice = 50.02
		_, err := svc.InitializeCheckout(7, req)
		assert.ErrorIs(t, err, ErrPriceMismatch)
		assert.Empty(t, orderRepo.orders)

		req = validRequest()
		req.Items[0].UnitPrice = 50.01
		_, err = svc.InitializeCheckout(7, req)
		assert.NoError(t, err)
	})

	t.Run("inactive or missing shipping method is rejected", func(t *testing.T) {
		svc, _, _, _ := checkoutFixture()

		req := validRequest()
		req.ShippingMethodID = 3
		_, err := svc.InitializeCheckout(7, req)
		assert.ErrorIs(t, err, ErrInvalidShippingMethod)

		req.ShippingMethodID = 42
		_, err = svc.InitializeCheckout(7, req)
		assert.ErrorIs(t, err, ErrInvalidShippingMethod)
	})

	t.Run("gateway failure stops before any order row", func(t *testing.T) {
		svc, orderRepo, _, gateway := checkoutFixture()
		gateway.failCreate = true

		_, err := svc.InitializeCheckout(7, validRequest())
		assert.Error(t, err)
		assert.Empty(t, orderRepo.orders)
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		svc, _, _, _ := checkoutFixture()

		_, err := svc.InitializeCheckout(7, &CheckoutRequest{})
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("worked example: 250 subtotal, 18% tax, qty 3 standard shipping", func(t *testing.T) {
		productRepo := newFakeProductRepo(
			&models.Product{ID: 1, Name: "Desk Mat", Price: 50.00, StockQuantity: 10, IsActive: true},
			&models.Product{ID: 2, Name: "Lamp", Price: 100.00, StockQuantity: 10, IsActive: true},
		)
		shippingRepo := newFakeShippingRepo(
			&models.ShippingMethod{ID: 1, Name: "standard", BaseRate: 0, RatePerKG: 40, IsActive: true},
		)
		svc := NewCheckoutService(newFakeOrderRepo(), productRepo, shippingRepo, &fakePaymentRepo{}, &fakeGateway{})

		result, err := svc.InitializeCheckout(1, &CheckoutRequest{
			Items: []CheckoutItem{
				{ProductID: 1, Quantity: 1, UnitPrice: 50.00, TotalPrice: 50.00},
				{ProductID: 2, Quantity: 2, UnitPrice: 100.00, TotalPrice: 200.00},
			},
			ShippingAddress:  ShippingAddress{FullName: "A", Line1: "B", City: "C", PostalCode: "D", Country: "IN"},
			ShippingMethodID: 1,
			PaymentMethod:    "card",
		})
		require.NoError(t, err)

		assert.InDelta(t, 250.00, result.Subtotal, 1e-9)
		assert.InDelta(t, 45.00, result.TaxAmount, 1e-9)
		// 0 + 40/kg * (0.5kg * 3) = 60
		assert.InDelta(t, 60.00, result.ShippingAmount, 1e-9)
		assert.InDelta(t, result.Subtotal+result.TaxAmount+result.ShippingAmount, result.TotalAmount, 1e-9)
	})
}

func TestShippingCost(t *testing.T) {
	method := &models.ShippingMethod{BaseRate: 30, RatePerKG: 12}

	t.Run("non-decreasing in quantity", func(t *testing.T) {
		prev := 0.0
		for qty := 1; qty <= 50; qty++ {
			cost := ShippingCost(method, qty)
			assert.GreaterOrEqual(t, cost, prev, "qty %d", qty)
			prev = cost
		}
	})

	t.Run("base plus weight rate", func(t *testing.T) {
		// 30 + 12/kg * (0.5kg * 4)
		assert.InDelta(t, 54.0, ShippingCost(method, 4), 1e-9)
	})
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(12800), ToMinorUnits(128.00))
	assert.Equal(t, int64(10), ToMinorUnits(0.1))
	assert.Equal(t, int64(100), ToMinorUnits(0.999))
	assert.Equal(t, int64(29550), ToMinorUnits(295.499999999))
}

func TestConfirmPaidOrder(t *testing.T) {
	t.Run("confirms, logs capture and takes stock", func(t *testing.T) {
		svc, orderRepo, productRepo, _ := checkoutFixture()

		result, err := svc.InitializeCheckout(7, validRequest())
		require.NoError(t, err)

		order, _ := orderRepo.GetByID(result.OrderID)
		require.NoError(t, svc.ConfirmPaidOrder(order, "pay_123"))

		assert.Equal(t, string(models.OrderConfirmed), order.Status)
		assert.Equal(t, string(models.PaymentPaid), order.PaymentStatus)
		assert.Equal(t, "pay_123", order.GatewayPaymentID)

		product, _ := productRepo.GetByID(1)
		assert.Equal(t, 8, product.StockQuantity)
	})

	t.Run("rejects confirming a cancelled order", func(t *testing.T) {
		svc, orderRepo, _, _ := checkoutFixture()

		result, err := svc.InitializeCheckout(7, validRequest())
		require.NoError(t, err)

		order, _ := orderRepo.GetByID(result.OrderID)
		order.Status = string(models.OrderCancelled)

		err = svc.ConfirmPaidOrder(order, "pay_123")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}
