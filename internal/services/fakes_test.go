package services

import (
	"fmt"
	"time"

	"storefront/internal/models"
	"storefront/internal/redis"
	"storefront/internal/repository"
	"storefront/pkg/payments"

	"gorm.io/gorm"
)

// In-memory fakes for the repository and gateway interfaces.

type fakeProductRepo struct {
	products map[uint]*models.Product
}

func newFakeProductRepo(products ...*models.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: map[uint]*models.Product{}}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) Create(product *models.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(id uint) (*models.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *product
	return &copy, nil
}

func (r *fakeProductRepo) GetBySlug(slug string) (*models.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) List(filter repository.ProductFilter) ([]models.Product, int64, error) {
	var out []models.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) Update(product *models.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(id uint) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) DecrementStock(productID uint, quantity int) (bool, error) {
	product, ok := r.products[productID]
	if !ok || product.StockQuantity < quantity {
		return false, nil
	}
	product.StockQuantity -= quantity
	return true, nil
}

type fakeShippingRepo struct {
	methods map[uint]*models.ShippingMethod
}

func newFakeShippingRepo(methods ...*models.ShippingMethod) *fakeShippingRepo {
	repo := &fakeShippingRepo{methods: map[uint]*models.ShippingMethod{}}
	for _, m := range methods {
		repo.methods[m.ID] = m
	}
	return repo
}

func (r *fakeShippingRepo) Create(method *models.ShippingMethod) error {
	r.methods[method.ID] = method
	return nil
}

func (r *fakeShippingRepo) GetByID(id uint) (*models.ShippingMethod, error) {
	method, ok := r.methods[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return method, nil
}

func (r *fakeShippingRepo) GetActiveByID(id uint) (*models.ShippingMethod, error) {
	method, ok := r.methods[id]
	if !ok || !method.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	return method, nil
}

func (r *fakeShippingRepo) GetByName(name string) (*models.ShippingMethod, error) {
	for _, m := range r.methods {
		if m.Name == name {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeShippingRepo) GetAll(activeOnly bool) ([]models.ShippingMethod, error) {
	var out []models.ShippingMethod
	for _, m := range r.methods {
		if !activeOnly || m.IsActive {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeShippingRepo) Update(method *models.ShippingMethod) error {
	r.methods[method.ID] = method
	return nil
}

type fakeOrderRepo struct {
	orders map[uint]*models.Order
	items  map[uint][]models.OrderItem
	nextID uint
}

func newFakeOrderRepo(orders ...*models.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{
		orders: map[uint]*models.Order{},
		items:  map[uint][]models.OrderItem{},
		nextID: 1,
	}
	for _, o := range orders {
		repo.orders[o.ID] = o
		if o.ID >= repo.nextID {
			repo.nextID = o.ID + 1
		}
	}
	return repo
}

func (r *fakeOrderRepo) CreateWithItems(order *models.Order, items []models.OrderItem) error {
	order.ID = r.nextID
	r.nextID++
	r.orders[order.ID] = order
	for i := range items {
		items[i].OrderID = order.ID
	}
	r.items[order.ID] = items
	return nil
}

func (r *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (r *fakeOrderRepo) GetByOrderNumber(orderNumber string) (*models.Order, error) {
	for _, o := range r.orders {
		if o.OrderNumber == orderNumber {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOrderRepo) GetByGatewayOrderID(gatewayOrderID string) (*models.Order, error) {
	for _, o := range r.orders {
		if o.GatewayOrderID == gatewayOrderID {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOrderRepo) GetByUserID(userID uint) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetAll(limit, offset int) ([]models.Order, int64, error) {
	var out []models.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) Update(order *models.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetItems(orderID uint) ([]models.OrderItem, error) {
	return r.items[orderID], nil
}

type fakePaymentRepo struct {
	transactions []models.PaymentTransaction
}

func (r *fakePaymentRepo) CreateTransaction(transaction *models.PaymentTransaction) error {
	r.transactions = append(r.transactions, *transaction)
	return nil
}

func (r *fakePaymentRepo) GetTransactionsByOrderID(orderID uint) ([]models.PaymentTransaction, error) {
	var out []models.PaymentTransaction
	for _, t := range r.transactions {
		if t.OrderID == orderID {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeReturnRepo struct {
	returns map[uint]*models.OrderReturn
	nextID  uint
}

func newFakeReturnRepo() *fakeReturnRepo {
	return &fakeReturnRepo{returns: map[uint]*models.OrderReturn{}, nextID: 1}
}

func (r *fakeReturnRepo) Create(orderReturn *models.OrderReturn) error {
	orderReturn.ID = r.nextID
	r.nextID++
	r.returns[orderReturn.ID] = orderReturn
	return nil
}

func (r *fakeReturnRepo) GetByID(id uint) (*models.OrderReturn, error) {
	ret, ok := r.returns[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ret, nil
}

func (r *fakeReturnRepo) GetByOrderID(orderID uint) (*models.OrderReturn, error) {
	for _, ret := range r.returns {
		if ret.OrderID == orderID {
			return ret, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeReturnRepo) GetByUserID(userID uint) ([]models.OrderReturn, error) {
	var out []models.OrderReturn
	for _, ret := range r.returns {
		if ret.UserID == userID {
			out = append(out, *ret)
		}
	}
	return out, nil
}

func (r *fakeReturnRepo) GetAll(status string) ([]models.OrderReturn, error) {
	var out []models.OrderReturn
	for _, ret := range r.returns {
		if status == "" || ret.Status == status {
			out = append(out, *ret)
		}
	}
	return out, nil
}

func (r *fakeReturnRepo) Update(orderReturn *models.OrderReturn) error {
	r.returns[orderReturn.ID] = orderReturn
	return nil
}

type historyEntry struct {
	orderID     uint
	status      models.OrderStatus
	description string
	location    string
	changedBy   uint
}

type fakeTrackingRepo struct {
	orderRepo *fakeOrderRepo
	tracking  map[uint]*models.OrderTracking
	history   []historyEntry
}

func newFakeTrackingRepo(orderRepo *fakeOrderRepo) *fakeTrackingRepo {
	return &fakeTrackingRepo{orderRepo: orderRepo, tracking: map[uint]*models.OrderTracking{}}
}

func (r *fakeTrackingRepo) UpdateStatusWithHistory(orderID uint, status models.OrderStatus, description, location string, changedBy uint) error {
	order, ok := r.orderRepo.orders[orderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = string(status)

	tracking, ok := r.tracking[orderID]
	if !ok {
		tracking = &models.OrderTracking{OrderID: orderID}
		r.tracking[orderID] = tracking
	}
	tracking.Status = string(status)

	r.history = append(r.history, historyEntry{orderID, status, description, location, changedBy})
	return nil
}

func (r *fakeTrackingRepo) GetTracking(orderID uint) (*models.OrderTracking, error) {
	tracking, ok := r.tracking[orderID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tracking, nil
}

func (r *fakeTrackingRepo) UpsertTracking(tracking *models.OrderTracking) error {
	r.tracking[tracking.OrderID] = tracking
	return nil
}

func (r *fakeTrackingRepo) GetHistory(orderID uint) ([]models.OrderStatusHistory, error) {
	var out []models.OrderStatusHistory
	for _, h := range r.history {
		if h.orderID == orderID {
			out = append(out, models.OrderStatusHistory{
				OrderID:     h.orderID,
				Status:      string(h.status),
				Description: h.description,
				Location:    h.location,
				ChangedBy:   h.changedBy,
			})
		}
	}
	return out, nil
}

type fakeGateway struct {
	createdOrders []payments.CreateOrderRequest
	paymentStatus string
	refunds       []int64
	failCreate    bool
	failRefund    bool
}

func (g *fakeGateway) CreateOrder(amount int64, currency, receipt string) (*payments.GatewayOrder, error) {
	if g.failCreate {
		return nil, fmt.Errorf("gateway unavailable")
	}
	g.createdOrders = append(g.createdOrders, payments.CreateOrderRequest{Amount: amount, Currency: currency, Receipt: receipt})
	return &payments.GatewayOrder{
		ID:       fmt.Sprintf("order_gw_%d", len(g.createdOrders)),
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

func (g *fakeGateway) FetchPayment(paymentID string) (*payments.GatewayPayment, error) {
	status := g.paymentStatus
	if status == "" {
		status = "captured"
	}
	return &payments.GatewayPayment{ID: paymentID, Status: status}, nil
}

func (g *fakeGateway) RefundPayment(paymentID string, amount int64) (*payments.GatewayRefund, error) {
	if g.failRefund {
		return nil, fmt.Errorf("gateway unavailable")
	}
	g.refunds = append(g.refunds, amount)
	return &payments.GatewayRefund{
		ID:        fmt.Sprintf("rfnd_%d", len(g.refunds)),
		PaymentID: paymentID,
		Amount:    amount,
		Status:    "processed",
	}, nil
}

type memCartStore struct {
	carts map[string]*models.Cart
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: map[string]*models.Cart{}}
}

func (s *memCartStore) SetCart(cartKey string, cart *models.Cart, ttl time.Duration) error {
	copy := *cart
	copy.Items = append([]models.CartItem(nil), cart.Items...)
	s.carts[cartKey] = &copy
	return nil
}

func (s *memCartStore) GetCart(cartKey string) (*models.Cart, error) {
	cart, ok := s.carts[cartKey]
	if !ok {
		return nil, redis.ErrCartNotFound
	}
	copy := *cart
	copy.Items = append([]models.CartItem(nil), cart.Items...)
	return &copy, nil
}

func (s *memCartStore) DeleteCart(cartKey string) error {
	delete(s.carts, cartKey)
	return nil
}
