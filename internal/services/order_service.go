package services

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

type OrderService interface {
	GetOrder(orderID uint) (*models.Order, error)
	GetOrderForUser(orderID, userID uint) (*models.Order, error)
	GetOrdersByUser(userID uint) ([]models.Order, error)
	GetAllOrders(limit, offset int) ([]models.Order, int64, error)
	CancelOrder(orderID, userID uint) error
	GetTransactions(orderID uint) ([]models.PaymentTransaction, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	payments    PaymentService
}

func NewOrderService(orderRepo repository.OrderRepository, paymentRepo repository.PaymentRepository, payments PaymentService) OrderService {
	return &orderService{orderRepo: orderRepo, paymentRepo: paymentRepo, payments: payments}
}

func (s *orderService) GetOrder(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOrderForUser(orderID, userID uint) (*models.Order, error) {
	order, err := s.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrNotOrderOwner
	}
	return order, nil
}

func (s *orderService) GetOrdersByUser(userID uint) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

func (s *orderService) GetAllOrders(limit, offset int) ([]models.Order, int64, error) {
	return s.orderRepo.GetAll(limit, offset)
}

// CancelOrder cancels while the order is still pending or confirmed. A paid
// order gets its payment refunded in full; an unpaid one is just flipped.
func (s *orderService) CancelOrder(orderID, userID uint) error {
	order, err := s.GetOrderForUser(orderID, userID)
	if err != nil {
		return err
	}

	if !models.OrderStatus(order.Status).CanCancel() {
		return fmt.Errorf("%w: order is %s", ErrOrderNotCancellable, order.Status)
	}

	if order.PaymentStatus == string(models.PaymentPaid) {
		result := s.payments.ProcessRefund(order.ID, 0)
		if !result.Success {
			return fmt.Errorf("cancellation refund failed: %s", result.Message)
		}
		return nil
	}

	order.Status = string(models.OrderCancelled)
	if err := s.orderRepo.Update(order); err != nil {
		return fmt.Errorf("failed to cancel order: %w", err)
	}
	return nil
}

func (s *orderService) GetTransactions(orderID uint) ([]models.PaymentTransaction, error) {
	return s.paymentRepo.GetTransactionsByOrderID(orderID)
}
