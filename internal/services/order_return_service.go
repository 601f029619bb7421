package services

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

type ReturnRequest struct {
	OrderID     uint   `json:"order_id" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
	Description string `json:"description"`
}

type OrderReturnService interface {
	CreateReturnRequest(userID uint, req *ReturnRequest) (*models.OrderReturn, error)
	UpdateReturnStatus(returnID uint, status models.ReturnStatus, refundAmount float64) (*models.OrderReturn, error)
	GetReturn(returnID uint) (*models.OrderReturn, error)
	GetReturnsByUser(userID uint) ([]models.OrderReturn, error)
	GetAllReturns(status string) ([]models.OrderReturn, error)
}

type orderReturnService struct {
	returnRepo repository.OrderReturnRepository
	orderRepo  repository.OrderRepository
	payments   PaymentService
}

func NewOrderReturnService(
	returnRepo repository.OrderReturnRepository,
	orderRepo repository.OrderRepository,
	payments PaymentService,
) OrderReturnService {
	return &orderReturnService{
		returnRepo: returnRepo,
		orderRepo:  orderRepo,
		payments:   payments,
	}
}

// CreateReturnRequest allows one return per order and only once the order
// has shipped or been delivered. Refund amount defaults to the order total
// and the method to the original payment method.
func (s *orderReturnService) CreateReturnRequest(userID uint, req *ReturnRequest) (*models.OrderReturn, error) {
	order, err := s.orderRepo.GetByID(req.OrderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order.UserID != userID {
		return nil, ErrNotOrderOwner
	}

	if !models.OrderStatus(order.Status).CanRequestReturn() {
		return nil, fmt.Errorf("%w: order is %s", ErrReturnNotEligible, order.Status)
	}

	if _, err := s.returnRepo.GetByOrderID(order.ID); err == nil {
		return nil, ErrReturnAlreadyExists
	} else if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to check existing return: %w", err)
	}

	orderReturn := &models.OrderReturn{
		OrderID:      order.ID,
		UserID:       userID,
		Reason:       req.Reason,
		Description:  req.Description,
		Status:       string(models.ReturnPending),
		RefundAmount: order.TotalAmount,
		RefundMethod: "original_payment_method",
	}
	if err := s.returnRepo.Create(orderReturn); err != nil {
		return nil, fmt.Errorf("failed to create return request: %w", err)
	}

	return orderReturn, nil
}

// UpdateReturnStatus advances the return through the transition table.
// Approving with a refund amount triggers the refund immediately and, on
// success, self-advances to processed. The completed step stays a separate
// explicit transition for when the goods arrive back.
func (s *orderReturnService) UpdateReturnStatus(returnID uint, status models.ReturnStatus, refundAmount float64) (*models.OrderReturn, error) {
	orderReturn, err := s.returnRepo.GetByID(returnID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrReturnNotFound
		}
		return nil, fmt.Errorf("failed to load return: %w", err)
	}

	current := models.ReturnStatus(orderReturn.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}
	if !current.CanTransition(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, status)
	}

	if refundAmount > 0 {
		order, err := s.orderRepo.GetByID(orderReturn.OrderID)
		if err != nil {
			return nil, fmt.Errorf("failed to load order: %w", err)
		}
		if refundAmount > order.TotalAmount {
			return nil, ErrRefundExceedsTotal
		}
		orderReturn.RefundAmount = refundAmount
	}

	orderReturn.Status = string(status)
	if err := s.returnRepo.Update(orderReturn); err != nil {
		return nil, fmt.Errorf("failed to update return: %w", err)
	}

	if status == models.ReturnApproved && orderReturn.RefundAmount > 0 {
		result := s.payments.ProcessRefund(orderReturn.OrderID, orderReturn.RefundAmount)
		if !result.Success {
			return nil, fmt.Errorf("refund failed: %s", result.Message)
		}

		orderReturn.Status = string(models.ReturnProcessed)
		if err := s.returnRepo.Update(orderReturn); err != nil {
			return nil, fmt.Errorf("failed to mark return processed: %w", err)
		}
	}

	return orderReturn, nil
}

func (s *orderReturnService) GetReturn(returnID uint) (*models.OrderReturn, error) {
	orderReturn, err := s.returnRepo.GetByID(returnID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrReturnNotFound
		}
		return nil, err
	}
	return orderReturn, nil
}

func (s *orderReturnService) GetReturnsByUser(userID uint) ([]models.OrderReturn, error) {
	return s.returnRepo.GetByUserID(userID)
}

func (s *orderReturnService) GetAllReturns(status string) ([]models.OrderReturn, error) {
	return s.returnRepo.GetAll(status)
}
