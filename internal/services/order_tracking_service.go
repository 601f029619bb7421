package services

import (
	"fmt"
	"time"

	"storefront/internal/models"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

// CourierStatus is the synthetic payload the carrier lookups return.
type CourierStatus struct {
	Carrier           string    `json:"carrier"`
	TrackingNumber    string    `json:"tracking_number"`
	Status            string    `json:"status"`
	Location          string    `json:"location"`
	EstimatedDelivery time.Time `json:"estimated_delivery"`
}

type courierLookup func(trackingNumber string) (*CourierStatus, error)

type OrderTrackingService interface {
	UpdateOrderStatus(orderID uint, status models.OrderStatus, description, location string, changedBy uint) error
	GetTimeline(orderID uint) ([]models.OrderStatusHistory, error)
	GetTracking(orderID uint) (*models.OrderTracking, error)
	SetTrackingDetails(orderID uint, carrier, trackingNumber string, estimatedDelivery *time.Time) error
	TrackWithCourier(orderID uint) (*CourierStatus, error)
}

type orderTrackingService struct {
	orderRepo    repository.OrderRepository
	trackingRepo repository.TrackingRepository
	couriers     map[string]courierLookup
}

func NewOrderTrackingService(orderRepo repository.OrderRepository, trackingRepo repository.TrackingRepository) OrderTrackingService {
	s := &orderTrackingService{
		orderRepo:    orderRepo,
		trackingRepo: trackingRepo,
	}
	// Stubbed carrier integrations; real couriers would slot in here.
	s.couriers = map[string]courierLookup{
		"bluedart":  s.lookupBlueDart,
		"delhivery": s.lookupDelhivery,
	}
	return s
}

// UpdateOrderStatus validates the move against the transition table, then
// writes the order status, tracking row and history entry atomically.
func (s *orderTrackingService) UpdateOrderStatus(orderID uint, status models.OrderStatus, description, location string, changedBy uint) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to load order: %w", err)
	}

	current := models.OrderStatus(order.Status)
	if !current.CanTransition(status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, status)
	}

	return s.trackingRepo.UpdateStatusWithHistory(orderID, status, description, location, changedBy)
}

func (s *orderTrackingService) GetTimeline(orderID uint) ([]models.OrderStatusHistory, error) {
	return s.trackingRepo.GetHistory(orderID)
}

func (s *orderTrackingService) GetTracking(orderID uint) (*models.OrderTracking, error) {
	tracking, err := s.trackingRepo.GetTracking(orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return tracking, nil
}

func (s *orderTrackingService) SetTrackingDetails(orderID uint, carrier, trackingNumber string, estimatedDelivery *time.Time) error {
	tracking := &models.OrderTracking{
		OrderID:           orderID,
		Carrier:           carrier,
		TrackingNumber:    trackingNumber,
		EstimatedDelivery: estimatedDelivery,
	}
	return s.trackingRepo.UpsertTracking(tracking)
}

// TrackWithCourier dispatches to the per-carrier lookup table.
func (s *orderTrackingService) TrackWithCourier(orderID uint) (*CourierStatus, error) {
	tracking, err := s.GetTracking(orderID)
	if err != nil {
		return nil, err
	}
	if tracking.Carrier == "" || tracking.TrackingNumber == "" {
		return nil, fmt.Errorf("order %d has no carrier assigned", orderID)
	}

	lookup, ok := s.couriers[tracking.Carrier]
	if !ok {
		return nil, fmt.Errorf("unsupported carrier: %s", tracking.Carrier)
	}
	return lookup(tracking.TrackingNumber)
}

func (s *orderTrackingService) lookupBlueDart(trackingNumber string) (*CourierStatus, error) {
	return &CourierStatus{
		Carrier:           "bluedart",
		TrackingNumber:    trackingNumber,
		Status:            "in_transit",
		Location:          "Mumbai Hub",
		EstimatedDelivery: time.Now().Add(48 * time.Hour),
	}, nil
}

func (s *orderTrackingService) lookupDelhivery(trackingNumber string) (*CourierStatus, error) {
	return &CourierStatus{
		Carrier:           "delhivery",
		TrackingNumber:    trackingNumber,
		Status:            "out_for_delivery",
		Location:          "Delhi NCR",
		EstimatedDelivery: time.Now().Add(24 * time.Hour),
	}, nil
}
