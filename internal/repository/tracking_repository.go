package repository

import (
	"storefront/internal/models"

	"gorm.io/gorm"
)

type TrackingRepository interface {
	UpdateStatusWithHistory(orderID uint, status models.OrderStatus, description, location string, changedBy uint) error
	GetTracking(orderID uint) (*models.OrderTracking, error)
	UpsertTracking(tracking *models.OrderTracking) error
	GetHistory(orderID uint) ([]models.OrderStatusHistory, error)
}

type trackingRepository struct {
	db *gorm.DB
}

func NewTrackingRepository(db *gorm.DB) TrackingRepository {
	return &trackingRepository{db: db}
}

// UpdateStatusWithHistory updates the order's status, its tracking row and
// appends a history entry inside a single transaction.
func (r *trackingRepository) UpdateStatusWithHistory(orderID uint, status models.OrderStatus, description, location string, changedBy uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).Where("id = ?", orderID).
			Update("status", string(status)).Error; err != nil {
			return err
		}

		var tracking models.OrderTracking
		err := tx.Where("order_id = ?", orderID).First(&tracking).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			tracking = models.OrderTracking{OrderID: orderID, Status: string(status)}
			if err := tx.Create(&tracking).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			tracking.Status = string(status)
			if err := tx.Save(&tracking).Error; err != nil {
				return err
			}
		}

		history := models.OrderStatusHistory{
			OrderID:     orderID,
			Status:      string(status),
			Description: description,
			Location:    location,
			ChangedBy:   changedBy,
		}
		return tx.Create(&history).Error
	})
}

func (r *trackingRepository) GetTracking(orderID uint) (*models.OrderTracking, error) {
	var tracking models.OrderTracking
	err := r.db.Where("order_id = ?", orderID).First(&tracking).Error
	if err != nil {
		return nil, err
	}
	return &tracking, nil
}

func (r *trackingRepository) UpsertTracking(tracking *models.OrderTracking) error {
	var existing models.OrderTracking
	err := r.db.Where("order_id = ?", tracking.OrderID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(tracking).Error
	}
	if err != nil {
		return err
	}

	tracking.ID = existing.ID
	return r.db.Save(tracking).Error
}

func (r *trackingRepository) GetHistory(orderID uint) ([]models.OrderStatusHistory, error) {
	var history []models.OrderStatusHistory
	err := r.db.Where("order_id = ?", orderID).Order("created_at ASC").Find(&history).Error
	return history, err
}
