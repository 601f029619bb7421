package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderTracking holds the single current tracking row for an order.
type OrderTracking struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	OrderID           uint           `json:"order_id" gorm:"not null;uniqueIndex"`
	Carrier           string         `json:"carrier"`
	TrackingNumber    string         `json:"tracking_number"`
	Status            string         `json:"status"`
	EstimatedDelivery *time.Time     `json:"estimated_delivery"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// OrderStatusHistory is the append-only audit trail of status changes.
type OrderStatusHistory struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OrderID     uint      `json:"order_id" gorm:"not null;index"`
	Status      string    `json:"status" gorm:"not null"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	ChangedBy   uint      `json:"changed_by"`
	CreatedAt   time.Time `json:"created_at"`
}
