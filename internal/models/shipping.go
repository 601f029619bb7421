package models

import (
	"time"

	"gorm.io/gorm"
)

// ShippingMethod is a weight-rate table row: cost = BaseRate + RatePerKG * weight.
type ShippingMethod struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"unique;not null"` // standard, express
	DisplayName  string         `json:"display_name"`
	BaseRate     float64        `json:"base_rate" gorm:"not null"`
	RatePerKG    float64        `json:"rate_per_kg" gorm:"not null"`
	DeliveryDays int            `json:"delivery_days"`
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
