package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"not null"`
	Slug          string         `json:"slug" gorm:"unique;not null"`
	Description   string         `json:"description" gorm:"type:text"`
	Price         float64        `json:"price" gorm:"not null"`
	StockQuantity int            `json:"stock_quantity" gorm:"not null;default:0"`
	CategoryID    uint           `json:"category_id" gorm:"index"`
	ImageURL      string         `json:"image_url"`
	// WeightKG is the unit shipping weight. Items without a configured
	// weight fall back to the 0.5kg default used by the shipping formula.
	WeightKG  float64        `json:"weight_kg" gorm:"default:0.5"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type Category struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"unique;not null"`
	Slug        string         `json:"slug" gorm:"unique;not null"`
	Description string         `json:"description" gorm:"type:text"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
