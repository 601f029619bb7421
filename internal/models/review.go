package models

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	ProductID  uint           `json:"product_id" gorm:"not null;index:idx_reviews_product_user,unique"`
	UserID     uint           `json:"user_id" gorm:"not null;index:idx_reviews_product_user,unique"`
	Rating     int            `json:"rating" gorm:"not null"` // 1..5
	Title      string         `json:"title"`
	Comment    string         `json:"comment" gorm:"type:text"`
	IsApproved bool           `json:"is_approved" gorm:"default:false"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
