package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderReturn is one-to-one with an order; creation checks for an existing
// row before inserting.
type OrderReturn struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	OrderID      uint           `json:"order_id" gorm:"not null;uniqueIndex"`
	UserID       uint           `json:"user_id" gorm:"not null;index"`
	Reason       string         `json:"reason" gorm:"not null"`
	Description  string         `json:"description" gorm:"type:text"`
	Status       string         `json:"status" gorm:"default:'pending'"` // pending, approved, processed, completed
	RefundAmount float64        `json:"refund_amount"`
	RefundMethod string         `json:"refund_method" gorm:"default:'original_payment_method'"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type ReturnStatus string

const (
	ReturnPending   ReturnStatus = "pending"
	ReturnApproved  ReturnStatus = "approved"
	ReturnProcessed ReturnStatus = "processed"
	ReturnCompleted ReturnStatus = "completed"
)
