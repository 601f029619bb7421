package models

import (
	"time"
)

// PaymentTransaction is an append-only log row per gateway event.
// Refunds are recorded with a negative amount.
type PaymentTransaction struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	OrderID          uint      `json:"order_id" gorm:"not null;index"`
	GatewayPaymentID string    `json:"gateway_payment_id"`
	GatewayRefundID  string    `json:"gateway_refund_id"`
	Type             string    `json:"type" gorm:"not null"` // capture, refund
	Amount           float64   `json:"amount" gorm:"not null"`
	Currency         string    `json:"currency" gorm:"default:'INR'"`
	Status           string    `json:"status" gorm:"not null"`
	CreatedAt        time.Time `json:"created_at"`
}

type TransactionType string

const (
	TransactionCapture TransactionType = "capture"
	TransactionRefund  TransactionType = "refund"
)
