package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	OrderNumber string `json:"order_number" gorm:"unique;not null"`
	UserID      uint   `json:"user_id" gorm:"index"`

	Status        string `json:"status" gorm:"default:'pending'"` // pending, confirmed, shipped, delivered, cancelled
	PaymentStatus string `json:"payment_status" gorm:"default:'unpaid'"`

	Subtotal       float64 `json:"subtotal" gorm:"not null"`
	TaxAmount      float64 `json:"tax_amount" gorm:"not null"`
	ShippingAmount float64 `json:"shipping_amount" gorm:"not null"`
	TotalAmount    float64 `json:"total_amount" gorm:"not null"`

	ShippingMethodID uint   `json:"shipping_method_id"`
	PaymentMethod    string `json:"payment_method"`

	GatewayOrderID   string `json:"gateway_order_id" gorm:"index"`
	GatewayPaymentID string `json:"gateway_payment_id"`

	// Address snapshot taken at checkout time.
	ShipFullName   string `json:"ship_full_name"`
	ShipLine1      string `json:"ship_line1"`
	ShipLine2      string `json:"ship_line2"`
	ShipCity       string `json:"ship_city"`
	ShipState      string `json:"ship_state"`
	ShipPostalCode string `json:"ship_postal_code"`
	ShipCountry    string `json:"ship_country"`
	ShipPhone      string `json:"ship_phone"`

	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)
