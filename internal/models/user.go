package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Email        string         `json:"email" gorm:"unique;not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	Phone        string         `json:"phone"`
	Role         string         `json:"role" gorm:"default:'customer'"` // customer, admin
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// Address is a saved shipping/billing address in the user's address book.
// Orders copy the fields at checkout time instead of referencing the row.
type Address struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	UserID     uint           `json:"user_id" gorm:"not null;index"`
	Label      string         `json:"label"`
	FullName   string         `json:"full_name" gorm:"not null"`
	Line1      string         `json:"line1" gorm:"not null"`
	Line2      string         `json:"line2"`
	City       string         `json:"city" gorm:"not null"`
	State      string         `json:"state"`
	PostalCode string         `json:"postal_code" gorm:"not null"`
	Country    string         `json:"country" gorm:"not null"`
	Phone      string         `json:"phone"`
	IsDefault  bool           `json:"is_default" gorm:"default:false"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
