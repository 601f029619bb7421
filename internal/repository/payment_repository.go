package repository

import (
	"storefront/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	CreateTransaction(transaction *models.PaymentTransaction) error
	GetTransactionsByOrderID(orderID uint) ([]models.PaymentTransaction, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreateTransaction(transaction *models.PaymentTransaction) error {
	return r.db.Create(transaction).Error
}

func (r *paymentRepository) GetTransactionsByOrderID(orderID uint) ([]models.PaymentTransaction, error) {
	var transactions []models.PaymentTransaction
	err := r.db.Where("order_id = ?", orderID).Order("created_at ASC").Find(&transactions).Error
	return transactions, err
}
