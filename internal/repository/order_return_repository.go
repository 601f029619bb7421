package repository

import (
	"storefront/internal/models"

	"gorm.io/gorm"
)

type OrderReturnRepository interface {
	Create(orderReturn *models.OrderReturn) error
	GetByID(id uint) (*models.OrderReturn, error)
	GetByOrderID(orderID uint) (*models.OrderReturn, error)
	GetByUserID(userID uint) ([]models.OrderReturn, error)
	GetAll(status string) ([]models.OrderReturn, error)
	Update(orderReturn *models.OrderReturn) error
}

type orderReturnRepository struct {
	db *gorm.DB
}

func NewOrderReturnRepository(db *gorm.DB) OrderReturnRepository {
	return &orderReturnRepository{db: db}
}

func (r *orderReturnRepository) Create(orderReturn *models.OrderReturn) error {
	return r.db.Create(orderReturn).Error
}

func (r *orderReturnRepository) GetByID(id uint) (*models.OrderReturn, error) {
	var orderReturn models.OrderReturn
	err := r.db.First(&orderReturn, id).Error
	if err != nil {
		return nil, err
	}
	return &orderReturn, nil
}

func (r *orderReturnRepository) GetByOrderID(orderID uint) (*models.OrderReturn, error) {
	var orderReturn models.OrderReturn
	err := r.db.Where("order_id = ?", orderID).First(&orderReturn).Error
	if err != nil {
		return nil, err
	}
	return &orderReturn, nil
}

func (r *orderReturnRepository) GetByUserID(userID uint) ([]models.OrderReturn, error) {
	var returns []models.OrderReturn
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&returns).Error
	return returns, err
}

func (r *orderReturnRepository) GetAll(status string) ([]models.OrderReturn, error) {
	query := r.db.Model(&models.OrderReturn{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var returns []models.OrderReturn
	err := query.Order("created_at DESC").Find(&returns).Error
	return returns, err
}

func (r *orderReturnRepository) Update(orderReturn *models.OrderReturn) error {
	return r.db.Save(orderReturn).Error
}
