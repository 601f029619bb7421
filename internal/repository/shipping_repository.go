package repository

import (
	"storefront/internal/models"

	"gorm.io/gorm"
)

type ShippingRepository interface {
	Create(method *models.ShippingMethod) error
	GetByID(id uint) (*models.ShippingMethod, error)
	GetActiveByID(id uint) (*models.ShippingMethod, error)
	GetByName(name string) (*models.ShippingMethod, error)
	GetAll(activeOnly bool) ([]models.ShippingMethod, error)
	Update(method *models.ShippingMethod) error
}

type shippingRepository struct {
	db *gorm.DB
}

func NewShippingRepository(db *gorm.DB) ShippingRepository {
	return &shippingRepository{db: db}
}

func (r *shippingRepository) Create(method *models.ShippingMethod) error {
	return r.db.Create(method).Error
}

func (r *shippingRepository) GetByID(id uint) (*models.ShippingMethod, error) {
	var method models.ShippingMethod
	err := r.db.First(&method, id).Error
	if err != nil {
		return nil, err
	}
	return &method, nil
}

func (r *shippingRepository) GetActiveByID(id uint) (*models.ShippingMethod, error) {
	var method models.ShippingMethod
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&method).Error
	if err != nil {
		return nil, err
	}
	return &method, nil
}

func (r *shippingRepository) GetByName(name string) (*models.ShippingMethod, error) {
	var method models.ShippingMethod
	err := r.db.Where("name = ?", name).First(&method).Error
	if err != nil {
		return nil, err
	}
	return &method, nil
}

func (r *shippingRepository) GetAll(activeOnly bool) ([]models.ShippingMethod, error) {
	query := r.db.Model(&models.ShippingMethod{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var methods []models.ShippingMethod
	err := query.Order("base_rate ASC").Find(&methods).Error
	return methods, err
}

func (r *shippingRepository) Update(method *models.ShippingMethod) error {
	return r.db.Save(method).Error
}
