package services

import (
	"storefront/internal/models"
	"storefront/internal/repository"
)

type ShippingService interface {
	GetActiveMethods() ([]models.ShippingMethod, error)
	GetAllMethods() ([]models.ShippingMethod, error)
	CreateMethod(method *models.ShippingMethod) error
	UpdateMethod(method *models.ShippingMethod) error
}

type shippingService struct {
	shippingRepo repository.ShippingRepository
}

func NewShippingService(shippingRepo repository.ShippingRepository) ShippingService {
	return &shippingService{shippingRepo: shippingRepo}
}

func (s *shippingService) GetActiveMethods() ([]models.ShippingMethod, error) {
	return s.shippingRepo.GetAll(true)
}

func (s *shippingService) GetAllMethods() ([]models.ShippingMethod, error) {
	return s.shippingRepo.GetAll(false)
}

func (s *shippingService) CreateMethod(method *models.ShippingMethod) error {
	return s.shippingRepo.Create(method)
}

func (s *shippingService) UpdateMethod(method *models.ShippingMethod) error {
	return s.shippingRepo.Update(method)
}
