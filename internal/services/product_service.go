package services

import (
	"fmt"
	"log"
	"time"

	"storefront/internal/models"
	"storefront/internal/redis"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

type ProductService interface {
	CreateProduct(product *models.Product) error
	GetProduct(id uint) (*models.Product, error)
	GetProductBySlug(slug string) (*models.Product, error)
	ListProducts(filter repository.ProductFilter) ([]models.Product, int64, error)
	UpdateProduct(product *models.Product) error
	DeleteProduct(id uint) error
}

type productService struct {
	productRepo repository.ProductRepository
	cache       *redis.Client
	cacheTTL    time.Duration
}

func NewProductService(productRepo repository.ProductRepository, cache *redis.Client, cacheTTL time.Duration) ProductService {
	return &productService{
		productRepo: productRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

func (s *productService) CreateProduct(product *models.Product) error {
	return s.productRepo.Create(product)
}

// GetProduct serves from the Redis cache when possible; cache misses and
// cache errors both fall through to the database.
func (s *productService) GetProduct(id uint) (*models.Product, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetCachedProduct(id); err == nil {
			return cached, nil
		}
	}

	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: product %d", ErrProductNotFound, id)
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetCachedProduct(id, product, s.cacheTTL); err != nil {
			log.Printf("failed to cache product %d: %v", id, err)
		}
	}

	return product, nil
}

func (s *productService) GetProductBySlug(slug string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, slug)
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) ListProducts(filter repository.ProductFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

func (s *productService) UpdateProduct(product *models.Product) error {
	if err := s.productRepo.Update(product); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.InvalidateProduct(product.ID); err != nil {
			log.Printf("failed to invalidate product %d: %v", product.ID, err)
		}
	}
	return nil
}

func (s *productService) DeleteProduct(id uint) error {
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.InvalidateProduct(id); err != nil {
			log.Printf("failed to invalidate product %d: %v", id, err)
		}
	}
	return nil
}
