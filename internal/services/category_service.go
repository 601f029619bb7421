package services

import (
	"storefront/internal/models"
	"storefront/internal/repository"
)

type CategoryService interface {
	CreateCategory(category *models.Category) error
	GetCategory(id uint) (*models.Category, error)
	GetCategoryBySlug(slug string) (*models.Category, error)
	GetAllCategories(activeOnly bool) ([]models.Category, error)
	UpdateCategory(category *models.Category) error
	DeleteCategory(id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(category *models.Category) error {
	return s.categoryRepo.Create(category)
}

func (s *categoryService) GetCategory(id uint) (*models.Category, error) {
	return s.categoryRepo.GetByID(id)
}

func (s *categoryService) GetCategoryBySlug(slug string) (*models.Category, error) {
	return s.categoryRepo.GetBySlug(slug)
}

func (s *categoryService) GetAllCategories(activeOnly bool) ([]models.Category, error) {
	return s.categoryRepo.GetAll(activeOnly)
}

func (s *categoryService) UpdateCategory(category *models.Category) error {
	return s.categoryRepo.Update(category)
}

func (s *categoryService) DeleteCategory(id uint) error {
	return s.categoryRepo.Delete(id)
}
