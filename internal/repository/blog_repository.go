package repository

import (
	"storefront/internal/models"

	"gorm.io/gorm"
)

type BlogRepository interface {
	Create(post *models.BlogPost) error
	GetByID(id uint) (*models.BlogPost, error)
	GetBySlug(slug string) (*models.BlogPost, error)
	List(publishedOnly bool, limit, offset int) ([]models.BlogPost, int64, error)
	Update(post *models.BlogPost) error
	Delete(id uint) error
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

func (r *blogRepository) GetByID(id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) GetBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Where("slug = ?", slug).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) List(publishedOnly bool, limit, offset int) ([]models.BlogPost, int64, error) {
	query := r.db.Model(&models.BlogPost{})
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var posts []models.BlogPost
	err := query.Order("created_at DESC").Find(&posts).Error
	return posts, total, err
}

func (r *blogRepository) Update(post *models.BlogPost) error {
	return r.db.Save(post).Error
}

func (r *blogRepository) Delete(id uint) error {
	return r.db.Delete(&models.BlogPost{}, id).Error
}
