package repository

import (
	"storefront/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(id uint) (*models.Review, error)
	GetByProductAndUser(productID, userID uint) (*models.Review, error)
	GetByProductID(productID uint, approvedOnly bool) ([]models.Review, error)
	GetPending() ([]models.Review, error)
	AverageRating(productID uint) (float64, int64, error)
	Update(review *models.Review) error
	Delete(id uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetByProductAndUser(productID, userID uint) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("product_id = ? AND user_id = ?", productID, userID).First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetByProductID(productID uint, approvedOnly bool) ([]models.Review, error) {
	query := r.db.Where("product_id = ?", productID)
	if approvedOnly {
		query = query.Where("is_approved = ?", true)
	}

	var reviews []models.Review
	err := query.Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) GetPending() ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("is_approved = ?", false).Order("created_at ASC").Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) AverageRating(productID uint) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := r.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("product_id = ? AND is_approved = ?", productID, true).
		Scan(&result).Error
	return result.Avg, result.Count, err
}

func (r *reviewRepository) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

func (r *reviewRepository) Delete(id uint) error {
	return r.db.Delete(&models.Review{}, id).Error
}
