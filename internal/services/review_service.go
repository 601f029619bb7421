package services

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

type ProductRating struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

type ReviewService interface {
	CreateReview(review *models.Review) error
	GetProductReviews(productID uint, includeUnapproved bool) ([]models.Review, error)
	GetProductRating(productID uint) (*ProductRating, error)
	GetPendingReviews() ([]models.Review, error)
	ApproveReview(reviewID uint) error
	DeleteReview(reviewID uint) error
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, productRepo: productRepo}
}

// CreateReview enforces one review per user per product; reviews start
// unapproved and become public after moderation.
func (s *reviewService) CreateReview(review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidRating
	}

	if _, err := s.productRepo.GetByID(review.ProductID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("%w: product %d", ErrProductNotFound, review.ProductID)
		}
		return err
	}

	if _, err := s.reviewRepo.GetByProductAndUser(review.ProductID, review.UserID); err == nil {
		return ErrReviewExists
	} else if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("failed to check existing review: %w", err)
	}

	review.IsApproved = false
	return s.reviewRepo.Create(review)
}

func (s *reviewService) GetProductReviews(productID uint, includeUnapproved bool) ([]models.Review, error) {
	return s.reviewRepo.GetByProductID(productID, !includeUnapproved)
}

func (s *reviewService) GetProductRating(productID uint) (*ProductRating, error) {
	avg, count, err := s.reviewRepo.AverageRating(productID)
	if err != nil {
		return nil, err
	}
	return &ProductRating{Average: avg, Count: count}, nil
}

func (s *reviewService) GetPendingReviews() ([]models.Review, error) {
	return s.reviewRepo.GetPending()
}

func (s *reviewService) ApproveReview(reviewID uint) error {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrReviewNotFound
		}
		return err
	}
	review.IsApproved = true
	return s.reviewRepo.Update(review)
}

func (s *reviewService) DeleteReview(reviewID uint) error {
	if _, err := s.reviewRepo.GetByID(reviewID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrReviewNotFound
		}
		return err
	}
	return s.reviewRepo.Delete(reviewID)
}
