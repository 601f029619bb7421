package services

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

type WishlistEntry struct {
	ProductID uint            `json:"product_id"`
	Product   *models.Product `json:"product,omitempty"`
	AddedAt   string          `json:"added_at"`
}

type WishlistService interface {
	AddToWishlist(userID, productID uint) error
	RemoveFromWishlist(userID, productID uint) error
	GetWishlist(userID uint) ([]WishlistEntry, error)
}

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) WishlistService {
	return &wishlistService{wishlistRepo: wishlistRepo, productRepo: productRepo}
}

func (s *wishlistService) AddToWishlist(userID, productID uint) error {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("%w: product %d", ErrProductNotFound, productID)
		}
		return err
	}

	exists, err := s.wishlistRepo.Exists(userID, productID)
	if err != nil {
		return fmt.Errorf("failed to check wishlist: %w", err)
	}
	if exists {
		return ErrWishlistDuplicate
	}

	return s.wishlistRepo.Add(&models.WishlistItem{UserID: userID, ProductID: productID})
}

func (s *wishlistService) RemoveFromWishlist(userID, productID uint) error {
	return s.wishlistRepo.Remove(userID, productID)
}

func (s *wishlistService) GetWishlist(userID uint) ([]WishlistEntry, error) {
	items, err := s.wishlistRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	entries := make([]WishlistEntry, 0, len(items))
	for _, item := range items {
		entry := WishlistEntry{
			ProductID: item.ProductID,
			AddedAt:   item.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		// Products removed from the catalog stay listed without details.
		if product, err := s.productRepo.GetByID(item.ProductID); err == nil {
			entry.Product = product
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
