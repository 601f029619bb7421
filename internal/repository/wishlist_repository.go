package repository

import (
	"storefront/internal/models"

	"gorm.io/gorm"
)

type WishlistRepository interface {
	Add(item *models.WishlistItem) error
	Remove(userID, productID uint) error
	GetByUserID(userID uint) ([]models.WishlistItem, error)
	Exists(userID, productID uint) (bool, error)
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Add(item *models.WishlistItem) error {
	return r.db.Create(item).Error
}

func (r *wishlistRepository) Remove(userID, productID uint) error {
	return r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{}).Error
}

func (r *wishlistRepository) GetByUserID(userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *wishlistRepository) Exists(userID, productID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}
