package models

import (
	"time"
)

type WishlistItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index:idx_wishlist_user_product,unique"`
	ProductID uint      `json:"product_id" gorm:"not null;index:idx_wishlist_user_product,unique"`
	CreatedAt time.Time `json:"created_at"`
}
