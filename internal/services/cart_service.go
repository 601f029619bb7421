package services

import (
	"fmt"
	"time"

	"storefront/internal/models"
	"storefront/internal/redis"
	"storefront/internal/repository"

	"github.com/google/uuid"
)

// CartStore is the slice of the Redis client the cart service uses;
// redis.Client satisfies it.
type CartStore interface {
	SetCart(cartKey string, cart *models.Cart, ttl time.Duration) error
	GetCart(cartKey string) (*models.Cart, error)
	DeleteCart(cartKey string) error
}

type CartService interface {
	CreateGuestCart() (*models.Cart, error)
	GetCart(cartKey string) (*models.Cart, error)
	AddItem(cartKey string, productID uint, quantity int) (*models.Cart, error)
	UpdateItemQuantity(cartKey string, productID uint, quantity int) (*models.Cart, error)
	RemoveItem(cartKey string, productID uint) (*models.Cart, error)
	ClearCart(cartKey string) error
	MergeGuestCart(guestCartID string, userID uint) (*models.Cart, error)
}

type cartService struct {
	store       CartStore
	productRepo repository.ProductRepository
	guestTTL    time.Duration
	userTTL     time.Duration
}

func NewCartService(store CartStore, productRepo repository.ProductRepository, guestTTL time.Duration) CartService {
	return &cartService{
		store:       store,
		productRepo: productRepo,
		guestTTL:    guestTTL,
		userTTL:     0, // user carts do not expire
	}
}

// UserCartKey returns the cart key for a logged-in user.
func UserCartKey(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}

// GuestCartKey returns the cart key for an anonymous cart id.
func GuestCartKey(cartID string) string {
	return "guest:" + cartID
}

func (s *cartService) CreateGuestCart() (*models.Cart, error) {
	cart := &models.Cart{
		ID:        uuid.NewString(),
		Items:     []models.CartItem{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.store.SetCart(GuestCartKey(cart.ID), cart, s.guestTTL); err != nil {
		return nil, fmt.Errorf("failed to create guest cart: %w", err)
	}
	return cart, nil
}

func (s *cartService) GetCart(cartKey string) (*models.Cart, error) {
	cart, err := s.store.GetCart(cartKey)
	if err == redis.ErrCartNotFound {
		return &models.Cart{Items: []models.CartItem{}}, nil
	}
	return cart, err
}

func (s *cartService) AddItem(cartKey string, productID uint, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: product %d", ErrProductNotFound, productID)
	}
	if !product.IsActive {
		return nil, fmt.Errorf("%w: %s", ErrProductInactive, product.Name)
	}

	cart, err := s.GetCart(cartKey)
	if err != nil {
		return nil, err
	}

	cart.Upsert(models.CartItem{
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: product.Price,
	})
	cart.UpdatedAt = time.Now()

	if err := s.save(cartKey, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) UpdateItemQuantity(cartKey string, productID uint, quantity int) (*models.Cart, error) {
	cart, err := s.GetCart(cartKey)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		cart.Remove(productID)
	} else {
		found := false
		for i := range cart.Items {
			if cart.Items[i].ProductID == productID {
				cart.Items[i].Quantity = quantity
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: product %d not in cart", ErrProductNotFound, productID)
		}
	}
	cart.UpdatedAt = time.Now()

	if err := s.save(cartKey, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) RemoveItem(cartKey string, productID uint) (*models.Cart, error) {
	cart, err := s.GetCart(cartKey)
	if err != nil {
		return nil, err
	}

	cart.Remove(productID)
	cart.UpdatedAt = time.Now()

	if err := s.save(cartKey, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) ClearCart(cartKey string) error {
	return s.store.DeleteCart(cartKey)
}

// MergeGuestCart folds a guest cart into the user's cart at login:
// union of lines with quantities summed, then the guest cart is deleted.
func (s *cartService) MergeGuestCart(guestCartID string, userID uint) (*models.Cart, error) {
	guestCart, err := s.store.GetCart(GuestCartKey(guestCartID))
	if err == redis.ErrCartNotFound {
		return s.GetCart(UserCartKey(userID))
	}
	if err != nil {
		return nil, err
	}

	userCart, err := s.GetCart(UserCartKey(userID))
	if err != nil {
		return nil, err
	}
	userCart.UserID = userID

	for _, item := range guestCart.Items {
		userCart.Upsert(item)
	}
	userCart.UpdatedAt = time.Now()

	if err := s.save(UserCartKey(userID), userCart); err != nil {
		return nil, err
	}
	if err := s.store.DeleteCart(GuestCartKey(guestCartID)); err != nil {
		return nil, fmt.Errorf("failed to delete guest cart: %w", err)
	}

	return userCart, nil
}

func (s *cartService) save(cartKey string, cart *models.Cart) error {
	ttl := s.userTTL
	if len(cartKey) > 6 && cartKey[:6] == "guest:" {
		ttl = s.guestTTL
	}
	if err := s.store.SetCart(cartKey, cart, ttl); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
