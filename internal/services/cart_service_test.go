package services

import (
	"testing"
	"time"

	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartFixture() (CartService, *memCartStore) {
	productRepo := newFakeProductRepo(
		&models.Product{ID: 1, Name: "Keyboard", Price: 50.00, StockQuantity: 10, IsActive: true},
		&models.Product{ID: 2, Name: "Mouse", Price: 20.00, StockQuantity: 5, IsActive: true},
		&models.Product{ID: 3, Name: "Retired Webcam", Price: 35.00, StockQuantity: 3, IsActive: false},
	)
	store := newMemCartStore()
	return NewCartService(store, productRepo, 7*24*time.Hour), store
}

func TestCreateGuestCart(t *testing.T) {
	svc, store := cartFixture()

	cart, err := svc.CreateGuestCart()
	require.NoError(t, err)
	assert.NotEmpty(t, cart.ID)
	assert.Empty(t, cart.Items)

	_, ok := store.carts[GuestCartKey(cart.ID)]
	assert.True(t, ok)
}

func TestAddItem(t *testing.T) {
	t.Run("adds and accumulates quantity", func(t *testing.T) {
		svc, _ := cartFixture()
		key := UserCartKey(7)

		cart, err := svc.AddItem(key, 1, 2)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		assert.Equal(t, 50.00, cart.Items[0].UnitPrice)

		cart, err = svc.AddItem(key, 1, 3)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 5, cart.Items[0].Quantity)

		cart, err = svc.AddItem(key, 2, 1)
		require.NoError(t, err)
		assert.Len(t, cart.Items, 2)
		assert.Equal(t, 270.00, cart.Subtotal())
	})

	t.Run("unknown product", func(t *testing.T) {
		svc, _ := cartFixture()

		_, err := svc.AddItem(UserCartKey(7), 42, 1)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("inactive product", func(t *testing.T) {
		svc, _ := cartFixture()

		_, err := svc.AddItem(UserCartKey(7), 3, 1)
		assert.ErrorIs(t, err, ErrProductInactive)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		svc, _ := cartFixture()

		_, err := svc.AddItem(UserCartKey(7), 1, 0)
		assert.Error(t, err)
	})
}

func TestUpdateItemQuantity(t *testing.T) {
	svc, _ := cartFixture()
	key := UserCartKey(7)
	_, err := svc.AddItem(key, 1, 2)
	require.NoError(t, err)

	t.Run("sets an absolute quantity", func(t *testing.T) {
		cart, err := svc.UpdateItemQuantity(key, 1, 7)
		require.NoError(t, err)
		assert.Equal(t, 7, cart.Items[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		cart, err := svc.UpdateItemQuantity(key, 1, 0)
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
	})

	t.Run("product not in cart", func(t *testing.T) {
		_, err := svc.UpdateItemQuantity(key, 2, 3)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRemoveAndClear(t *testing.T) {
	svc, store := cartFixture()
	key := UserCartKey(7)
	_, err := svc.AddItem(key, 1, 2)
	require.NoError(t, err)
	_, err = svc.AddItem(key, 2, 1)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(key, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(2), cart.Items[0].ProductID)

	require.NoError(t, svc.ClearCart(key))
	_, ok := store.carts[key]
	assert.False(t, ok)

	// Reading a cleared cart yields an empty cart, not an error.
	cart, err = svc.GetCart(key)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestMergeGuestCart(t *testing.T) {
	t.Run("union with quantities summed", func(t *testing.T) {
		svc, store := cartFixture()

		guest, err := svc.CreateGuestCart()
		require.NoError(t, err)
		_, err = svc.AddItem(GuestCartKey(guest.ID), 1, 2)
		require.NoError(t, err)
		_, err = svc.AddItem(GuestCartKey(guest.ID), 2, 1)
		require.NoError(t, err)

		userKey := UserCartKey(7)
		_, err = svc.AddItem(userKey, 1, 1)
		require.NoError(t, err)

		merged, err := svc.MergeGuestCart(guest.ID, 7)
		require.NoError(t, err)
		require.Len(t, merged.Items, 2)

		byProduct := map[uint]int{}
		for _, item := range merged.Items {
			byProduct[item.ProductID] = item.Quantity
		}
		assert.Equal(t, 3, byProduct[1])
		assert.Equal(t, 1, byProduct[2])

		_, ok := store.carts[GuestCartKey(guest.ID)]
		assert.False(t, ok, "guest cart should be deleted after merge")
	})

	t.Run("missing guest cart leaves the user cart untouched", func(t *testing.T) {
		svc, _ := cartFixture()
		userKey := UserCartKey(7)
		_, err := svc.AddItem(userKey, 1, 1)
		require.NoError(t, err)

		merged, err := svc.MergeGuestCart("no-such-cart", 7)
		require.NoError(t, err)
		require.Len(t, merged.Items, 1)
		assert.Equal(t, 1, merged.Items[0].Quantity)
	})
}
