package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront/internal/models"

	"github.com/go-redis/redis/v8"
)

var ErrCartNotFound = fmt.Errorf("cart not found")

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Cart storage

func (c *Client) SetCart(cartKey string, cart *models.Cart, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	return c.rdb.Set(ctx, "cart:"+cartKey, jsonData, ttl).Err()
}

func (c *Client) GetCart(cartKey string) (*models.Cart, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "cart:"+cartKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(val), &cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}

	return &cart, nil
}

func (c *Client) DeleteCart(cartKey string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "cart:"+cartKey).Err()
}

// Product cache

func (c *Client) SetCachedProduct(productID uint, product *models.Product, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}

	key := fmt.Sprintf("product:%d", productID)
	return c.rdb.Set(ctx, key, jsonData, ttl).Err()
}

func (c *Client) GetCachedProduct(productID uint) (*models.Product, error) {
	ctx := context.Background()
	key := fmt.Sprintf("product:%d", productID)
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("product not cached")
		}
		return nil, fmt.Errorf("failed to get cached product: %w", err)
	}

	var product models.Product
	if err := json.Unmarshal([]byte(val), &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product: %w", err)
	}

	return &product, nil
}

func (c *Client) InvalidateProduct(productID uint) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, fmt.Sprintf("product:%d", productID)).Err()
}

// Rate limiting: fixed window counter per client key.

func (c *Client) IncrementRequestCount(clientKey string, window time.Duration) (int64, error) {
	ctx := context.Background()
	key := "ratelimit:" + clientKey

	count, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment request count: %w", err)
	}
	if count == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return count, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}
	return count, nil
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
