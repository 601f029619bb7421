package models

import "time"

// Cart lives in Redis, not Postgres: guest carts are keyed by a generated
// cart id with a TTL, user carts by the user id.
type Cart struct {
	ID        string     `json:"id"`
	UserID    uint       `json:"user_id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Subtotal sums the cached line prices. Checkout revalidates against live
// product prices before trusting any of these figures.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// Upsert adds the item or bumps the existing line's quantity.
func (c *Cart) Upsert(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			c.Items[i].UnitPrice = item.UnitPrice
			return
		}
	}
	c.Items = append(c.Items, item)
}

// Remove drops the line for the product if present.
func (c *Cart) Remove(productID uint) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}
