// Package cart holds the in-memory shopping cart. The cart lives for the
// lifetime of the process and is never persisted; it is emptied once an
// order is placed.
package cart

import (
	"errors"
	"sync"

	"github.com/earnhalal/Lasercurrencystore/models"
)

// ErrProductUnavailable rejects adding a product that is not available
var ErrProductUnavailable = errors.New("product is not available")

// Cart is an ordered list of line items, at most one per product id.
// Safe for concurrent use.
type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
}

// New returns an empty cart
func New() *Cart {
	return &Cart{}
}

// Add puts one unit of product in the cart. Adding a product already in
// the cart increments its quantity. Products that are not available never
// enter the cart.
func (c *Cart) Add(product models.Product) error {
	if !product.Available() {
		return ErrProductUnavailable
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == product.ID {
			c.items[i].Quantity++
			return nil
		}
	}
	c.items = append(c.items, models.CartItem{Product: product, Quantity: 1})
	return nil
}

// Remove deletes the line item for productID outright, whatever its
// quantity. Removing an absent product is a no-op.
func (c *Cart) Remove(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns a snapshot copy of the cart contents
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalAmount recomputes the cart total from the current line items
func (c *Cart) TotalAmount() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

// Len returns the number of line items
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}
