package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/earnhalal/Lasercurrencystore/cart"
	"github.com/earnhalal/Lasercurrencystore/catalog"
)

// CartController handles cart-related requests
type CartController struct {
	Cart *cart.Cart
}

// NewCartController creates a new CartController
func NewCartController(c *cart.Cart) *CartController {
	return &CartController{Cart: c}
}

// AddToCart adds one unit of a catalog product to the cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int `json:"product_id"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	product, ok := catalog.ProductByID(req.ProductID)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	if err := cc.Cart.Add(product); err != nil {
		if errors.Is(err, cart.ErrProductUnavailable) {
			http.Error(w, "Product is not available", http.StatusBadRequest)
			return
		}
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode("Item added to cart")
}

// RemoveFromCart removes a line item from the cart entirely
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	productID, err := strconv.Atoi(params["product_id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	cc.Cart.Remove(productID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode("Item removed from cart")
}

// GetCart retrieves the cart contents and live totals
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	total := cc.Cart.TotalAmount()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"items":          cc.Cart.Items(),
		"totalAmount":    total,
		"advancePayment": total / 2,
	})
}
