package models

// CartItem is a product line in the cart or in an order snapshot
type CartItem struct {
	Product  `bson:",inline"`
	Quantity int `bson:"quantity" json:"quantity"`
}

// Subtotal returns the line total for this item
func (ci CartItem) Subtotal() float64 {
	return ci.Price * float64(ci.Quantity)
}
