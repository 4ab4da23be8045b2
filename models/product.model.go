package models

// ProductStatus marks catalog availability
type ProductStatus string

const (
	ProductAvailable  ProductStatus = "available"
	ProductStockEnd   ProductStatus = "stock-end"
	ProductComingSoon ProductStatus = "coming-soon"
)

// Product is an immutable catalog entry
type Product struct {
	ID          int           `bson:"id" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Price       float64       `bson:"price" json:"price"`
	Description string        `bson:"description" json:"description"`
	ImageURL    string        `bson:"image_url" json:"imageUrl"`
	Status      ProductStatus `bson:"status" json:"status"`
}

// Available reports whether the product can be added to a cart
func (p Product) Available() bool {
	return p.Status == ProductAvailable
}
