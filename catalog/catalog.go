// Package catalog holds the static product listing. The catalog is a pure
// read-only data source; nothing in the service mutates it.
package catalog

import "github.com/earnhalal/Lasercurrencystore/models"

var products = []models.Product{
	{ID: 1, Name: "Laser Notes 10 – 10 PKR per copie – Total 350 PKR", Price: 350, Description: "A set of 10 high-quality laser-printed notes for collectors.", ImageURL: "https://images.unsplash.com/photo-1639755498350-238b3443a2c9?w=400&q=80", Status: models.ProductAvailable},
	{ID: 2, Name: "Laser Notes 20 – 20 PKR per copie – Total 550 PKR", Price: 550, Description: "A set of 20 high-quality laser-printed notes for collectors.", ImageURL: "https://images.unsplash.com/photo-1639755498350-238b3443a2c9?w=400&q=80&hue=120", Status: models.ProductAvailable},
	{ID: 3, Name: "Laser Notes 50 – 50 PKR per copie – Total 1550 PKR", Price: 1550, Description: "A set of 50 high-quality laser-printed notes for collectors.", ImageURL: "https://images.unsplash.com/photo-1639755498350-238b3443a2c9?w=400&q=80&hue=50", Status: models.ProductAvailable},
	{ID: 4, Name: "Laser Notes 100 – 100 PKR per copie – Total 1550 PKR", Price: 1550, Description: "A set of 100 high-quality laser-printed notes for collectors.", ImageURL: "https://images.unsplash.com/photo-1639755498350-238b3443a2c9?w=400&q=80&hue=270", Status: models.ProductAvailable},
	{ID: 5, Name: "Laser Notes 500 – 500 PKR per copie – Total 5500 PKR", Price: 5500, Description: "A bulk set of 500 high-quality laser-printed notes for collectors.", ImageURL: "https://images.unsplash.com/photo-1639755498350-238b3443a2c9?w=400&q=80&hue=45&sat=100", Status: models.ProductAvailable},
	{ID: 8, Name: "Money Gun – Cash Shooter – PKR 4,999", Price: 4999, Description: "High-quality prop device that shoots prop notes. Full plastic body, fast shooting mechanism, stylish black-golden design. Prop purpose only.", ImageURL: "https://images.unsplash.com/photo-1546522346-4a4b5a45213a?w=400&q=80", Status: models.ProductAvailable},
	{ID: 9, Name: "Money Counter Machine – Mini – PKR 14,999", Price: 14999, Description: "Compact automatic money counter for real and prop notes. Fast speed, digital display, error detection.", ImageURL: "https://images.unsplash.com/photo-1580231947863-23a496f8303a?w=400&q=80", Status: models.ProductAvailable},
	{ID: 10, Name: "UV Currency Detector Lamp – Portable – PKR 2,499", Price: 2499, Description: "UV currency checker lamp with magnifier lens. Portable, easy to carry, reliable performance.", ImageURL: "https://images.unsplash.com/photo-1621886292374-763459427f7a?w=400&q=80", Status: models.ProductAvailable},
	{ID: 11, Name: "Gold Metal Credit Card – Boss Edition Replica – PKR 1,499", Price: 1499, Description: "Luxury metallic Boss Edition replica credit card for content creators and collectors.", ImageURL: "https://images.unsplash.com/photo-1556742502-ec7c0e9f34b1?w=400&q=80", Status: models.ProductAvailable},
	{ID: 12, Name: "Mini Safe Box – Money Vault Toy – PKR 3,299", Price: 3299, Description: "Electronic mini safe with password lock, digital keypad and alarm sound.", ImageURL: "https://images.unsplash.com/photo-1585664811087-47f65abbad64?w=400&q=80", Status: models.ProductAvailable},
	{ID: 13, Name: "Transparent Piggy Bank – Savings Jar – PKR 999", Price: 999, Description: "Clear acrylic savings jar with digital counter lid.", ImageURL: "https://images.unsplash.com/photo-1593135116893-41a4a441712a?w=400&q=80", Status: models.ProductAvailable},
	{ID: 14, Name: "Luxury Cash Envelope – Gift Box – PKR 699", Price: 699, Description: "Premium money envelope for gifting cash at weddings and special events. Velvet touch finish with gold emboss design.", ImageURL: "https://images.unsplash.com/photo-1592614536349-45a133f0e0f8?w=400&q=80", Status: models.ProductAvailable},
	{ID: 15, Name: "Fake Gold Bar – Prop – PKR 999", Price: 999, Description: "Mini gold bar prop made of high-polish resin with engraved 999.9 GOLD marking.", ImageURL: "https://images.unsplash.com/photo-1582218433682-1bab16c5890c?w=400&q=80", Status: models.ProductAvailable},
	{ID: 16, Name: "Creator Combo Kit – Money Gun + Notes + Gold Card – PKR 8,999", Price: 8999, Description: "All-in-one Creator Combo Pack: 1x Money Gun, 1x Prop Currency Pack, 1x Gold Credit Card Replica.", ImageURL: "https://images.unsplash.com/photo-152140592095-2ca05b651e58?w=400&q=80", Status: models.ProductAvailable},
	{ID: 6, Name: "Laser Notes 1000 – 1000 PKR per copie – Status: Stock End", Price: 0, Description: "This item is currently out of stock.", ImageURL: "https://images.unsplash.com/photo-1639755498350-238b3443a2c9?w=400&q=80&hue=200", Status: models.ProductStockEnd},
	{ID: 7, Name: "Laser Notes 5000 – 5000 PKR per copie – Status: Coming Soon", Price: 0, Description: "This item will be available soon.", ImageURL: "https://images.unsplash.com/photo-1639755498350-238b3443a2c9?w=400&q=80&hue=60", Status: models.ProductComingSoon},
}

var reviews = []models.Review{
	{ProductID: 1, Author: "Ahmed K.", Rating: 5, Text: "Great quality copies, very detailed!"},
	{ProductID: 1, Author: "Fatima Z.", Rating: 4, Text: "Good for collection, delivery was fast."},
	{ProductID: 2, Author: "Bilal M.", Rating: 5, Text: "Excellent value for the price. Highly recommend."},
}

// Cities lists the delivery cities offered at checkout
var Cities = []string{
	"Karachi", "Lahore", "Islamabad", "Rawalpindi", "Faisalabad", "Multan",
	"Peshawar", "Quetta", "Sialkot", "Gujranwala", "Hyderabad",
}

// DeliveryCompanies lists the couriers offered at checkout
var DeliveryCompanies = []string{
	"TCS", "Leopards Courier", "M&P Courier", "Pakistan Post", "Call Courier",
}

// Products returns a copy of the full product listing
func Products() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// ProductByID looks up a product. The second return is false when no
// product with that id exists.
func ProductByID(id int) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// ReviewsFor returns the reviews for a product, possibly empty
func ReviewsFor(productID int) []models.Review {
	var out []models.Review
	for _, r := range reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out
}
