package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/earnhalal/Lasercurrencystore/catalog"
)

// ProductController serves the static catalog
type ProductController struct{}

// NewProductController creates a new ProductController
func NewProductController() *ProductController {
	return &ProductController{}
}

// GetProducts retrieves the full product listing
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(catalog.Products())
}

// GetProductByID retrieves a single product by ID
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := strconv.Atoi(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	product, ok := catalog.ProductByID(id)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// GetProductReviews retrieves the reviews for a product
func (pc *ProductController) GetProductReviews(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := strconv.Atoi(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}
	if _, ok := catalog.ProductByID(id); !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	reviews := catalog.ReviewsFor(id)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reviews)
}
