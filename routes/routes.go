// routes/routes.go
package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/earnhalal/Lasercurrencystore/controllers"
	"github.com/earnhalal/Lasercurrencystore/middleware"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, productController *controllers.ProductController, cartController *controllers.CartController, orderController *controllers.OrderController) {
	// Public routes
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}).Methods("GET")
	router.HandleFunc("/signup", userController.Signup).Methods("POST")

	// Product routes
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")
	router.HandleFunc("/products/{id}/reviews", productController.GetProductReviews).Methods("GET")

	// Cart routes
	router.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	router.HandleFunc("/cart", cartController.AddToCart).Methods("POST")
	router.HandleFunc("/cart/{product_id}", cartController.RemoveFromCart).Methods("DELETE")

	// Protected routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/payment-proof", userController.SubmitPaymentProof).Methods("POST")
	protected.HandleFunc("/reset-signup", userController.ResetSignup).Methods("POST")
	protected.HandleFunc("/logout", userController.Logout).Methods("POST")
	protected.HandleFunc("/profile", userController.GetProfile).Methods("GET")
	protected.HandleFunc("/orders", orderController.CreateOrder).Methods("POST")
	protected.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	protected.HandleFunc("/orders/{id}/track", orderController.TrackOrder).Methods("POST")

	// Admin routes
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminMiddleware)
	admin.HandleFunc("/verify", userController.VerifyAccount).Methods("POST")
}
