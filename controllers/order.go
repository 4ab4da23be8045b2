// controllers/order.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/earnhalal/Lasercurrencystore/orders"
	"github.com/earnhalal/Lasercurrencystore/tracking"
)

// OrderController handles order-related requests
type OrderController struct {
	Workflow *orders.Workflow
	Logger   *zap.Logger
}

// NewOrderController creates a new OrderController
func NewOrderController(wf *orders.Workflow, logger *zap.Logger) *OrderController {
	return &OrderController{Workflow: wf, Logger: logger}
}

// CreateOrder places an order from the current cart and delivery details
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var delivery orders.Delivery
	err := json.NewDecoder(r.Body).Decode(&delivery)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	order, err := oc.Workflow.PlaceOrder(ctx, delivery)
	switch {
	case errors.Is(err, orders.ErrEmptyCart), errors.Is(err, orders.ErrMissingDeliveryDetails):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, orders.ErrNotVerified):
		// Unverified accounts are sent back to the signup flow
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{
			"error":    "Please sign up and verify your account to place an order.",
			"redirect": "/signup",
		})
		return
	case err != nil:
		http.Error(w, "Failed to create order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"order":   order,
		"message": "Thank you! Your order has been received. You will get your package within 24 hours to 2 days.",
	})
}

// GetOrders retrieves the session user's order history
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	history, err := oc.Workflow.Orders(ctx)
	if errors.Is(err, orders.ErrNotVerified) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if err != nil {
		http.Error(w, "Failed to retrieve orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(history)
}

// TrackOrder derives the pseudo tracking status for one of the session
// user's orders
func (oc *OrderController) TrackOrder(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	orderID := params["id"]

	var req struct {
		TrackingNumber string `json:"tracking_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	history, err := oc.Workflow.Orders(ctx)
	if errors.Is(err, orders.ErrNotVerified) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if err != nil {
		http.Error(w, "Failed to retrieve orders", http.StatusInternalServerError)
		return
	}

	for _, order := range history {
		if order.ID != orderID {
			continue
		}
		status, err := tracking.Status(req.TrackingNumber, order.DeliveryCompany, order.City)
		if errors.Is(err, tracking.ErrEmptyTrackingNumber) {
			http.Error(w, "Please enter a valid tracking number.", http.StatusBadRequest)
			return
		}
		if err != nil {
			http.Error(w, "Failed to track order", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": status})
		return
	}

	http.Error(w, "Order not found", http.StatusNotFound)
}
