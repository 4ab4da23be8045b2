// Package orders composes the cart and account managers into the order
// placement workflow.
package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/earnhalal/Lasercurrencystore/accounts"
	"github.com/earnhalal/Lasercurrencystore/cart"
	"github.com/earnhalal/Lasercurrencystore/catalog"
	"github.com/earnhalal/Lasercurrencystore/models"
	"github.com/earnhalal/Lasercurrencystore/utils"
)

var (
	// ErrEmptyCart rejects placing an order with nothing in the cart
	ErrEmptyCart = errors.New("cart is empty")
	// ErrMissingDeliveryDetails rejects blank delivery fields
	ErrMissingDeliveryDetails = errors.New("please fill in all delivery details")
	// ErrNotVerified rejects order placement before the account is
	// verified; the caller sends the user back to signup.
	ErrNotVerified = errors.New("account is not verified")
)

// Delivery carries the checkout form fields
type Delivery struct {
	FullName        string `json:"fullName"`
	PhoneNumber     string `json:"phoneNumber"`
	Address         string `json:"address"`
	City            string `json:"city"`
	DeliveryCompany string `json:"deliveryCompany"`
}

// Workflow validates and places orders. mailer may be nil.
type Workflow struct {
	accounts *accounts.Manager
	cart     *cart.Cart
	mailer   *utils.EmailService
	logger   *zap.Logger
}

// NewWorkflow wires the order workflow
func NewWorkflow(mgr *accounts.Manager, c *cart.Cart, mailer *utils.EmailService, logger *zap.Logger) *Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Workflow{accounts: mgr, cart: c, mailer: mailer, logger: logger}
}

// PlaceOrder validates the cart, delivery details and session status, then
// snapshots the cart into a new Processing order, appends it to the user's
// history and clears the cart. The advance is fixed at half the total when
// the order is created and never recomputed.
func (w *Workflow) PlaceOrder(ctx context.Context, delivery Delivery) (models.Order, error) {
	if w.cart.Len() == 0 {
		return models.Order{}, ErrEmptyCart
	}
	if blank(delivery.FullName) || blank(delivery.PhoneNumber) || blank(delivery.Address) || blank(delivery.City) {
		return models.Order{}, ErrMissingDeliveryDetails
	}
	user := w.accounts.Current()
	if user == nil || user.Status != models.StatusVerified {
		return models.Order{}, ErrNotVerified
	}

	courier := strings.TrimSpace(delivery.DeliveryCompany)
	if courier == "" {
		courier = catalog.DeliveryCompanies[0]
	}

	now := time.Now()
	total := w.cart.TotalAmount()
	order := models.Order{
		ID:              fmt.Sprintf("ORD-%d", now.UnixMilli()),
		Items:           w.cart.Items(),
		TotalAmount:     total,
		AdvancePaid:     total / 2,
		Date:            now.Format("2006-01-02"),
		Status:          models.OrderProcessing,
		City:            strings.TrimSpace(delivery.City),
		DeliveryCompany: courier,
		FullName:        strings.TrimSpace(delivery.FullName),
		PhoneNumber:     strings.TrimSpace(delivery.PhoneNumber),
		Address:         strings.TrimSpace(delivery.Address),
	}

	if err := w.accounts.AddOrder(ctx, user.Email, order); err != nil {
		return models.Order{}, err
	}
	w.cart.Clear()

	w.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("email", user.Email),
		zap.Float64("total", order.TotalAmount),
		zap.Float64("advance", order.AdvancePaid),
	)
	if w.mailer != nil {
		go func(email string, o models.Order) {
			if err := w.mailer.SendOrderConfirmationEmail(email, o); err != nil {
				w.logger.Warn("failed to send order confirmation", zap.String("email", email), zap.Error(err))
			}
		}(user.Email, order)
	}
	return order, nil
}

// Orders returns the session user's order history for the dashboard
func (w *Workflow) Orders(ctx context.Context) ([]models.Order, error) {
	user := w.accounts.Current()
	if user == nil {
		return nil, ErrNotVerified
	}
	return w.accounts.Orders(ctx, user.Email)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
