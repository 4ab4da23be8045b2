package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earnhalal/Lasercurrencystore/accounts"
	"github.com/earnhalal/Lasercurrencystore/cart"
	"github.com/earnhalal/Lasercurrencystore/catalog"
	"github.com/earnhalal/Lasercurrencystore/models"
	"github.com/earnhalal/Lasercurrencystore/store"
)

func validDelivery() Delivery {
	return Delivery{
		FullName:        "Ali Raza",
		PhoneNumber:     "03001234567",
		Address:         "House 12, Street 4",
		City:            "Karachi",
		DeliveryCompany: "TCS",
	}
}

func newVerifiedWorkflow(t *testing.T) (*Workflow, *accounts.Manager, *cart.Cart) {
	t.Helper()
	ctx := context.Background()
	mgr := accounts.NewManager(store.NewMemoryStore(), nil, nil)
	_, err := mgr.Signup(ctx, "Ali", "ali@x.com", "pw")
	require.NoError(t, err)
	require.NoError(t, mgr.SubmitPaymentProof(ctx, "ali@x.com"))
	require.NoError(t, mgr.Verify(ctx, "ali@x.com"))

	c := cart.New()
	return NewWorkflow(mgr, c, nil, nil), mgr, c
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	wf, _, _ := newVerifiedWorkflow(t)
	_, err := wf.PlaceOrder(context.Background(), validDelivery())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderRejectsBlankDeliveryFields(t *testing.T) {
	wf, mgr, c := newVerifiedWorkflow(t)
	product, ok := catalog.ProductByID(1)
	require.True(t, ok)
	require.NoError(t, c.Add(product))

	for _, mutate := range []func(*Delivery){
		func(d *Delivery) { d.FullName = "" },
		func(d *Delivery) { d.PhoneNumber = "   " },
		func(d *Delivery) { d.Address = "" },
		func(d *Delivery) { d.City = "\t" },
	} {
		d := validDelivery()
		mutate(&d)
		_, err := wf.PlaceOrder(context.Background(), d)
		assert.ErrorIs(t, err, ErrMissingDeliveryDetails)
	}

	// Nothing was written and the cart is untouched
	history, err := mgr.Orders(context.Background(), "ali@x.com")
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.Equal(t, 1, c.Len())
}

func TestPlaceOrderRequiresVerifiedSession(t *testing.T) {
	ctx := context.Background()
	mgr := accounts.NewManager(store.NewMemoryStore(), nil, nil)
	_, err := mgr.Signup(ctx, "Ali", "ali@x.com", "pw")
	require.NoError(t, err)

	c := cart.New()
	product, ok := catalog.ProductByID(1)
	require.True(t, ok)
	require.NoError(t, c.Add(product))

	wf := NewWorkflow(mgr, c, nil, nil)
	_, err = wf.PlaceOrder(ctx, validDelivery())
	assert.ErrorIs(t, err, ErrNotVerified)
	assert.Equal(t, 1, c.Len())

	history, err := mgr.Orders(ctx, "ali@x.com")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestPlaceOrderRejectsWithoutSession(t *testing.T) {
	mgr := accounts.NewManager(store.NewMemoryStore(), nil, nil)
	c := cart.New()
	product, ok := catalog.ProductByID(1)
	require.True(t, ok)
	require.NoError(t, c.Add(product))

	wf := NewWorkflow(mgr, c, nil, nil)
	_, err := wf.PlaceOrder(context.Background(), validDelivery())
	assert.ErrorIs(t, err, ErrNotVerified)
}

// Property 9: product 1 (Rs. 350) added twice totals 700; the placed
// order carries totalAmount 700 and advancePaid 350 and empties the cart.
func TestPlaceOrderSnapshotsCartAndHalvesAdvance(t *testing.T) {
	wf, mgr, c := newVerifiedWorkflow(t)
	ctx := context.Background()

	product, ok := catalog.ProductByID(1)
	require.True(t, ok)
	require.NoError(t, c.Add(product))
	require.NoError(t, c.Add(product))
	require.Equal(t, 700.0, c.TotalAmount())

	order, err := wf.PlaceOrder(ctx, validDelivery())
	require.NoError(t, err)

	assert.Equal(t, 700.0, order.TotalAmount)
	assert.Equal(t, 350.0, order.AdvancePaid)
	assert.Equal(t, models.OrderProcessing, order.Status)
	assert.Equal(t, "Karachi", order.City)
	assert.Equal(t, "TCS", order.DeliveryCompany)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Contains(t, order.ID, "ORD-")

	// Cart is cleared exactly once, after the order is recorded
	assert.Equal(t, 0, c.Len())

	history, err := mgr.Orders(ctx, "ali@x.com")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, order.ID, history[0].ID)

	// The stored order is a snapshot, immune to later cart activity
	require.NoError(t, c.Add(product))
	history, err = mgr.Orders(ctx, "ali@x.com")
	require.NoError(t, err)
	require.Len(t, history[0].Items, 1)
	assert.Equal(t, 2, history[0].Items[0].Quantity)
}

func TestPlaceOrderDefaultsCourier(t *testing.T) {
	wf, _, c := newVerifiedWorkflow(t)
	product, ok := catalog.ProductByID(1)
	require.True(t, ok)
	require.NoError(t, c.Add(product))

	d := validDelivery()
	d.DeliveryCompany = ""
	order, err := wf.PlaceOrder(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, catalog.DeliveryCompanies[0], order.DeliveryCompany)
}

func TestOrdersRequiresSession(t *testing.T) {
	mgr := accounts.NewManager(store.NewMemoryStore(), nil, nil)
	wf := NewWorkflow(mgr, cart.New(), nil, nil)

	_, err := wf.Orders(context.Background())
	assert.ErrorIs(t, err, ErrNotVerified)
}
