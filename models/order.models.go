package models

// OrderStatus of a placed order. Nothing in this service advances an order
// past Processing; fulfilment updates come from a manual backend process.
type OrderStatus string

const (
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
)

// Order is an immutable record of a placed order. Items is a snapshot of
// the cart at submission time and AdvancePaid is fixed at half the total.
type Order struct {
	ID              string      `bson:"_id" json:"id"`
	Items           []CartItem  `bson:"items" json:"items"`
	TotalAmount     float64     `bson:"total_amount" json:"totalAmount"`
	AdvancePaid     float64     `bson:"advance_paid" json:"advancePaid"`
	Date            string      `bson:"date" json:"date"`
	Status          OrderStatus `bson:"status" json:"status"`
	City            string      `bson:"city" json:"city"`
	DeliveryCompany string      `bson:"delivery_company" json:"deliveryCompany"`
	FullName        string      `bson:"full_name" json:"fullName"`
	PhoneNumber     string      `bson:"phone_number" json:"phoneNumber"`
	Address         string      `bson:"address" json:"address"`
}
