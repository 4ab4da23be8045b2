package models

// UserStatus tracks where an account is in the signup/verification flow.
// Progression is forward-only: pendingPayment -> pendingAdminVerification -> verified.
type UserStatus string

const (
	StatusPendingPayment           UserStatus = "pendingPayment"
	StatusPendingAdminVerification UserStatus = "pendingAdminVerification"
	StatusVerified                 UserStatus = "verified"
)

// User represents a store account. Email is the unique key.
type User struct {
	Name     string     `bson:"name" json:"name"`
	Email    string     `bson:"email" json:"email"`
	Password string     `bson:"password,omitempty" json:"-"`
	Status   UserStatus `bson:"status" json:"status"`
	Balance  float64    `bson:"balance" json:"balance"`
}
