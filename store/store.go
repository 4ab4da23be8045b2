// Package store is the on-device persistence layer: a small key-value
// repository holding users, per-user order history, the device-signup
// registry and the logged-in session pointer. Backends are swappable; the
// in-memory store backs tests, Mongo and Redis back real deployments.
package store

import (
	"context"
	"errors"

	"github.com/earnhalal/Lasercurrencystore/models"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("store: record not found")

// Store is the persistence contract used by the account manager and order
// workflow. All writes are last-write-wins; a single client is assumed.
type Store interface {
	// GetUser returns the user record for email, or ErrNotFound.
	GetUser(ctx context.Context, email string) (models.User, error)
	// PutUser creates or overwrites the record keyed by user.Email.
	PutUser(ctx context.Context, user models.User) error
	// DeleteUser removes the record. Deleting an absent record is not an error.
	DeleteUser(ctx context.Context, email string) error

	// Orders returns the ordered sequence of orders placed by email.
	// An account with no orders yields an empty slice, not an error.
	Orders(ctx context.Context, email string) ([]models.Order, error)
	// AppendOrder appends one order to the account's history.
	AppendOrder(ctx context.Context, email string, order models.Order) error

	// DeviceID returns the identifier generated for this install, or
	// ErrNotFound before one has been assigned.
	DeviceID(ctx context.Context) (string, error)
	// SetDeviceID persists the once-generated device identifier.
	SetDeviceID(ctx context.Context, id string) error
	// DeviceEmail returns the email a device is bound to, or ErrNotFound.
	DeviceEmail(ctx context.Context, deviceID string) (string, error)
	// BindDevice associates a device with the email that signed up on it.
	BindDevice(ctx context.Context, deviceID, email string) error

	// LoggedInUser returns the session pointer, or ErrNotFound when no
	// session is active.
	LoggedInUser(ctx context.Context) (string, error)
	// SetLoggedInUser records email as the active session.
	SetLoggedInUser(ctx context.Context, email string) error
	// ClearLoggedInUser drops the session pointer.
	ClearLoggedInUser(ctx context.Context) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
