package store

import (
	"context"
	"sync"

	"github.com/earnhalal/Lasercurrencystore/models"
)

// MemoryStore keeps everything in process memory. It is the default
// backend for tests and demos.
type MemoryStore struct {
	mu       sync.Mutex
	users    map[string]models.User
	orders   map[string][]models.Order
	devices  map[string]string
	deviceID string
	loggedIn string
}

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[string]models.User),
		orders:  make(map[string][]models.Order),
		devices: make(map[string]string),
	}
}

func (m *MemoryStore) GetUser(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (m *MemoryStore) PutUser(_ context.Context, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.Email] = user
	return nil
}

func (m *MemoryStore) DeleteUser(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, email)
	return nil
}

func (m *MemoryStore) Orders(_ context.Context, email string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	orders := m.orders[email]
	out := make([]models.Order, len(orders))
	copy(out, orders)
	return out, nil
}

func (m *MemoryStore) AppendOrder(_ context.Context, email string, order models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[email] = append(m.orders[email], order)
	return nil
}

func (m *MemoryStore) DeviceID(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deviceID == "" {
		return "", ErrNotFound
	}
	return m.deviceID, nil
}

func (m *MemoryStore) SetDeviceID(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deviceID = id
	return nil
}

func (m *MemoryStore) DeviceEmail(_ context.Context, deviceID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	email, ok := m.devices[deviceID]
	if !ok {
		return "", ErrNotFound
	}
	return email, nil
}

func (m *MemoryStore) BindDevice(_ context.Context, deviceID, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.devices[deviceID] = email
	return nil
}

func (m *MemoryStore) LoggedInUser(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loggedIn == "" {
		return "", ErrNotFound
	}
	return m.loggedIn, nil
}

func (m *MemoryStore) SetLoggedInUser(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loggedIn = email
	return nil
}

func (m *MemoryStore) ClearLoggedInUser(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loggedIn = ""
	return nil
}

func (m *MemoryStore) Close(_ context.Context) error {
	return nil
}
