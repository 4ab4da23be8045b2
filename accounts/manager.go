// Package accounts owns user records and the signup/verification state
// machine. Status moves forward only: pendingPayment ->
// pendingAdminVerification -> verified. The manager also holds the active
// session, restored from the store's logged-in pointer at construction.
package accounts

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/earnhalal/Lasercurrencystore/models"
	"github.com/earnhalal/Lasercurrencystore/store"
	"github.com/earnhalal/Lasercurrencystore/utils"
)

// VerifiedCredit is the balance granted when an account is verified
const VerifiedCredit = 20.0

var (
	// ErrDuplicateAccount rejects signup for an already-verified email
	ErrDuplicateAccount = errors.New("an account with this email already exists")
	// ErrDeviceAlreadyRegistered rejects signup from a device bound to a
	// different email
	ErrDeviceAlreadyRegistered = errors.New("this device is already associated with another account")
)

// Manager is the account manager. All methods are safe for concurrent use.
type Manager struct {
	store  store.Store
	logger *zap.Logger
	mailer *utils.EmailService

	mu      sync.Mutex
	session *models.User
}

// NewManager builds a manager and restores the session from the store's
// logged-in pointer. A pointer to a missing record yields an empty
// session. mailer may be nil (mail disabled).
func NewManager(st store.Store, logger *zap.Logger, mailer *utils.EmailService) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Manager{store: st, logger: logger, mailer: mailer}

	ctx := context.Background()
	if email, err := st.LoggedInUser(ctx); err == nil {
		if user, err := st.GetUser(ctx, email); err == nil {
			m.session = &user
		}
	}
	return m
}

// Signup creates (or overwrites an unverified) account for email and logs
// it in with status pendingPayment. It fails with ErrDuplicateAccount when
// the email already belongs to a verified account and with
// ErrDeviceAlreadyRegistered when this device signed up a different email.
func (m *Manager) Signup(ctx context.Context, name, email, password string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, err := m.store.GetUser(ctx, email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return models.User{}, err
	}
	if err == nil && existing.Status == models.StatusVerified {
		return models.User{}, ErrDuplicateAccount
	}

	// One device, one account rule
	deviceID, err := m.deviceID(ctx)
	if err != nil {
		return models.User{}, err
	}
	boundEmail, err := m.store.DeviceEmail(ctx, deviceID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return models.User{}, err
	}
	if err == nil && boundEmail != email {
		return models.User{}, ErrDeviceAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Status:   models.StatusPendingPayment,
		Balance:  0,
	}
	if err := m.store.PutUser(ctx, user); err != nil {
		return models.User{}, err
	}
	if err := m.store.BindDevice(ctx, deviceID, email); err != nil {
		return models.User{}, err
	}
	if err := m.store.SetLoggedInUser(ctx, email); err != nil {
		return models.User{}, err
	}
	m.session = &user

	m.logger.Info("user signed up", zap.String("email", email))
	if m.mailer != nil {
		go func() {
			if err := m.mailer.SendPaymentInstructions(email); err != nil {
				m.logger.Warn("failed to send payment instructions", zap.String("email", email), zap.Error(err))
			}
		}()
	}
	return user, nil
}

// SubmitPaymentProof moves an account awaiting payment to
// pendingAdminVerification. Unknown emails are a silent no-op, and a
// verified account is never regressed. The proof itself is an opaque
// upload handled by the HTTP layer; the manager never sees it.
func (m *Manager) SubmitPaymentProof(ctx context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, err := m.store.GetUser(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if user.Status == models.StatusVerified {
		return nil
	}

	user.Status = models.StatusPendingAdminVerification
	if err := m.store.PutUser(ctx, user); err != nil {
		return err
	}
	m.updateSession(user)
	m.logger.Info("payment proof submitted", zap.String("email", email))
	return nil
}

// Verify is the administrative approval action: it promotes an account
// from pendingAdminVerification to verified and grants the fixed balance
// credit. Accounts in any other state, and unknown emails, are left alone.
func (m *Manager) Verify(ctx context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, err := m.store.GetUser(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if user.Status != models.StatusPendingAdminVerification {
		return nil
	}

	user.Status = models.StatusVerified
	user.Balance = VerifiedCredit
	if err := m.store.PutUser(ctx, user); err != nil {
		return err
	}
	m.updateSession(user)
	m.logger.Info("account verified", zap.String("email", email), zap.Float64("credit", VerifiedCredit))
	return nil
}

// ResetSignup abandons an incomplete signup: the record is deleted unless
// it is verified, and if the deleted account was the active session the
// session ends too.
func (m *Manager) ResetSignup(ctx context.Context, email string) error {
	if email == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	user, err := m.store.GetUser(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if user.Status == models.StatusVerified {
		return nil
	}

	if err := m.store.DeleteUser(ctx, email); err != nil {
		return err
	}
	m.logger.Info("signup reset", zap.String("email", email))

	if m.session != nil && m.session.Email == email {
		return m.logoutLocked(ctx)
	}
	return nil
}

// Logout clears the session pointer. No account record is touched.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logoutLocked(ctx)
}

// Current returns a copy of the session user, or nil when nobody is
// logged in.
func (m *Manager) Current() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil
	}
	user := *m.session
	return &user
}

// Lookup returns the stored record for email
func (m *Manager) Lookup(ctx context.Context, email string) (models.User, error) {
	return m.store.GetUser(ctx, email)
}

// AddOrder appends an order to the account's history. Orders are
// append-only and never mutated afterwards.
func (m *Manager) AddOrder(ctx context.Context, email string, order models.Order) error {
	return m.store.AppendOrder(ctx, email, order)
}

// Orders returns the account's order history, oldest first
func (m *Manager) Orders(ctx context.Context, email string) ([]models.Order, error) {
	return m.store.Orders(ctx, email)
}

func (m *Manager) logoutLocked(ctx context.Context) error {
	if err := m.store.ClearLoggedInUser(ctx); err != nil {
		return err
	}
	m.session = nil
	return nil
}

func (m *Manager) updateSession(user models.User) {
	if m.session != nil && m.session.Email == user.Email {
		m.session = &user
	}
}

// deviceID returns this install's device identifier, generating and
// persisting one on first use.
func (m *Manager) deviceID(ctx context.Context) (string, error) {
	id, err := m.store.DeviceID(ctx)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", err
	}
	id = uuid.NewString()
	if err := m.store.SetDeviceID(ctx, id); err != nil {
		return "", err
	}
	return id, nil
}
