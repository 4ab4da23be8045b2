package accounts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/earnhalal/Lasercurrencystore/models"
	"github.com/earnhalal/Lasercurrencystore/store"
)

func newTestManager(t *testing.T) (*Manager, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	return NewManager(st, nil, nil), st
}

func TestSignupEstablishesPendingPaymentSession(t *testing.T) {
	mgr, st := newTestManager(t)
	ctx := context.Background()

	user, err := mgr.Signup(ctx, "Ali", "ali@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingPayment, user.Status)
	assert.Equal(t, 0.0, user.Balance)

	session := mgr.Current()
	require.NotNil(t, session)
	assert.Equal(t, "ali@x.com", session.Email)

	stored, err := st.GetUser(ctx, "ali@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("pw")))

	email, err := st.LoggedInUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ali@x.com", email)
}

func TestSignupRejectsVerifiedEmail(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	_, err := mgr.Signup(ctx, "Ali", "ali@x.com", "pw")
	require.NoError(t, err)
	require.NoError(t, mgr.SubmitPaymentProof(ctx, "ali@x.com"))
	require.NoError(t, mgr.Verify(ctx, "ali@x.com"))

	_, err = mgr.Signup(ctx, "Ali Again", "ali@x.com", "pw2")
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestSignupOverwritesUnverifiedRecord(t *testing.T) {
	mgr, st := newTestManager(t)
	ctx := context.Background()

	_, err := mgr.Signup(ctx, "Ali", "ali@x.com", "pw")
	require.NoError(t, err)

	// Abandoned signup may be retried under the same email
	user, err := mgr.Signup(ctx, "Ali Raza", "ali@x.com", "newpw")
	require.NoError(t, err)
	assert.Equal(t, "Ali Raza", user.Name)
	assert.Equal(t, models.StatusPendingPayment, user.Status)

	stored, err := st.GetUser(ctx, "ali@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ali Raza", stored.Name)
}

func TestSignupEnforcesOneDeviceOneAccount(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	_, err := mgr.Signup(ctx, "Ali", "a@x.com", "pw")
	require.NoError(t, err)

	_, err = mgr.Signup(ctx, "Bilal", "b@x.com", "pw")
	assert.ErrorIs(t, err, ErrDeviceAlreadyRegistered)

	// The bound email may retry indefinitely
	_, err = mgr.Signup(ctx, "Ali", "a@x.com", "pw")
	assert.NoError(t, err)
	_, err = mgr.Signup(ctx, "Ali", "a@x.com", "pw")
	assert.NoError(t, err)
}

func TestSubmitPaymentProofUnknownEmailIsSilentNoop(t *testing.T) {
	mgr, st := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, mgr.SubmitPaymentProof(ctx, "nobody@x.com"))
	_, err := st.GetUser(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSubmitPaymentProofAdvancesStatus(t *testing.T) {
	mgr, st := newTestManager(t)
	ctx := context.Background()

	_, err := mgr.Signup(ctx, "Ali", "ali@x.com", "pw")
	require.NoError(t, err)
	require.NoError(t, mgr.SubmitPaymentProof(ctx, "ali@x.com"))

	stored, err := st.GetUser(ctx, "ali@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingAdminVerification, stored.Status)

	session := mgr.Current()
	require.NotNil(t, session)
	assert.Equal(t, models.StatusPendingAdminVerification, session.Status)
}

func TestSubmitPaymentProofNeverRegressesVerified(t *testing.T) {
	mgr, st := newTestManager(t)
	ctx := context.Background()

	_, err := mgr.Signup(ctx, "Ali", "ali@x.com", "pw")
	require.NoError(t, err)
	require.NoError(t, mgr.SubmitPaymentProof(ctx, "ali@x.com"))
	require.NoError(t, mgr.Verify(ctx, "ali@x.com"))

	require.NoError(t, mgr.SubmitPaymentProof(ctx, "ali@x.com"))
	stored, err := st.GetUser(ctx, "ali@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.StatusVerified, stored.Status)
}

func TestVerifyPromotesOnlyPendingAdminVerification(t *testing.T) {
	mgr, st := newTestManager(t)
	ctx := context.Background()

	_, err := mgr.Signup(ctx, "Ali", "ali@x.com", "pw")
	require.NoError(t, err)

	// Still pendingPayment: verify leaves the record alone
	require.NoError(t, mgr.Verify(ctx, "ali@x.com"))
	stored, err := st.GetUser(ctx, "ali@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingPayment, stored.Status)
	assert.Equal(t, 0.0, stored.Balance)

	require.NoError(t, mgr.SubmitPaymentProof(ctx, "ali@x.com"))
	require.NoError(t, mgr.Verify(ctx, "ali@x.com"))
	stored, err = st.GetUser(ctx, "ali@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.StatusVerified, stored.Status)
	assert.Equal(t, VerifiedCredit, stored.Balance)

	// Unknown accounts are a silent no-op
	assert.NoError(t, mgr.Verify(ctx, "ghost@x.com"))
}

func TestResetSignupDeletesUnverifiedAndLogsOut(t *testing.T) {
	mgr, st := newTestManager(t)
	ctx := context.Background()

	_, err := mgr.Signup(ctx, "Ali", "ali@x.com", "pw")
	require.NoError(t, err)
	require.NoError(t, mgr.ResetSignup(ctx, "ali@x.com"))

	_, err = st.GetUser(ctx, "ali@x.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Nil(t, mgr.Current())
	_, err = st.LoggedInUser(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestResetSignupIsNoopForVerifiedAccounts(t *testing.T) {
	mgr, st := newTestManager(t)
	ctx := context.Background()

	_, err := mgr.Signup(ctx, "Ali", "ali@x.com", "pw")
	require.NoError(t, err)
	require.NoError(t, mgr.SubmitPaymentProof(ctx, "ali@x.com"))
	require.NoError(t, mgr.Verify(ctx, "ali@x.com"))

	require.NoError(t, mgr.ResetSignup(ctx, "ali@x.com"))

	stored, err := st.GetUser(ctx, "ali@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.StatusVerified, stored.Status)
	require.NotNil(t, mgr.Current())
}

func TestResetSignupEmptyEmailIsNoop(t *testing.T) {
	mgr, _ := newTestManager(t)
	assert.NoError(t, mgr.ResetSignup(context.Background(), ""))
}

func TestLogoutClearsOnlySession(t *testing.T) {
	mgr, st := newTestManager(t)
	ctx := context.Background()

	_, err := mgr.Signup(ctx, "Ali", "ali@x.com", "pw")
	require.NoError(t, err)
	require.NoError(t, mgr.Logout(ctx))

	assert.Nil(t, mgr.Current())
	stored, err := st.GetUser(ctx, "ali@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingPayment, stored.Status)
}

func TestSessionRestoredFromStore(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	first := NewManager(st, nil, nil)
	_, err := first.Signup(ctx, "Ali", "ali@x.com", "pw")
	require.NoError(t, err)

	second := NewManager(st, nil, nil)
	session := second.Current()
	require.NotNil(t, session)
	assert.Equal(t, "ali@x.com", session.Email)
}

func TestDanglingSessionPointerYieldsEmptySession(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.SetLoggedInUser(context.Background(), "ghost@x.com"))

	mgr := NewManager(st, nil, nil)
	assert.Nil(t, mgr.Current())
}

func TestDeviceIDGeneratedOnce(t *testing.T) {
	mgr, st := newTestManager(t)
	ctx := context.Background()

	_, err := mgr.Signup(ctx, "Ali", "ali@x.com", "pw")
	require.NoError(t, err)
	first, err := st.DeviceID(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	_, err = mgr.Signup(ctx, "Ali", "ali@x.com", "pw")
	require.NoError(t, err)
	second, err := st.DeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
