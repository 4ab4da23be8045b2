package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/earnhalal/Lasercurrencystore/accounts"
	"github.com/earnhalal/Lasercurrencystore/middleware"
	"github.com/earnhalal/Lasercurrencystore/utils"
)

// UserController handles signup, payment proof and session requests
type UserController struct {
	Accounts      *accounts.Manager
	Logger        *zap.Logger
	PaymentWindow time.Duration

	mu        sync.Mutex
	countdown *accounts.Countdown
}

// NewUserController creates a new UserController
func NewUserController(mgr *accounts.Manager, logger *zap.Logger, paymentWindow time.Duration) *UserController {
	return &UserController{
		Accounts:      mgr,
		Logger:        logger,
		PaymentWindow: paymentWindow,
	}
}

// Signup handles account creation. A successful signup logs the user in
// at pendingPayment and arms the payment countdown.
func (uc *UserController) Signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "Name, email and password are required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	user, err := uc.Accounts.Signup(ctx, req.Name, req.Email, req.Password)
	if errors.Is(err, accounts.ErrDuplicateAccount) || errors.Is(err, accounts.ErrDeviceAlreadyRegistered) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	uc.armCountdown(user.Email)

	token, err := utils.GenerateJWT(user.Email)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": token,
		"user":  user,
		"message": fmt.Sprintf("Send ₨%.0f to Easypaisa IBAN %s and upload your payment screenshot within %s.",
			utils.SignupFee, utils.EasypaisaIBAN, uc.paymentWindow()),
	})
}

// SubmitPaymentProof accepts the payment screenshot and moves the account
// to pendingAdminVerification. The screenshot is required but opaque; it
// is stored as uploaded and never inspected.
func (uc *UserController) SubmitPaymentProof(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// Parse multipart form with a max memory of 10MB
	err := r.ParseMultipartForm(10 << 20)
	if err != nil {
		http.Error(w, "Failed to parse multipart form", http.StatusBadRequest)
		return
	}

	file, handler, err := r.FormFile("screenshot")
	if err != nil {
		http.Error(w, "Payment screenshot is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	uploadPath := filepath.Join("uploads", "payments", claims.Email)
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		http.Error(w, "Failed to create upload directory", http.StatusInternalServerError)
		return
	}
	dst, err := os.Create(filepath.Join(uploadPath, fmt.Sprintf("%d_%s", time.Now().UnixMilli(), handler.Filename)))
	if err != nil {
		http.Error(w, "Failed to create file on server", http.StatusInternalServerError)
		return
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := uc.Accounts.SubmitPaymentProof(ctx, claims.Email); err != nil {
		http.Error(w, "Error submitting payment proof", http.StatusInternalServerError)
		return
	}
	uc.disarmCountdown()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode("Verification submitted! Your account is now under review.")
}

// ResetSignup abandons an incomplete signup for the session account
func (uc *UserController) ResetSignup(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := uc.Accounts.ResetSignup(ctx, claims.Email); err != nil {
		http.Error(w, "Error resetting signup", http.StatusInternalServerError)
		return
	}
	uc.disarmCountdown()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode("Signup reset. You can start again.")
}

// Logout clears the session pointer
func (uc *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := uc.Accounts.Logout(ctx); err != nil {
		http.Error(w, "Error logging out", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode("Logged out")
}

// GetProfile retrieves the authenticated user's record
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Could not parse user from context", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	user, err := uc.Accounts.Lookup(ctx, claims.Email)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	user.Password = ""
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// VerifyAccount is the administrative approval action (admin only)
func (uc *UserController) VerifyAccount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := uc.Accounts.Verify(ctx, req.Email); err != nil {
		http.Error(w, "Error verifying account", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode("Verification processed")
}

// armCountdown starts the payment window for a fresh signup. Expiry
// resets the signup, matching the original flow. Any previous countdown
// is cancelled first.
func (uc *UserController) armCountdown(email string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.countdown != nil {
		uc.countdown.Stop()
	}
	uc.countdown = accounts.StartCountdown(uc.PaymentWindow, func() {
		uc.Logger.Info("payment window expired", zap.String("email", email))
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.Accounts.ResetSignup(ctx, email); err != nil {
			uc.Logger.Warn("failed to reset expired signup", zap.String("email", email), zap.Error(err))
		}
	})
}

func (uc *UserController) disarmCountdown() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.countdown != nil {
		uc.countdown.Stop()
		uc.countdown = nil
	}
}

func (uc *UserController) paymentWindow() time.Duration {
	if uc.PaymentWindow <= 0 {
		return accounts.DefaultPaymentWindow
	}
	return uc.PaymentWindow
}
