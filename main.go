// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/earnhalal/Lasercurrencystore/accounts"
	"github.com/earnhalal/Lasercurrencystore/cart"
	"github.com/earnhalal/Lasercurrencystore/controllers"
	"github.com/earnhalal/Lasercurrencystore/middleware"
	"github.com/earnhalal/Lasercurrencystore/orders"
	"github.com/earnhalal/Lasercurrencystore/routes"
	"github.com/earnhalal/Lasercurrencystore/store"
	"github.com/earnhalal/Lasercurrencystore/utils"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Set the JWT secret key and admin token
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		utils.JwtKey = []byte(secret)
	}
	middleware.AdminToken = os.Getenv("ADMIN_TOKEN")

	// Open the persistent store
	st, err := openStore(logger)
	if err != nil {
		logger.Fatal("Failed to open store", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(ctx); err != nil {
			logger.Error("Failed to close store", zap.Error(err))
		}
	}()

	// Initialize EmailService (nil when no provider is configured)
	emailService := utils.NewEmailService()
	if emailService == nil {
		logger.Info("Email disabled: no provider configured")
	}

	// Core managers
	accountManager := accounts.NewManager(st, logger, emailService)
	shoppingCart := cart.New()
	orderWorkflow := orders.NewWorkflow(accountManager, shoppingCart, emailService, logger)

	// Demo admin-approval sweep. Real deployments leave this off and call
	// POST /admin/verify instead.
	if os.Getenv("AUTO_VERIFY") == "true" {
		interval := accounts.DefaultSweepInterval
		if v := os.Getenv("VERIFY_INTERVAL"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				interval = d
			}
		}
		sweeper := accounts.NewSweeper(accountManager, interval, logger)
		sweeper.Start()
		defer sweeper.Stop()
		logger.Info("Auto-verification sweep enabled", zap.Duration("interval", interval))
	}

	paymentWindow := accounts.DefaultPaymentWindow
	if v := os.Getenv("PAYMENT_WINDOW"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			paymentWindow = d
		}
	}

	// Initialize controllers
	userController := controllers.NewUserController(accountManager, logger, paymentWindow)
	productController := controllers.NewProductController()
	cartController := controllers.NewCartController(shoppingCart)
	orderController := controllers.NewOrderController(orderWorkflow, logger)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(logger))
	routes.RegisterRoutes(router, userController, productController, cartController, orderController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	logger.Info("Server is running", zap.String("port", port))
	log.Fatal(http.ListenAndServe(":"+port, router))
}

// openStore selects the persistence backend from STORE_BACKEND
func openStore(logger *zap.Logger) (store.Store, error) {
	backend := os.Getenv("STORE_BACKEND")
	switch backend {
	case "", "memory":
		logger.Info("Using in-memory store")
		return store.NewMemoryStore(), nil
	case "mongo":
		uri := os.Getenv("MONGO_URI")
		if uri == "" {
			uri = "mongodb://localhost:27017"
		}
		logger.Info("Using MongoDB store", zap.String("uri", uri))
		return store.NewMongoStore(uri, "lasercurrencystore")
	case "redis":
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		logger.Info("Using Redis store", zap.String("addr", addr))
		return store.NewRedisStore(addr, os.Getenv("REDIS_PASSWORD"), 0)
	}
	return nil, fmt.Errorf("unknown STORE_BACKEND %q", backend)
}
