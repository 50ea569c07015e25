package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodee-api/config"
	"foodee-api/handlers"
	"foodee-api/middleware"
	"foodee-api/payments"
	"foodee-api/repository"
	"foodee-api/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	// The store connection is opened once and shared by every request.
	db, err := config.OpenDB(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	h := &handlers.Handler{
		JWTSecret: cfg.JWTSecret,
		Users:     repository.NewUsers(db),
		Menu:      repository.NewMenu(db),
		Reviews:   repository.NewReviews(db),
		Carts:     repository.NewCarts(db),
		Payments:  repository.NewPayments(db),
		Gateway:   payments.NewStripeGateway(cfg.StripeSecretKey),
	}

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()
	r.Use(middleware.RequestID())

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "foodee-api"})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "foodee is ready"})
	})

	// Register all routes
	routes.SetupRoutes(r, h)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("🚀 foodee is running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Block until interrupted, then drain requests and release the store.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("Forced shutdown:", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("Server stopped")
}
