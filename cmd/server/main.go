package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillswap/internal/cache"
	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/email"
	"skillswap/internal/handler"
	"skillswap/internal/repository"
	"skillswap/internal/router"
	"skillswap/internal/service"
	"skillswap/internal/storage"
	"skillswap/internal/validator"
	"skillswap/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logrus.Info("Configuration loaded")

	if cfg.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// Broadcast email
	sender := email.NewBrevo(cfg.BrevoAPIKey, cfg.BrevoSenderName, cfg.BrevoSenderEmail)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	swapRepo := repository.NewSwapRequestRepository(mongoDB.Database)
	meetingRepo := repository.NewMeetingRepository(mongoDB.Database)
	ratingRepo := repository.NewRatingRepository(mongoDB.Database)
	msgRepo := repository.NewAdminMessageRepository(mongoDB.Database)

	// Service layer
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo, redisCache, s3Client)
	swapService := service.NewSwapService(swapRepo, userRepo, meetingRepo, redisCache)
	meetingService := service.NewMeetingService(meetingRepo)
	ratingService := service.NewRatingService(ratingRepo, swapRepo, userRepo, redisCache)
	adminService := service.NewAdminService(service.AdminServiceConfig{
		UserRepo:   userRepo,
		SwapRepo:   swapRepo,
		RatingRepo: ratingRepo,
		MsgRepo:    msgRepo,
		Sender:     sender,
		Cache:      redisCache,
	})

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	swapHandler := handler.NewSwapHandler(swapService)
	meetingHandler := handler.NewMeetingHandler(meetingService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	adminHandler := handler.NewAdminHandler(adminService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:    authHandler,
		UserHandler:    userHandler,
		SwapHandler:    swapHandler,
		MeetingHandler: meetingHandler,
		RatingHandler:  ratingHandler,
		AdminHandler:   adminHandler,
		JWTManager:     jwtManager,
		UserRepo:       userRepo,
	})

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logrus.Info("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	logrus.Info("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("HTTP server shutdown error: %v", err)
	}

	logrus.Info("Server shutdown complete")
}
