// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	"skillswap/internal/handler"
	"skillswap/internal/middleware"
	"skillswap/internal/repository"
	"skillswap/pkg/auth"

	"github.com/gin-gonic/gin"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	SwapHandler    *handler.SwapHandler
	MeetingHandler *handler.MeetingHandler
	RatingHandler  *handler.RatingHandler
	AdminHandler   *handler.AdminHandler
	JWTManager     auth.TokenManager
	UserRepo       repository.UserRepository
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Global middleware
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := middleware.Auth(cfg.JWTManager)
	adminOnly := middleware.AdminOnly(cfg.UserRepo)

	// Auth routes (public)
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/signup", cfg.AuthHandler.Signup)
		authRoutes.POST("/login", cfg.AuthHandler.Login)
	}

	// User routes
	user := r.Group("/user")
	{
		// Discovery (public)
		user.GET("/search", cfg.UserHandler.Search)
		user.GET("/skill/:skill", cfg.UserHandler.FindBySkill)
		user.GET("/:userId", cfg.UserHandler.GetPublicProfile)

		// Own profile (protected)
		profile := user.Group("/profile", authRequired)
		{
			profile.GET("", cfg.UserHandler.GetProfile)
			profile.PUT("", cfg.UserHandler.UpdateProfile)
			profile.PUT("/visibility", cfg.UserHandler.UpdateVisibility)
			profile.POST("/photo", cfg.UserHandler.RequestPhotoUpload)
		}
	}

	// Swap routes (protected)
	swap := r.Group("/swap", authRequired)
	{
		swap.POST("/request", cfg.SwapHandler.Create)
		swap.GET("/my-requests", cfg.SwapHandler.List)

		// Meetings live under /swap: rooms only exist for accepted swaps.
		meetings := swap.Group("/meetings")
		{
			meetings.GET("/upcoming", cfg.MeetingHandler.Upcoming)
			meetings.GET("/:meetingId", cfg.MeetingHandler.Get)
			meetings.PUT("/:meetingId/status", cfg.MeetingHandler.UpdateStatus)
		}

		swap.GET("/:requestId", cfg.SwapHandler.Get)
		swap.PUT("/:requestId/accept", cfg.SwapHandler.Accept)
		swap.PUT("/:requestId/reject", cfg.SwapHandler.Reject)
		swap.PUT("/:requestId/complete", cfg.SwapHandler.Complete)
		swap.DELETE("/:requestId", cfg.SwapHandler.Cancel)
	}

	// Rating routes
	rating := r.Group("/rating")
	{
		rating.GET("/user/:userId", cfg.RatingHandler.ForUser)

		protected := rating.Group("", authRequired)
		{
			protected.POST("/rate", cfg.RatingHandler.Rate)
			protected.PUT("/:ratingId", cfg.RatingHandler.Update)
			protected.GET("/my-given", cfg.RatingHandler.Given)
			protected.GET("/my-received", cfg.RatingHandler.Received)
		}
	}

	// Admin routes (protected + role check)
	admin := r.Group("/admin", authRequired, adminOnly)
	{
		admin.GET("/users", cfg.AdminHandler.ListUsers)
		admin.PUT("/users/:userId/ban", cfg.AdminHandler.ToggleBan)
		admin.GET("/swaps", cfg.AdminHandler.ListSwaps)
		admin.DELETE("/swaps/:requestId", cfg.AdminHandler.DeleteSwap)
		admin.POST("/messages", cfg.AdminHandler.BroadcastMessage)
		admin.GET("/messages", cfg.AdminHandler.ListMessages)
		admin.GET("/statistics", cfg.AdminHandler.Statistics)
		admin.GET("/reports", cfg.AdminHandler.Report)
	}

	return r
}
