// Package service contains business logic for the application.
package service

import (
	"context"

	"skillswap/internal/models"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}

// UserServicer defines the interface for profile and discovery operations.
type UserServicer interface {
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.User, error)
	UpdateVisibility(ctx context.Context, userID string, isPublic bool) (*models.User, error)
	RequestPhotoUpload(ctx context.Context, userID, contentType string) (*models.PhotoUploadResponse, error)
	Search(ctx context.Context, q *models.UserSearchQuery) (*models.UserListResponse, error)
	FindBySkill(ctx context.Context, skill string, page, limit int) (*models.UserListResponse, error)
	GetPublicProfile(ctx context.Context, userID string) (*models.User, error)
}

// SwapServicer defines the interface for the swap request lifecycle.
type SwapServicer interface {
	Create(ctx context.Context, requesterID string, req *models.CreateSwapRequest) (*models.SwapRequest, error)
	List(ctx context.Context, userID string, q *models.SwapListQuery) (*models.SwapListResponse, error)
	Get(ctx context.Context, userID, requestID string) (*models.SwapRequest, error)
	Accept(ctx context.Context, providerID, requestID string, req *models.AcceptSwapRequest) (*models.AcceptSwapResponse, error)
	Reject(ctx context.Context, providerID, requestID string) (*models.SwapRequest, error)
	Cancel(ctx context.Context, requesterID, requestID string) (*models.SwapRequest, error)
	Complete(ctx context.Context, userID, requestID string) (*models.SwapRequest, error)
}

// MeetingServicer defines the interface for meeting operations.
type MeetingServicer interface {
	Upcoming(ctx context.Context, userID string) ([]models.Meeting, error)
	Get(ctx context.Context, userID, meetingID string) (*models.Meeting, error)
	UpdateStatus(ctx context.Context, userID, meetingID string, status models.MeetingStatus) (*models.Meeting, error)
}

// RatingServicer defines the interface for rating operations.
type RatingServicer interface {
	Rate(ctx context.Context, raterID string, req *models.CreateRatingRequest) (*models.Rating, error)
	Update(ctx context.Context, raterID, ratingID string, req *models.UpdateRatingRequest) (*models.Rating, error)
	Given(ctx context.Context, userID string, page, limit int) (*models.RatingListResponse, error)
	Received(ctx context.Context, userID string, page, limit int) (*models.RatingListResponse, error)
	ForUser(ctx context.Context, userID string, page, limit int) (*models.UserRatingsResponse, error)
}

// AdminServicer defines the interface for moderation and reporting operations.
type AdminServicer interface {
	ToggleBan(ctx context.Context, userID, reason string) (*models.BanUserResponse, error)
	ListUsers(ctx context.Context, q *models.AdminUserListQuery) (*models.UserListResponse, error)
	ListSwaps(ctx context.Context, q *models.AdminSwapListQuery) (*models.SwapListResponse, error)
	DeleteSwap(ctx context.Context, requestID string) error
	BroadcastMessage(ctx context.Context, adminID string, req *models.CreateAdminMessageRequest) (*models.AdminMessage, error)
	ListMessages(ctx context.Context, q *models.AdminMessageListQuery) (*models.AdminMessageListResponse, error)
	Statistics(ctx context.Context) (*models.Statistics, error)
	Report(ctx context.Context, q *models.ReportQuery) (*models.Report, error)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer    = (*AuthService)(nil)
	_ UserServicer    = (*UserService)(nil)
	_ SwapServicer    = (*SwapService)(nil)
	_ MeetingServicer = (*MeetingService)(nil)
	_ RatingServicer  = (*RatingService)(nil)
	_ AdminServicer   = (*AdminService)(nil)
)
