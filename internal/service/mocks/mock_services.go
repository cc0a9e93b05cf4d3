// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"skillswap/internal/models"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	SignupFunc func(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	LoginFunc  func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}

func (m *MockAuthService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetProfileFunc         func(ctx context.Context, userID string) (*models.User, error)
	UpdateProfileFunc      func(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.User, error)
	UpdateVisibilityFunc   func(ctx context.Context, userID string, isPublic bool) (*models.User, error)
	RequestPhotoUploadFunc func(ctx context.Context, userID, contentType string) (*models.PhotoUploadResponse, error)
	SearchFunc             func(ctx context.Context, q *models.UserSearchQuery) (*models.UserListResponse, error)
	FindBySkillFunc        func(ctx context.Context, skill string, page, limit int) (*models.UserListResponse, error)
	GetPublicProfileFunc   func(ctx context.Context, userID string) (*models.User, error)
}

func (m *MockUserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockUserService) UpdateVisibility(ctx context.Context, userID string, isPublic bool) (*models.User, error) {
	if m.UpdateVisibilityFunc != nil {
		return m.UpdateVisibilityFunc(ctx, userID, isPublic)
	}
	return nil, nil
}

func (m *MockUserService) RequestPhotoUpload(ctx context.Context, userID, contentType string) (*models.PhotoUploadResponse, error) {
	if m.RequestPhotoUploadFunc != nil {
		return m.RequestPhotoUploadFunc(ctx, userID, contentType)
	}
	return nil, nil
}

func (m *MockUserService) Search(ctx context.Context, q *models.UserSearchQuery) (*models.UserListResponse, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, q)
	}
	return nil, nil
}

func (m *MockUserService) FindBySkill(ctx context.Context, skill string, page, limit int) (*models.UserListResponse, error) {
	if m.FindBySkillFunc != nil {
		return m.FindBySkillFunc(ctx, skill, page, limit)
	}
	return nil, nil
}

func (m *MockUserService) GetPublicProfile(ctx context.Context, userID string) (*models.User, error) {
	if m.GetPublicProfileFunc != nil {
		return m.GetPublicProfileFunc(ctx, userID)
	}
	return nil, nil
}

// MockSwapService is a mock implementation of SwapServicer.
type MockSwapService struct {
	CreateFunc   func(ctx context.Context, requesterID string, req *models.CreateSwapRequest) (*models.SwapRequest, error)
	ListFunc     func(ctx context.Context, userID string, q *models.SwapListQuery) (*models.SwapListResponse, error)
	GetFunc      func(ctx context.Context, userID, requestID string) (*models.SwapRequest, error)
	AcceptFunc   func(ctx context.Context, providerID, requestID string, req *models.AcceptSwapRequest) (*models.AcceptSwapResponse, error)
	RejectFunc   func(ctx context.Context, providerID, requestID string) (*models.SwapRequest, error)
	CancelFunc   func(ctx context.Context, requesterID, requestID string) (*models.SwapRequest, error)
	CompleteFunc func(ctx context.Context, userID, requestID string) (*models.SwapRequest, error)
}

func (m *MockSwapService) Create(ctx context.Context, requesterID string, req *models.CreateSwapRequest) (*models.SwapRequest, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, requesterID, req)
	}
	return nil, nil
}

func (m *MockSwapService) List(ctx context.Context, userID string, q *models.SwapListQuery) (*models.SwapListResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, q)
	}
	return nil, nil
}

func (m *MockSwapService) Get(ctx context.Context, userID, requestID string) (*models.SwapRequest, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, requestID)
	}
	return nil, nil
}

func (m *MockSwapService) Accept(ctx context.Context, providerID, requestID string, req *models.AcceptSwapRequest) (*models.AcceptSwapResponse, error) {
	if m.AcceptFunc != nil {
		return m.AcceptFunc(ctx, providerID, requestID, req)
	}
	return nil, nil
}

func (m *MockSwapService) Reject(ctx context.Context, providerID, requestID string) (*models.SwapRequest, error) {
	if m.RejectFunc != nil {
		return m.RejectFunc(ctx, providerID, requestID)
	}
	return nil, nil
}

func (m *MockSwapService) Cancel(ctx context.Context, requesterID, requestID string) (*models.SwapRequest, error) {
	if m.CancelFunc != nil {
		return m.CancelFunc(ctx, requesterID, requestID)
	}
	return nil, nil
}

func (m *MockSwapService) Complete(ctx context.Context, userID, requestID string) (*models.SwapRequest, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, userID, requestID)
	}
	return nil, nil
}

// MockMeetingService is a mock implementation of MeetingServicer.
type MockMeetingService struct {
	UpcomingFunc     func(ctx context.Context, userID string) ([]models.Meeting, error)
	GetFunc          func(ctx context.Context, userID, meetingID string) (*models.Meeting, error)
	UpdateStatusFunc func(ctx context.Context, userID, meetingID string, status models.MeetingStatus) (*models.Meeting, error)
}

func (m *MockMeetingService) Upcoming(ctx context.Context, userID string) ([]models.Meeting, error) {
	if m.UpcomingFunc != nil {
		return m.UpcomingFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockMeetingService) Get(ctx context.Context, userID, meetingID string) (*models.Meeting, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, meetingID)
	}
	return nil, nil
}

func (m *MockMeetingService) UpdateStatus(ctx context.Context, userID, meetingID string, status models.MeetingStatus) (*models.Meeting, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, userID, meetingID, status)
	}
	return nil, nil
}

// MockRatingService is a mock implementation of RatingServicer.
type MockRatingService struct {
	RateFunc     func(ctx context.Context, raterID string, req *models.CreateRatingRequest) (*models.Rating, error)
	UpdateFunc   func(ctx context.Context, raterID, ratingID string, req *models.UpdateRatingRequest) (*models.Rating, error)
	GivenFunc    func(ctx context.Context, userID string, page, limit int) (*models.RatingListResponse, error)
	ReceivedFunc func(ctx context.Context, userID string, page, limit int) (*models.RatingListResponse, error)
	ForUserFunc  func(ctx context.Context, userID string, page, limit int) (*models.UserRatingsResponse, error)
}

func (m *MockRatingService) Rate(ctx context.Context, raterID string, req *models.CreateRatingRequest) (*models.Rating, error) {
	if m.RateFunc != nil {
		return m.RateFunc(ctx, raterID, req)
	}
	return nil, nil
}

func (m *MockRatingService) Update(ctx context.Context, raterID, ratingID string, req *models.UpdateRatingRequest) (*models.Rating, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, raterID, ratingID, req)
	}
	return nil, nil
}

func (m *MockRatingService) Given(ctx context.Context, userID string, page, limit int) (*models.RatingListResponse, error) {
	if m.GivenFunc != nil {
		return m.GivenFunc(ctx, userID, page, limit)
	}
	return nil, nil
}

func (m *MockRatingService) Received(ctx context.Context, userID string, page, limit int) (*models.RatingListResponse, error) {
	if m.ReceivedFunc != nil {
		return m.ReceivedFunc(ctx, userID, page, limit)
	}
	return nil, nil
}

func (m *MockRatingService) ForUser(ctx context.Context, userID string, page, limit int) (*models.UserRatingsResponse, error) {
	if m.ForUserFunc != nil {
		return m.ForUserFunc(ctx, userID, page, limit)
	}
	return nil, nil
}

// MockAdminService is a mock implementation of AdminServicer.
type MockAdminService struct {
	ToggleBanFunc        func(ctx context.Context, userID, reason string) (*models.BanUserResponse, error)
	ListUsersFunc        func(ctx context.Context, q *models.AdminUserListQuery) (*models.UserListResponse, error)
	ListSwapsFunc        func(ctx context.Context, q *models.AdminSwapListQuery) (*models.SwapListResponse, error)
	DeleteSwapFunc       func(ctx context.Context, requestID string) error
	BroadcastMessageFunc func(ctx context.Context, adminID string, req *models.CreateAdminMessageRequest) (*models.AdminMessage, error)
	ListMessagesFunc     func(ctx context.Context, q *models.AdminMessageListQuery) (*models.AdminMessageListResponse, error)
	StatisticsFunc       func(ctx context.Context) (*models.Statistics, error)
	ReportFunc           func(ctx context.Context, q *models.ReportQuery) (*models.Report, error)
}

func (m *MockAdminService) ToggleBan(ctx context.Context, userID, reason string) (*models.BanUserResponse, error) {
	if m.ToggleBanFunc != nil {
		return m.ToggleBanFunc(ctx, userID, reason)
	}
	return nil, nil
}

func (m *MockAdminService) ListUsers(ctx context.Context, q *models.AdminUserListQuery) (*models.UserListResponse, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx, q)
	}
	return nil, nil
}

func (m *MockAdminService) ListSwaps(ctx context.Context, q *models.AdminSwapListQuery) (*models.SwapListResponse, error) {
	if m.ListSwapsFunc != nil {
		return m.ListSwapsFunc(ctx, q)
	}
	return nil, nil
}

func (m *MockAdminService) DeleteSwap(ctx context.Context, requestID string) error {
	if m.DeleteSwapFunc != nil {
		return m.DeleteSwapFunc(ctx, requestID)
	}
	return nil
}

func (m *MockAdminService) BroadcastMessage(ctx context.Context, adminID string, req *models.CreateAdminMessageRequest) (*models.AdminMessage, error) {
	if m.BroadcastMessageFunc != nil {
		return m.BroadcastMessageFunc(ctx, adminID, req)
	}
	return nil, nil
}

func (m *MockAdminService) ListMessages(ctx context.Context, q *models.AdminMessageListQuery) (*models.AdminMessageListResponse, error) {
	if m.ListMessagesFunc != nil {
		return m.ListMessagesFunc(ctx, q)
	}
	return nil, nil
}

func (m *MockAdminService) Statistics(ctx context.Context) (*models.Statistics, error) {
	if m.StatisticsFunc != nil {
		return m.StatisticsFunc(ctx)
	}
	return nil, nil
}

func (m *MockAdminService) Report(ctx context.Context, q *models.ReportQuery) (*models.Report, error) {
	if m.ReportFunc != nil {
		return m.ReportFunc(ctx, q)
	}
	return nil, nil
}
