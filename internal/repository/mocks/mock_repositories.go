// Package mocks provides mock implementations of repository interfaces for testing.
package mocks

import (
	"context"
	"time"

	"skillswap/internal/models"
	"skillswap/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	CreateFunc              func(ctx context.Context, user *models.User) error
	FindByIDFunc            func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmailFunc         func(ctx context.Context, email string) (*models.User, error)
	FindActiveProviderFunc  func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindSummariesFunc       func(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserSummary, error)
	UpdateProfileFunc       func(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.User, error)
	SearchFunc              func(ctx context.Context, filter repository.UserSearchFilter, page, limit int) ([]models.User, int64, error)
	FindBySkillFunc         func(ctx context.Context, skill string, page, limit int) ([]models.User, int64, error)
	AdminListFunc           func(ctx context.Context, filter repository.AdminUserFilter, page, limit int) ([]models.User, int64, error)
	FindActiveEmailsFunc    func(ctx context.Context) ([]models.User, error)
	SetBannedFunc           func(ctx context.Context, id primitive.ObjectID, banned bool) error
	IncrementTotalSwapsFunc func(ctx context.Context, ids ...primitive.ObjectID) error
	SetRatingAggregateFunc  func(ctx context.Context, id primitive.ObjectID, average float64, total int) error
	CountAllFunc            func(ctx context.Context) (int64, error)
	CountActiveFunc         func(ctx context.Context) (int64, error)
	DailyReportFunc         func(ctx context.Context, start, end time.Time) ([]models.DailyUserReport, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindActiveProvider(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.FindActiveProviderFunc != nil {
		return m.FindActiveProviderFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindSummaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserSummary, error) {
	if m.FindSummariesFunc != nil {
		return m.FindSummariesFunc(ctx, ids)
	}
	return map[primitive.ObjectID]models.UserSummary{}, nil
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, id, update)
	}
	return nil, nil
}

func (m *MockUserRepository) Search(ctx context.Context, filter repository.UserSearchFilter, page, limit int) ([]models.User, int64, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filter, page, limit)
	}
	return nil, 0, nil
}

func (m *MockUserRepository) FindBySkill(ctx context.Context, skill string, page, limit int) ([]models.User, int64, error) {
	if m.FindBySkillFunc != nil {
		return m.FindBySkillFunc(ctx, skill, page, limit)
	}
	return nil, 0, nil
}

func (m *MockUserRepository) AdminList(ctx context.Context, filter repository.AdminUserFilter, page, limit int) ([]models.User, int64, error) {
	if m.AdminListFunc != nil {
		return m.AdminListFunc(ctx, filter, page, limit)
	}
	return nil, 0, nil
}

func (m *MockUserRepository) FindActiveEmails(ctx context.Context) ([]models.User, error) {
	if m.FindActiveEmailsFunc != nil {
		return m.FindActiveEmailsFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepository) SetBanned(ctx context.Context, id primitive.ObjectID, banned bool) error {
	if m.SetBannedFunc != nil {
		return m.SetBannedFunc(ctx, id, banned)
	}
	return nil
}

func (m *MockUserRepository) IncrementTotalSwaps(ctx context.Context, ids ...primitive.ObjectID) error {
	if m.IncrementTotalSwapsFunc != nil {
		return m.IncrementTotalSwapsFunc(ctx, ids...)
	}
	return nil
}

func (m *MockUserRepository) SetRatingAggregate(ctx context.Context, id primitive.ObjectID, average float64, total int) error {
	if m.SetRatingAggregateFunc != nil {
		return m.SetRatingAggregateFunc(ctx, id, average, total)
	}
	return nil
}

func (m *MockUserRepository) CountAll(ctx context.Context) (int64, error) {
	if m.CountAllFunc != nil {
		return m.CountAllFunc(ctx)
	}
	return 0, nil
}

func (m *MockUserRepository) CountActive(ctx context.Context) (int64, error) {
	if m.CountActiveFunc != nil {
		return m.CountActiveFunc(ctx)
	}
	return 0, nil
}

func (m *MockUserRepository) DailyReport(ctx context.Context, start, end time.Time) ([]models.DailyUserReport, error) {
	if m.DailyReportFunc != nil {
		return m.DailyReportFunc(ctx, start, end)
	}
	return nil, nil
}

// MockSwapRequestRepository is a mock implementation of repository.SwapRequestRepository.
type MockSwapRequestRepository struct {
	CreateFunc               func(ctx context.Context, swap *models.SwapRequest) error
	FindByIDFunc             func(ctx context.Context, id primitive.ObjectID) (*models.SwapRequest, error)
	FindForPartyFunc         func(ctx context.Context, id, userID primitive.ObjectID) (*models.SwapRequest, error)
	FindPendingDuplicateFunc func(ctx context.Context, requester, provider primitive.ObjectID, skillRequested, skillOffered string) (*models.SwapRequest, error)
	ListForUserFunc          func(ctx context.Context, userID primitive.ObjectID, filter repository.SwapListFilter, page, limit int) ([]models.SwapRequest, int64, error)
	TransitionFunc           func(ctx context.Context, id, actorID primitive.ObjectID, role repository.SwapRole, from, to models.SwapStatus, set bson.M) (*models.SwapRequest, error)
	AdminListFunc            func(ctx context.Context, filter repository.AdminSwapFilter, page, limit int) ([]models.SwapRequest, int64, error)
	DeleteFunc               func(ctx context.Context, id primitive.ObjectID) error
	CountByStatusFunc        func(ctx context.Context, status models.SwapStatus) (int64, error)
	CountAllFunc             func(ctx context.Context) (int64, error)
	StatusBreakdownFunc      func(ctx context.Context) ([]models.StatusCount, error)
	MonthlyTrendsFunc        func(ctx context.Context, since time.Time) ([]models.MonthlyTrend, error)
	TopSkillsFunc            func(ctx context.Context, field string, limit int) ([]models.SkillCount, error)
	DailyReportFunc          func(ctx context.Context, start, end time.Time) ([]models.DailySwapReport, error)
}

func (m *MockSwapRequestRepository) Create(ctx context.Context, swap *models.SwapRequest) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, swap)
	}
	return nil
}

func (m *MockSwapRequestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.SwapRequest, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSwapRequestRepository) FindForParty(ctx context.Context, id, userID primitive.ObjectID) (*models.SwapRequest, error) {
	if m.FindForPartyFunc != nil {
		return m.FindForPartyFunc(ctx, id, userID)
	}
	return nil, nil
}

func (m *MockSwapRequestRepository) FindPendingDuplicate(ctx context.Context, requester, provider primitive.ObjectID, skillRequested, skillOffered string) (*models.SwapRequest, error) {
	if m.FindPendingDuplicateFunc != nil {
		return m.FindPendingDuplicateFunc(ctx, requester, provider, skillRequested, skillOffered)
	}
	return nil, nil
}

func (m *MockSwapRequestRepository) ListForUser(ctx context.Context, userID primitive.ObjectID, filter repository.SwapListFilter, page, limit int) ([]models.SwapRequest, int64, error) {
	if m.ListForUserFunc != nil {
		return m.ListForUserFunc(ctx, userID, filter, page, limit)
	}
	return nil, 0, nil
}

func (m *MockSwapRequestRepository) Transition(ctx context.Context, id, actorID primitive.ObjectID, role repository.SwapRole, from, to models.SwapStatus, set bson.M) (*models.SwapRequest, error) {
	if m.TransitionFunc != nil {
		return m.TransitionFunc(ctx, id, actorID, role, from, to, set)
	}
	return nil, nil
}

func (m *MockSwapRequestRepository) AdminList(ctx context.Context, filter repository.AdminSwapFilter, page, limit int) ([]models.SwapRequest, int64, error) {
	if m.AdminListFunc != nil {
		return m.AdminListFunc(ctx, filter, page, limit)
	}
	return nil, 0, nil
}

func (m *MockSwapRequestRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockSwapRequestRepository) CountByStatus(ctx context.Context, status models.SwapStatus) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, status)
	}
	return 0, nil
}

func (m *MockSwapRequestRepository) CountAll(ctx context.Context) (int64, error) {
	if m.CountAllFunc != nil {
		return m.CountAllFunc(ctx)
	}
	return 0, nil
}

func (m *MockSwapRequestRepository) StatusBreakdown(ctx context.Context) ([]models.StatusCount, error) {
	if m.StatusBreakdownFunc != nil {
		return m.StatusBreakdownFunc(ctx)
	}
	return nil, nil
}

func (m *MockSwapRequestRepository) MonthlyTrends(ctx context.Context, since time.Time) ([]models.MonthlyTrend, error) {
	if m.MonthlyTrendsFunc != nil {
		return m.MonthlyTrendsFunc(ctx, since)
	}
	return nil, nil
}

func (m *MockSwapRequestRepository) TopSkills(ctx context.Context, field string, limit int) ([]models.SkillCount, error) {
	if m.TopSkillsFunc != nil {
		return m.TopSkillsFunc(ctx, field, limit)
	}
	return nil, nil
}

func (m *MockSwapRequestRepository) DailyReport(ctx context.Context, start, end time.Time) ([]models.DailySwapReport, error) {
	if m.DailyReportFunc != nil {
		return m.DailyReportFunc(ctx, start, end)
	}
	return nil, nil
}

// MockMeetingRepository is a mock implementation of repository.MeetingRepository.
type MockMeetingRepository struct {
	CreateFunc       func(ctx context.Context, meeting *models.Meeting) error
	FindForPartyFunc func(ctx context.Context, id, userID primitive.ObjectID) (*models.Meeting, error)
	FindUpcomingFunc func(ctx context.Context, userID primitive.ObjectID, now time.Time) ([]models.Meeting, error)
	UpdateStatusFunc func(ctx context.Context, id, userID primitive.ObjectID, status models.MeetingStatus, now time.Time) (*models.Meeting, error)
}

func (m *MockMeetingRepository) Create(ctx context.Context, meeting *models.Meeting) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, meeting)
	}
	return nil
}

func (m *MockMeetingRepository) FindForParty(ctx context.Context, id, userID primitive.ObjectID) (*models.Meeting, error) {
	if m.FindForPartyFunc != nil {
		return m.FindForPartyFunc(ctx, id, userID)
	}
	return nil, nil
}

func (m *MockMeetingRepository) FindUpcoming(ctx context.Context, userID primitive.ObjectID, now time.Time) ([]models.Meeting, error) {
	if m.FindUpcomingFunc != nil {
		return m.FindUpcomingFunc(ctx, userID, now)
	}
	return nil, nil
}

func (m *MockMeetingRepository) UpdateStatus(ctx context.Context, id, userID primitive.ObjectID, status models.MeetingStatus, now time.Time) (*models.Meeting, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, userID, status, now)
	}
	return nil, nil
}

// MockRatingRepository is a mock implementation of repository.RatingRepository.
type MockRatingRepository struct {
	CreateFunc             func(ctx context.Context, rating *models.Rating) error
	FindBySwapAndRaterFunc func(ctx context.Context, swapID, raterID primitive.ObjectID) (*models.Rating, error)
	FindAllByRatedFunc     func(ctx context.Context, ratedID primitive.ObjectID) ([]models.Rating, error)
	ListByRatedFunc        func(ctx context.Context, ratedID primitive.ObjectID, page, limit int) ([]models.Rating, int64, error)
	ListByRaterFunc        func(ctx context.Context, raterID primitive.ObjectID, page, limit int) ([]models.Rating, int64, error)
	UpdateByRaterFunc      func(ctx context.Context, id, raterID primitive.ObjectID, set bson.M) (*models.Rating, error)
	StatsForUserFunc       func(ctx context.Context, ratedID primitive.ObjectID) (*models.RatingStatistics, error)
	GlobalAverageFunc      func(ctx context.Context) (float64, int64, error)
	DailyReportFunc        func(ctx context.Context, start, end time.Time) ([]models.DailyRatingReport, error)
}

func (m *MockRatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, rating)
	}
	return nil
}

func (m *MockRatingRepository) FindBySwapAndRater(ctx context.Context, swapID, raterID primitive.ObjectID) (*models.Rating, error) {
	if m.FindBySwapAndRaterFunc != nil {
		return m.FindBySwapAndRaterFunc(ctx, swapID, raterID)
	}
	return nil, nil
}

func (m *MockRatingRepository) FindAllByRated(ctx context.Context, ratedID primitive.ObjectID) ([]models.Rating, error) {
	if m.FindAllByRatedFunc != nil {
		return m.FindAllByRatedFunc(ctx, ratedID)
	}
	return nil, nil
}

func (m *MockRatingRepository) ListByRated(ctx context.Context, ratedID primitive.ObjectID, page, limit int) ([]models.Rating, int64, error) {
	if m.ListByRatedFunc != nil {
		return m.ListByRatedFunc(ctx, ratedID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockRatingRepository) ListByRater(ctx context.Context, raterID primitive.ObjectID, page, limit int) ([]models.Rating, int64, error) {
	if m.ListByRaterFunc != nil {
		return m.ListByRaterFunc(ctx, raterID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockRatingRepository) UpdateByRater(ctx context.Context, id, raterID primitive.ObjectID, set bson.M) (*models.Rating, error) {
	if m.UpdateByRaterFunc != nil {
		return m.UpdateByRaterFunc(ctx, id, raterID, set)
	}
	return nil, nil
}

func (m *MockRatingRepository) StatsForUser(ctx context.Context, ratedID primitive.ObjectID) (*models.RatingStatistics, error) {
	if m.StatsForUserFunc != nil {
		return m.StatsForUserFunc(ctx, ratedID)
	}
	return &models.RatingStatistics{}, nil
}

func (m *MockRatingRepository) GlobalAverage(ctx context.Context) (float64, int64, error) {
	if m.GlobalAverageFunc != nil {
		return m.GlobalAverageFunc(ctx)
	}
	return 0, 0, nil
}

func (m *MockRatingRepository) DailyReport(ctx context.Context, start, end time.Time) ([]models.DailyRatingReport, error) {
	if m.DailyReportFunc != nil {
		return m.DailyReportFunc(ctx, start, end)
	}
	return nil, nil
}

// MockAdminMessageRepository is a mock implementation of repository.AdminMessageRepository.
type MockAdminMessageRepository struct {
	CreateFunc func(ctx context.Context, msg *models.AdminMessage) error
	ListFunc   func(ctx context.Context, filter repository.AdminMessageFilter, page, limit int) ([]models.AdminMessage, int64, error)
}

func (m *MockAdminMessageRepository) Create(ctx context.Context, msg *models.AdminMessage) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, msg)
	}
	return nil
}

func (m *MockAdminMessageRepository) List(ctx context.Context, filter repository.AdminMessageFilter, page, limit int) ([]models.AdminMessage, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, page, limit)
	}
	return nil, 0, nil
}
