package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"skillswap/internal/cache"
	"skillswap/internal/email"
	apperrors "skillswap/internal/errors"
	"skillswap/internal/models"
	"skillswap/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	trendMonths       = 6
	topSkillsLimit    = 10
	defaultReportDays = 30
	broadcastTimeout  = 30 * time.Second
)

// AdminService handles moderation, broadcast, and reporting logic.
type AdminService struct {
	userRepo   repository.UserRepository
	swapRepo   repository.SwapRequestRepository
	ratingRepo repository.RatingRepository
	msgRepo    repository.AdminMessageRepository
	sender     email.Sender
	cache      cache.Cache
}

// AdminServiceConfig holds configuration for AdminService.
type AdminServiceConfig struct {
	UserRepo   repository.UserRepository
	SwapRepo   repository.SwapRequestRepository
	RatingRepo repository.RatingRepository
	MsgRepo    repository.AdminMessageRepository
	Sender     email.Sender
	Cache      cache.Cache
}

// NewAdminService creates a new AdminService.
func NewAdminService(cfg AdminServiceConfig) *AdminService {
	return &AdminService{
		userRepo:   cfg.UserRepo,
		swapRepo:   cfg.SwapRepo,
		ratingRepo: cfg.RatingRepo,
		msgRepo:    cfg.MsgRepo,
		sender:     cfg.Sender,
		cache:      cfg.Cache,
	}
}

// ToggleBan flips a user's ban flag. Admin accounts cannot be banned.
func (s *AdminService) ToggleBan(ctx context.Context, userID, reason string) (*models.BanUserResponse, error) {
	objectID, err := parseObjectID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.userRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if user.Role == models.RoleAdmin {
		return nil, apperrors.ErrCannotBanAdmin
	}

	banned := !user.IsBanned
	if err := s.userRepo.SetBanned(ctx, objectID, banned); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.UserCacheKey(userID))

	return &models.BanUserResponse{
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		IsBanned: banned,
		Reason:   reason,
	}, nil
}

// ListUsers returns users for the moderation surface.
func (s *AdminService) ListUsers(ctx context.Context, q *models.AdminUserListQuery) (*models.UserListResponse, error) {
	filter := repository.AdminUserFilter{
		Status: q.Status,
		Role:   q.Role,
		Search: q.Search,
	}

	users, total, err := s.userRepo.AdminList(ctx, filter, q.Page, q.Limit)
	if err != nil {
		return nil, err
	}

	return &models.UserListResponse{
		Users:      users,
		Pagination: models.NewPagination(q.Page, q.Limit, total),
	}, nil
}

// ListSwaps returns all swap requests for the monitoring surface.
func (s *AdminService) ListSwaps(ctx context.Context, q *models.AdminSwapListQuery) (*models.SwapListResponse, error) {
	filter := repository.AdminSwapFilter{
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	}
	if q.Status != "" && q.Status != "all" {
		filter.Status = models.SwapStatus(q.Status)
	}

	swaps, total, err := s.swapRepo.AdminList(ctx, filter, q.Page, q.Limit)
	if err != nil {
		return nil, err
	}
	s.attachParties(ctx, swaps)

	return &models.SwapListResponse{
		SwapRequests: swaps,
		Pagination:   models.NewPagination(q.Page, q.Limit, total),
	}, nil
}

// DeleteSwap hard-removes a swap request.
func (s *AdminService) DeleteSwap(ctx context.Context, requestID string) error {
	objectID, err := parseObjectID(requestID)
	if err != nil {
		return apperrors.ErrSwapNotFound
	}
	return s.swapRepo.Delete(ctx, objectID)
}

// BroadcastMessage records a platform message and emails it to all active
// users. Delivery is best effort and does not block the response.
func (s *AdminService) BroadcastMessage(ctx context.Context, adminID string, req *models.CreateAdminMessageRequest) (*models.AdminMessage, error) {
	creator, err := parseObjectID(adminID)
	if err != nil {
		return nil, err
	}

	msg := &models.AdminMessage{
		Title:     req.Title,
		Content:   req.Content,
		Type:      req.Type,
		CreatedBy: creator,
	}
	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	recipients, err := s.userRepo.FindActiveEmails(ctx)
	if err != nil {
		logrus.Errorf("Broadcast %s: failed to load recipients: %v", msg.ID.Hex(), err)
		return msg, nil
	}

	go s.deliverBroadcast(msg, recipients)

	return msg, nil
}

func (s *AdminService) deliverBroadcast(msg *models.AdminMessage, users []models.User) {
	ctx, cancel := context.WithTimeout(context.Background(), broadcastTimeout)
	defer cancel()

	recipients := make([]email.Recipient, 0, len(users))
	for _, u := range users {
		recipients = append(recipients, email.Recipient{Name: u.Name, Email: u.Email})
	}

	subject := fmt.Sprintf("[SkillSwap] %s", msg.Title)
	body := fmt.Sprintf("<h2>%s</h2><p>%s</p>", msg.Title, msg.Content)

	if err := s.sender.Send(ctx, subject, body, recipients); err != nil {
		logrus.Errorf("Broadcast %s: delivery failed: %v", msg.ID.Hex(), err)
		return
	}
	logrus.Infof("Broadcast %s delivered to %d recipients", msg.ID.Hex(), len(recipients))
}

// ListMessages returns platform messages, newest first.
func (s *AdminService) ListMessages(ctx context.Context, q *models.AdminMessageListQuery) (*models.AdminMessageListResponse, error) {
	filter := repository.AdminMessageFilter{
		Type:     q.Type,
		IsActive: q.IsActive,
	}

	messages, total, err := s.msgRepo.List(ctx, filter, q.Page, q.Limit)
	if err != nil {
		return nil, err
	}
	s.attachCreators(ctx, messages)

	return &models.AdminMessageListResponse{
		Messages:   messages,
		Pagination: models.NewPagination(q.Page, q.Limit, total),
	}, nil
}

// Statistics aggregates the platform-wide dashboard numbers.
func (s *AdminService) Statistics(ctx context.Context) (*models.Statistics, error) {
	totalSwaps, err := s.swapRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	completedSwaps, err := s.swapRepo.CountByStatus(ctx, models.SwapCompleted)
	if err != nil {
		return nil, err
	}
	pendingSwaps, err := s.swapRepo.CountByStatus(ctx, models.SwapPending)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	activeUsers, err := s.userRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	avgRating, totalRatings, err := s.ratingRepo.GlobalAverage(ctx)
	if err != nil {
		return nil, err
	}

	completionRate := 0.0
	if totalSwaps > 0 {
		completionRate = math.Round(float64(completedSwaps)/float64(totalSwaps)*1000) / 10
	}

	breakdown, err := s.swapRepo.StatusBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	trends, err := s.swapRepo.MonthlyTrends(ctx, monthStart.AddDate(0, -(trendMonths-1), 0))
	if err != nil {
		return nil, err
	}

	topRequested, err := s.swapRepo.TopSkills(ctx, "skillRequested", topSkillsLimit)
	if err != nil {
		return nil, err
	}
	topOffered, err := s.swapRepo.TopSkills(ctx, "skillOffered", topSkillsLimit)
	if err != nil {
		return nil, err
	}

	return &models.Statistics{
		Overview: models.StatisticsOverview{
			TotalSwaps:     totalSwaps,
			CompletedSwaps: completedSwaps,
			PendingSwaps:   pendingSwaps,
			TotalUsers:     totalUsers,
			ActiveUsers:    activeUsers,
			CompletionRate: completionRate,
			AverageRating:  avgRating,
			TotalRatings:   totalRatings,
		},
		SwapStatusBreakdown: breakdown,
		MonthlyTrends:       trends,
		TopSkillsRequested:  topRequested,
		TopSkillsOffered:    topOffered,
	}, nil
}

// Report generates a daily-bucketed report over the requested range,
// defaulting to the last 30 days.
func (s *AdminService) Report(ctx context.Context, q *models.ReportQuery) (*models.Report, error) {
	end := time.Now()
	if q.EndDate != nil {
		// Include the whole end day.
		end = q.EndDate.AddDate(0, 0, 1).Add(-time.Millisecond)
	}
	start := end.AddDate(0, 0, -defaultReportDays)
	if q.StartDate != nil {
		start = *q.StartDate
	}

	var data interface{}
	var err error
	switch q.Type {
	case "users":
		data, err = s.userRepo.DailyReport(ctx, start, end)
	case "swaps":
		data, err = s.swapRepo.DailyReport(ctx, start, end)
	case "ratings":
		data, err = s.ratingRepo.DailyReport(ctx, start, end)
	}
	if err != nil {
		return nil, err
	}

	return &models.Report{
		ReportType: q.Type,
		StartDate:  start,
		EndDate:    end,
		Data:       data,
	}, nil
}

func (s *AdminService) attachParties(ctx context.Context, swaps []models.SwapRequest) {
	ids := make([]primitive.ObjectID, 0, len(swaps)*2)
	for i := range swaps {
		ids = append(ids, swaps[i].Requester, swaps[i].Provider)
	}

	summaries, err := s.userRepo.FindSummaries(ctx, ids)
	if err != nil {
		return
	}

	for i := range swaps {
		if info, ok := summaries[swaps[i].Requester]; ok {
			swaps[i].RequesterInfo = &info
		}
		if info, ok := summaries[swaps[i].Provider]; ok {
			swaps[i].ProviderInfo = &info
		}
	}
}

func (s *AdminService) attachCreators(ctx context.Context, messages []models.AdminMessage) {
	ids := make([]primitive.ObjectID, 0, len(messages))
	for i := range messages {
		ids = append(ids, messages[i].CreatedBy)
	}

	summaries, err := s.userRepo.FindSummaries(ctx, ids)
	if err != nil {
		return
	}

	for i := range messages {
		if info, ok := summaries[messages[i].CreatedBy]; ok {
			messages[i].CreatorInfo = &info
		}
	}
}
