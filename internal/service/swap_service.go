package service

import (
	"context"
	"time"

	"skillswap/internal/cache"
	apperrors "skillswap/internal/errors"
	"skillswap/internal/meeting"
	"skillswap/internal/models"
	"skillswap/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SwapService handles the swap request lifecycle.
type SwapService struct {
	swapRepo    repository.SwapRequestRepository
	userRepo    repository.UserRepository
	meetingRepo repository.MeetingRepository
	cache       cache.Cache
}

// NewSwapService creates a new SwapService.
func NewSwapService(swapRepo repository.SwapRequestRepository, userRepo repository.UserRepository, meetingRepo repository.MeetingRepository, cache cache.Cache) *SwapService {
	return &SwapService{
		swapRepo:    swapRepo,
		userRepo:    userRepo,
		meetingRepo: meetingRepo,
		cache:       cache,
	}
}

// Create validates and inserts a new pending swap request.
func (s *SwapService) Create(ctx context.Context, requesterID string, req *models.CreateSwapRequest) (*models.SwapRequest, error) {
	requester, err := parseObjectID(requesterID)
	if err != nil {
		return nil, err
	}
	provider, err := parseObjectID(req.ProviderID)
	if err != nil {
		return nil, err
	}

	if requester == provider {
		return nil, apperrors.ErrSelfSwap
	}

	providerUser, err := s.userRepo.FindActiveProvider(ctx, provider)
	if err != nil {
		return nil, err
	}

	skillRequested := normalizeSkill(req.SkillRequested)
	skillOffered := normalizeSkill(req.SkillOffered)

	if !containsSkill(providerUser.SkillsOffered, skillRequested) {
		return nil, apperrors.ErrSkillNotOffered
	}

	existing, err := s.swapRepo.FindPendingDuplicate(ctx, requester, provider, skillRequested, skillOffered)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicatePending
	}

	swap := &models.SwapRequest{
		Requester:      requester,
		Provider:       provider,
		SkillRequested: skillRequested,
		SkillOffered:   skillOffered,
		Message:        req.Message,
		ScheduledDate:  req.ScheduledDate,
	}
	if err := s.swapRepo.Create(ctx, swap); err != nil {
		return nil, err
	}

	s.attachParties(ctx, swap)
	return swap, nil
}

// List returns the user's swap requests, newest first.
func (s *SwapService) List(ctx context.Context, userID string, q *models.SwapListQuery) (*models.SwapListResponse, error) {
	objectID, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	filter := repository.SwapListFilter{
		Type:   q.Type,
		Status: models.SwapStatus(q.Status),
	}

	swaps, total, err := s.swapRepo.ListForUser(ctx, objectID, filter, q.Page, q.Limit)
	if err != nil {
		return nil, err
	}
	s.attachPartiesAll(ctx, swaps)

	return &models.SwapListResponse{
		SwapRequests: swaps,
		Pagination:   models.NewPagination(q.Page, q.Limit, total),
	}, nil
}

// Get returns a single swap request the user is a party to.
func (s *SwapService) Get(ctx context.Context, userID, requestID string) (*models.SwapRequest, error) {
	objectID, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}
	swapID, err := parseObjectID(requestID)
	if err != nil {
		return nil, err
	}

	swap, err := s.swapRepo.FindForParty(ctx, swapID, objectID)
	if err != nil {
		return nil, err
	}

	s.attachParties(ctx, swap)
	return swap, nil
}

// Accept moves a pending request to accepted, generating a video-call room
// for the scheduled session. Only the provider can accept.
//
// The meeting document is inserted before the status transition. If the
// transition then loses a race (the requester cancelled concurrently), the
// meeting is orphaned but never referenced, which is harmless.
func (s *SwapService) Accept(ctx context.Context, providerID, requestID string, req *models.AcceptSwapRequest) (*models.AcceptSwapResponse, error) {
	provider, err := parseObjectID(providerID)
	if err != nil {
		return nil, err
	}
	swapID, err := parseObjectID(requestID)
	if err != nil {
		return nil, err
	}
	if req.ScheduledDate.IsZero() {
		return nil, apperrors.ErrScheduledDateRequired
	}

	swap, err := s.swapRepo.FindForParty(ctx, swapID, provider)
	if err != nil {
		return nil, err
	}
	if swap.Provider != provider || swap.Status != models.SwapPending {
		return nil, apperrors.ErrSwapNotFound
	}

	details := meeting.Generate(
		meeting.Title(swap.SkillOffered, swap.SkillRequested),
		req.ScheduledDate,
		req.Duration,
	)

	mtg := &models.Meeting{
		SwapRequest:    swap.ID,
		Requester:      swap.Requester,
		Provider:       swap.Provider,
		MeetingLink:    details.MeetingLink,
		MeetingID:      details.MeetingID,
		ScheduledDate:  details.ScheduledDate,
		Duration:       details.Duration,
		SkillRequested: swap.SkillRequested,
		SkillOffered:   swap.SkillOffered,
	}
	if err := s.meetingRepo.Create(ctx, mtg); err != nil {
		return nil, apperrors.ErrMeetingGeneration
	}

	updated, err := s.swapRepo.Transition(ctx, swapID, provider, repository.RoleProvider, models.SwapPending, models.SwapAccepted, bson.M{
		"scheduledDate": req.ScheduledDate,
		"meeting":       mtg.ID,
	})
	if err != nil {
		return nil, err
	}

	s.attachParties(ctx, updated)
	return &models.AcceptSwapResponse{
		SwapRequest: updated,
		Meeting:     &details,
	}, nil
}

// Reject moves a pending request to rejected. Only the provider can reject.
func (s *SwapService) Reject(ctx context.Context, providerID, requestID string) (*models.SwapRequest, error) {
	return s.transition(ctx, providerID, requestID, repository.RoleProvider, models.SwapPending, models.SwapRejected, nil)
}

// Cancel withdraws a pending request. Only the requester can cancel.
func (s *SwapService) Cancel(ctx context.Context, requesterID, requestID string) (*models.SwapRequest, error) {
	return s.transition(ctx, requesterID, requestID, repository.RoleRequester, models.SwapPending, models.SwapCancelled, nil)
}

// Complete moves an accepted request to completed and credits a swap to
// both parties. Either party can complete.
func (s *SwapService) Complete(ctx context.Context, userID, requestID string) (*models.SwapRequest, error) {
	swap, err := s.transition(ctx, userID, requestID, repository.RoleEither, models.SwapAccepted, models.SwapCompleted, bson.M{
		"completedDate": time.Now(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.IncrementTotalSwaps(ctx, swap.Requester, swap.Provider); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx,
		cache.UserCacheKey(swap.Requester.Hex()),
		cache.UserCacheKey(swap.Provider.Hex()),
	)

	return swap, nil
}

func (s *SwapService) transition(ctx context.Context, actorID, requestID string, role repository.SwapRole, from, to models.SwapStatus, set bson.M) (*models.SwapRequest, error) {
	actor, err := parseObjectID(actorID)
	if err != nil {
		return nil, err
	}
	swapID, err := parseObjectID(requestID)
	if err != nil {
		return nil, err
	}

	swap, err := s.swapRepo.Transition(ctx, swapID, actor, role, from, to, set)
	if err != nil {
		return nil, err
	}

	s.attachParties(ctx, swap)
	return swap, nil
}

// attachParties embeds requester and provider summaries. Best effort: a
// lookup failure leaves the summaries empty.
func (s *SwapService) attachParties(ctx context.Context, swaps ...*models.SwapRequest) {
	ids := make([]primitive.ObjectID, 0, len(swaps)*2)
	for _, swap := range swaps {
		ids = append(ids, swap.Requester, swap.Provider)
	}

	summaries, err := s.userRepo.FindSummaries(ctx, ids)
	if err != nil {
		return
	}

	for _, swap := range swaps {
		if info, ok := summaries[swap.Requester]; ok {
			swap.RequesterInfo = &info
		}
		if info, ok := summaries[swap.Provider]; ok {
			swap.ProviderInfo = &info
		}
	}
}

func (s *SwapService) attachPartiesAll(ctx context.Context, swaps []models.SwapRequest) {
	ptrs := make([]*models.SwapRequest, len(swaps))
	for i := range swaps {
		ptrs[i] = &swaps[i]
	}
	s.attachParties(ctx, ptrs...)
}
