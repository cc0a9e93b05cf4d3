package service

import (
	"context"
	"math"

	"skillswap/internal/cache"
	apperrors "skillswap/internal/errors"
	"skillswap/internal/models"
	"skillswap/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RatingService handles business logic for swap ratings.
type RatingService struct {
	ratingRepo repository.RatingRepository
	swapRepo   repository.SwapRequestRepository
	userRepo   repository.UserRepository
	cache      cache.Cache
}

// NewRatingService creates a new RatingService.
func NewRatingService(ratingRepo repository.RatingRepository, swapRepo repository.SwapRequestRepository, userRepo repository.UserRepository, cache cache.Cache) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		swapRepo:   swapRepo,
		userRepo:   userRepo,
		cache:      cache,
	}
}

// Rate records a rating for the other party of a completed swap and
// recomputes the rated user's aggregate.
func (s *RatingService) Rate(ctx context.Context, raterID string, req *models.CreateRatingRequest) (*models.Rating, error) {
	rater, err := parseObjectID(raterID)
	if err != nil {
		return nil, err
	}
	swapID, err := parseObjectID(req.SwapRequestID)
	if err != nil {
		return nil, err
	}

	swap, err := s.swapRepo.FindForParty(ctx, swapID, rater)
	if err != nil || swap.Status != models.SwapCompleted {
		return nil, apperrors.ErrCompletedSwapNotFound
	}

	rated := swap.Provider
	if rater == swap.Provider {
		rated = swap.Requester
	}

	existing, err := s.ratingRepo.FindBySwapAndRater(ctx, swapID, rater)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyRated
	}

	rating := &models.Rating{
		SwapRequest: swapID,
		Rater:       rater,
		Rated:       rated,
		Rating:      req.Rating,
		Feedback:    req.Feedback,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}

	if err := s.recomputeAggregate(ctx, rated); err != nil {
		return nil, err
	}

	s.attachParties(ctx, rating)
	return rating, nil
}

// Update modifies the rater's own rating and recomputes the rated user's
// aggregate when the score changed.
func (s *RatingService) Update(ctx context.Context, raterID, ratingID string, req *models.UpdateRatingRequest) (*models.Rating, error) {
	rater, err := parseObjectID(raterID)
	if err != nil {
		return nil, err
	}
	id, err := parseObjectID(ratingID)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if req.Rating != nil {
		set["rating"] = *req.Rating
	}
	if req.Feedback != nil {
		set["feedback"] = *req.Feedback
	}

	rating, err := s.ratingRepo.UpdateByRater(ctx, id, rater, set)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		if err := s.recomputeAggregate(ctx, rating.Rated); err != nil {
			return nil, err
		}
	}

	s.attachParties(ctx, rating)
	return rating, nil
}

// Given returns the ratings the user has written, newest first.
func (s *RatingService) Given(ctx context.Context, userID string, page, limit int) (*models.RatingListResponse, error) {
	objectID, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	ratings, total, err := s.ratingRepo.ListByRater(ctx, objectID, page, limit)
	if err != nil {
		return nil, err
	}
	s.attachPartiesAll(ctx, ratings)

	return &models.RatingListResponse{
		Ratings:    ratings,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// Received returns the ratings the user has received, newest first.
func (s *RatingService) Received(ctx context.Context, userID string, page, limit int) (*models.RatingListResponse, error) {
	objectID, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	ratings, total, err := s.ratingRepo.ListByRated(ctx, objectID, page, limit)
	if err != nil {
		return nil, err
	}
	s.attachPartiesAll(ctx, ratings)

	return &models.RatingListResponse{
		Ratings:    ratings,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// ForUser returns the public view of a user's received ratings together
// with their statistics.
func (s *RatingService) ForUser(ctx context.Context, userID string, page, limit int) (*models.UserRatingsResponse, error) {
	objectID, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	ratings, total, err := s.ratingRepo.ListByRated(ctx, objectID, page, limit)
	if err != nil {
		return nil, err
	}
	s.attachPartiesAll(ctx, ratings)

	stats, err := s.ratingRepo.StatsForUser(ctx, objectID)
	if err != nil {
		return nil, err
	}

	return &models.UserRatingsResponse{
		Ratings:    ratings,
		Statistics: *stats,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// recomputeAggregate rebuilds the rated user's average from all their
// ratings, rounded to one decimal place.
func (s *RatingService) recomputeAggregate(ctx context.Context, rated primitive.ObjectID) error {
	ratings, err := s.ratingRepo.FindAllByRated(ctx, rated)
	if err != nil {
		return err
	}

	average := 0.0
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r.Rating
		}
		average = math.Round(float64(sum)/float64(len(ratings))*10) / 10
	}

	if err := s.userRepo.SetRatingAggregate(ctx, rated, average, len(ratings)); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, cache.UserCacheKey(rated.Hex()))
	return nil
}

// attachParties embeds rater and rated summaries. Best effort.
func (s *RatingService) attachParties(ctx context.Context, ratings ...*models.Rating) {
	ids := make([]primitive.ObjectID, 0, len(ratings)*2)
	for _, rating := range ratings {
		ids = append(ids, rating.Rater, rating.Rated)
	}

	summaries, err := s.userRepo.FindSummaries(ctx, ids)
	if err != nil {
		return
	}

	for _, rating := range ratings {
		if info, ok := summaries[rating.Rater]; ok {
			rating.RaterInfo = &info
		}
		if info, ok := summaries[rating.Rated]; ok {
			rating.RatedInfo = &info
		}
	}
}

func (s *RatingService) attachPartiesAll(ctx context.Context, ratings []models.Rating) {
	ptrs := make([]*models.Rating, len(ratings))
	for i := range ratings {
		ptrs[i] = &ratings[i]
	}
	s.attachParties(ctx, ptrs...)
}
