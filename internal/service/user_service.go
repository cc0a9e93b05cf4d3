package service

import (
	"context"
	"time"

	"skillswap/internal/cache"
	apperrors "skillswap/internal/errors"
	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	// userCacheTTL must stay below photoURLTTL so cached profiles never
	// carry an expired photo link.
	userCacheTTL = 15 * time.Minute

	photoURLTTL       = time.Hour
	photoUploadURLTTL = 15 * time.Minute
)

// UserService handles business logic for profiles and discovery.
type UserService struct {
	repo    repository.UserRepository
	cache   cache.Cache
	storage storage.Storage
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, cache cache.Cache, storage storage.Storage) *UserService {
	return &UserService{
		repo:    repo,
		cache:   cache,
		storage: storage,
	}
}

// GetProfile retrieves the authenticated user's own profile (with caching).
func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	objectID, err := parseObjectID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	// Try cache first
	cacheKey := cache.UserCacheKey(userID)
	var user models.User
	found, err := s.cache.Get(ctx, cacheKey, &user)
	if err == nil && found {
		return &user, nil // Cache hit
	}

	// Cache miss - get from database
	dbUser, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	s.attachPhoto(ctx, dbUser)

	// Store in cache (ignore errors - cache is best effort)
	_ = s.cache.Set(ctx, cacheKey, dbUser, userCacheTTL)

	return dbUser, nil
}

// UpdateProfile applies the fields present in the request and returns the
// updated profile. Skill lists are normalized to lower case.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.User, error) {
	objectID, err := parseObjectID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	update := bson.M{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Location != nil {
		update["location"] = *req.Location
	}
	if req.Bio != nil {
		update["bio"] = *req.Bio
	}
	if req.SkillsOffered != nil {
		update["skillsOffered"] = normalizeSkills(*req.SkillsOffered)
	}
	if req.SkillsWanted != nil {
		update["skillsWanted"] = normalizeSkills(*req.SkillsWanted)
	}
	if req.Availability != nil {
		update["availability"] = *req.Availability
	}

	user, err := s.repo.UpdateProfile(ctx, objectID, update)
	if err != nil {
		return nil, err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.UserCacheKey(userID))

	s.attachPhoto(ctx, user)
	return user, nil
}

// UpdateVisibility toggles whether the profile appears in discovery.
func (s *UserService) UpdateVisibility(ctx context.Context, userID string, isPublic bool) (*models.User, error) {
	objectID, err := parseObjectID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.repo.UpdateProfile(ctx, objectID, bson.M{"isPublic": isPublic})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.UserCacheKey(userID))

	s.attachPhoto(ctx, user)
	return user, nil
}

// RequestPhotoUpload issues a pre-signed upload URL for the user's profile
// photo and records the object key on the profile.
func (s *UserService) RequestPhotoUpload(ctx context.Context, userID, contentType string) (*models.PhotoUploadResponse, error) {
	objectID, err := parseObjectID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	key := storage.PhotoKey(userID, contentType)
	uploadURL, err := s.storage.GetPresignedPutURL(ctx, key, contentType, photoUploadURLTTL)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.UpdateProfile(ctx, objectID, bson.M{"photoKey": key}); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.UserCacheKey(userID))

	return &models.PhotoUploadResponse{
		UploadURL: uploadURL,
		PhotoKey:  key,
	}, nil
}

// Search returns public profiles matching the discovery filters.
func (s *UserService) Search(ctx context.Context, q *models.UserSearchQuery) (*models.UserListResponse, error) {
	filter := repository.UserSearchFilter{
		Skill:    normalizeSkill(q.Skill),
		Location: q.Location,
	}

	users, total, err := s.repo.Search(ctx, filter, q.Page, q.Limit)
	if err != nil {
		return nil, err
	}
	s.attachPhotos(ctx, users)

	return &models.UserListResponse{
		Users:      users,
		Pagination: models.NewPagination(q.Page, q.Limit, total),
	}, nil
}

// FindBySkill returns public profiles offering the given skill.
func (s *UserService) FindBySkill(ctx context.Context, skill string, page, limit int) (*models.UserListResponse, error) {
	users, total, err := s.repo.FindBySkill(ctx, normalizeSkill(skill), page, limit)
	if err != nil {
		return nil, err
	}
	s.attachPhotos(ctx, users)

	return &models.UserListResponse{
		Users:      users,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// GetPublicProfile retrieves another user's profile. Private profiles
// report ErrProfilePrivate; banned or deactivated users are not found.
func (s *UserService) GetPublicProfile(ctx context.Context, userID string) (*models.User, error) {
	objectID, err := parseObjectID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	if !user.IsActive || user.IsBanned {
		return nil, apperrors.ErrUserNotFound
	}
	if !user.IsPublic {
		return nil, apperrors.ErrProfilePrivate
	}

	s.attachPhoto(ctx, user)
	return user, nil
}

// attachPhoto resolves the stored photo key into a pre-signed download URL.
// Best effort: a storage failure leaves the profile without a photo link.
func (s *UserService) attachPhoto(ctx context.Context, user *models.User) {
	if user.PhotoKey == "" {
		return
	}
	url, err := s.storage.GetPresignedURL(ctx, user.PhotoKey, photoURLTTL)
	if err != nil {
		return
	}
	user.ProfilePhoto = url
}

func (s *UserService) attachPhotos(ctx context.Context, users []models.User) {
	for i := range users {
		s.attachPhoto(ctx, &users[i])
	}
}
