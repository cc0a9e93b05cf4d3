package handler

import (
	"errors"

	apperrors "skillswap/internal/errors"
	"skillswap/internal/middleware"
	"skillswap/internal/models"
	"skillswap/internal/service"
	"skillswap/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for profile and discovery operations.
type UserHandler struct {
	service service.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service service.UserServicer) *UserHandler {
	return &UserHandler{service: service}
}

// GetProfile returns the authenticated user's own profile.
// GET /user/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.service.GetProfile(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, user)
}

// UpdateProfile updates the fields present in the request body.
// PUT /user/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.SuccessMessage(c, "profile updated", user)
}

// UpdateVisibility toggles whether the profile appears in discovery.
// PUT /user/profile/visibility
func (h *UserHandler) UpdateVisibility(c *gin.Context) {
	var req models.UpdateVisibilityRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.UpdateVisibility(c.Request.Context(), middleware.GetUserID(c), *req.IsPublic)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.SuccessMessage(c, "visibility updated", user)
}

// RequestPhotoUpload issues a pre-signed upload URL for the profile photo.
// POST /user/profile/photo
func (h *UserHandler) RequestPhotoUpload(c *gin.Context) {
	var req models.PhotoUploadRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.RequestPhotoUpload(c.Request.Context(), middleware.GetUserID(c), req.ContentType)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// Search returns public profiles matching the discovery filters.
// GET /user/search
func (h *UserHandler) Search(c *gin.Context) {
	var q models.UserSearchQuery

	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Search(c.Request.Context(), &q)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// FindBySkill returns public profiles offering the given skill.
// GET /user/skill/:skill
func (h *UserHandler) FindBySkill(c *gin.Context) {
	var q models.UserSearchQuery

	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.FindBySkill(c.Request.Context(), c.Param("skill"), q.Page, q.Limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// GetPublicProfile returns another user's public profile.
// GET /user/:userId
func (h *UserHandler) GetPublicProfile(c *gin.Context) {
	user, err := h.service.GetPublicProfile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrProfilePrivate):
			response.Forbidden(c, err.Error())
		case errors.Is(err, apperrors.ErrUserNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, user)
}
