package handler

import (
	"errors"
	"strconv"

	apperrors "skillswap/internal/errors"
	"skillswap/internal/middleware"
	"skillswap/internal/models"
	"skillswap/internal/service"
	"skillswap/pkg/response"

	"github.com/gin-gonic/gin"
)

// RatingHandler handles HTTP requests for swap ratings.
type RatingHandler struct {
	service service.RatingServicer
}

// NewRatingHandler creates a new RatingHandler.
func NewRatingHandler(service service.RatingServicer) *RatingHandler {
	return &RatingHandler{service: service}
}

// Rate records a rating for the other party of a completed swap.
// POST /rating/rate
func (h *RatingHandler) Rate(c *gin.Context) {
	var req models.CreateRatingRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rating, err := h.service.Rate(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidID),
			errors.Is(err, apperrors.ErrAlreadyRated):
			response.BadRequest(c, err.Error())
		case errors.Is(err, apperrors.ErrCompletedSwapNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, "rating recorded", rating)
}

// Update modifies the rater's own rating.
// PUT /rating/:ratingId
func (h *RatingHandler) Update(c *gin.Context) {
	var req models.UpdateRatingRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rating, err := h.service.Update(c.Request.Context(), middleware.GetUserID(c), c.Param("ratingId"), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidID):
			response.BadRequest(c, err.Error())
		case errors.Is(err, apperrors.ErrRatingNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.SuccessMessage(c, "rating updated", rating)
}

// Given returns the ratings the authenticated user has written.
// GET /rating/my-given
func (h *RatingHandler) Given(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := h.service.Given(c.Request.Context(), middleware.GetUserID(c), page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// Received returns the ratings the authenticated user has received.
// GET /rating/my-received
func (h *RatingHandler) Received(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := h.service.Received(c.Request.Context(), middleware.GetUserID(c), page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// ForUser returns another user's received ratings with statistics.
// GET /rating/user/:userId
func (h *RatingHandler) ForUser(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := h.service.ForUser(c.Request.Context(), c.Param("userId"), page, limit)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidID) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// pageParams reads page/limit query parameters with the usual defaults.
func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	return page, limit
}
