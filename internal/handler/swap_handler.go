package handler

import (
	"errors"
	"net/http"

	apperrors "skillswap/internal/errors"
	"skillswap/internal/middleware"
	"skillswap/internal/models"
	"skillswap/internal/service"
	"skillswap/pkg/response"

	"github.com/gin-gonic/gin"
)

// SwapHandler handles HTTP requests for the swap request lifecycle.
type SwapHandler struct {
	service service.SwapServicer
}

// NewSwapHandler creates a new SwapHandler.
func NewSwapHandler(service service.SwapServicer) *SwapHandler {
	return &SwapHandler{service: service}
}

// Create creates a new pending swap request.
// POST /swap/request
func (h *SwapHandler) Create(c *gin.Context) {
	var req models.CreateSwapRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	swap, err := h.service.Create(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidID),
			errors.Is(err, apperrors.ErrSelfSwap),
			errors.Is(err, apperrors.ErrSkillNotOffered),
			errors.Is(err, apperrors.ErrDuplicatePending):
			response.BadRequest(c, err.Error())
		case errors.Is(err, apperrors.ErrProviderNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, "swap request created", swap)
}

// List returns the authenticated user's swap requests.
// GET /swap/my-requests
func (h *SwapHandler) List(c *gin.Context) {
	var q models.SwapListQuery

	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.List(c.Request.Context(), middleware.GetUserID(c), &q)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// Get returns a single swap request the user is a party to.
// GET /swap/:requestId
func (h *SwapHandler) Get(c *gin.Context) {
	swap, err := h.service.Get(c.Request.Context(), middleware.GetUserID(c), c.Param("requestId"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, swap)
}

// Accept accepts a pending swap request and schedules its meeting.
// PUT /swap/:requestId/accept
func (h *SwapHandler) Accept(c *gin.Context) {
	var req models.AcceptSwapRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Accept(c.Request.Context(), middleware.GetUserID(c), c.Param("requestId"), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrScheduledDateRequired) {
			response.BadRequest(c, err.Error())
			return
		}
		h.writeError(c, err)
		return
	}

	response.SuccessMessage(c, "swap request accepted", result)
}

// Reject rejects a pending swap request.
// PUT /swap/:requestId/reject
func (h *SwapHandler) Reject(c *gin.Context) {
	swap, err := h.service.Reject(c.Request.Context(), middleware.GetUserID(c), c.Param("requestId"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessMessage(c, "swap request rejected", swap)
}

// Cancel withdraws a pending swap request.
// DELETE /swap/:requestId
func (h *SwapHandler) Cancel(c *gin.Context) {
	swap, err := h.service.Cancel(c.Request.Context(), middleware.GetUserID(c), c.Param("requestId"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessMessage(c, "swap request cancelled", swap)
}

// Complete marks an accepted swap request as completed.
// PUT /swap/:requestId/complete
func (h *SwapHandler) Complete(c *gin.Context) {
	swap, err := h.service.Complete(c.Request.Context(), middleware.GetUserID(c), c.Param("requestId"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessMessage(c, "swap request completed", swap)
}

func (h *SwapHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidID):
		response.BadRequest(c, err.Error())
	case errors.Is(err, apperrors.ErrSwapNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, apperrors.ErrMeetingGeneration):
		response.Error(c, http.StatusInternalServerError, err.Error())
	default:
		response.InternalError(c)
	}
}
