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

// AdminHandler handles HTTP requests for moderation and reporting.
type AdminHandler struct {
	service service.AdminServicer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service service.AdminServicer) *AdminHandler {
	return &AdminHandler{service: service}
}

// ToggleBan flips a user's ban flag.
// PUT /admin/users/:userId/ban
func (h *AdminHandler) ToggleBan(c *gin.Context) {
	var req models.BanUserRequest

	// Body is optional; a missing body means no reason.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	result, err := h.service.ToggleBan(c.Request.Context(), c.Param("userId"), req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCannotBanAdmin):
			response.BadRequest(c, err.Error())
		case errors.Is(err, apperrors.ErrUserNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	message := "user unbanned"
	if result.IsBanned {
		message = "user banned"
	}
	response.SuccessMessage(c, message, result)
}

// ListUsers returns users for the moderation surface.
// GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var q models.AdminUserListQuery

	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.ListUsers(c.Request.Context(), &q)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// ListSwaps returns all swap requests for the monitoring surface.
// GET /admin/swaps
func (h *AdminHandler) ListSwaps(c *gin.Context) {
	var q models.AdminSwapListQuery

	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.ListSwaps(c.Request.Context(), &q)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// DeleteSwap hard-removes a swap request.
// DELETE /admin/swaps/:requestId
func (h *AdminHandler) DeleteSwap(c *gin.Context) {
	if err := h.service.DeleteSwap(c.Request.Context(), c.Param("requestId")); err != nil {
		if errors.Is(err, apperrors.ErrSwapNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.SuccessMessage(c, "swap request deleted", nil)
}

// BroadcastMessage records a platform message and emails active users.
// POST /admin/messages
func (h *AdminHandler) BroadcastMessage(c *gin.Context) {
	var req models.CreateAdminMessageRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	msg, err := h.service.BroadcastMessage(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, "platform message created", msg)
}

// ListMessages returns platform messages, newest first.
// GET /admin/messages
func (h *AdminHandler) ListMessages(c *gin.Context) {
	var q models.AdminMessageListQuery

	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.ListMessages(c.Request.Context(), &q)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// Statistics returns the platform-wide dashboard numbers.
// GET /admin/statistics
func (h *AdminHandler) Statistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, stats)
}

// Report generates a daily-bucketed report over a date range.
// GET /admin/reports
func (h *AdminHandler) Report(c *gin.Context) {
	var q models.ReportQuery

	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	report, err := h.service.Report(c.Request.Context(), &q)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, report)
}
