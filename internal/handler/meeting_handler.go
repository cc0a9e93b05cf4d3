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

// MeetingHandler handles HTTP requests for scheduled meetings.
type MeetingHandler struct {
	service service.MeetingServicer
}

// NewMeetingHandler creates a new MeetingHandler.
func NewMeetingHandler(service service.MeetingServicer) *MeetingHandler {
	return &MeetingHandler{service: service}
}

// Upcoming returns the user's upcoming meetings, soonest first.
// GET /swap/meetings/upcoming
func (h *MeetingHandler) Upcoming(c *gin.Context) {
	meetings, err := h.service.Upcoming(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidID) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, meetings)
}

// Get returns a meeting the user is a party to.
// GET /swap/meetings/:meetingId
func (h *MeetingHandler) Get(c *gin.Context) {
	mtg, err := h.service.Get(c.Request.Context(), middleware.GetUserID(c), c.Param("meetingId"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, mtg)
}

// UpdateStatus transitions a meeting's lifecycle state.
// PUT /swap/meetings/:meetingId/status
func (h *MeetingHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateMeetingStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	mtg, err := h.service.UpdateStatus(c.Request.Context(), middleware.GetUserID(c), c.Param("meetingId"), req.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessMessage(c, "meeting status updated", mtg)
}

func (h *MeetingHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidID):
		response.BadRequest(c, err.Error())
	case errors.Is(err, apperrors.ErrMeetingNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c)
	}
}
