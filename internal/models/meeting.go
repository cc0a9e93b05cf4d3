package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MeetingStatus represents the lifecycle state of a meeting.
type MeetingStatus string

const (
	// MeetingScheduled indicates a meeting that has not started yet.
	MeetingScheduled MeetingStatus = "scheduled"
	// MeetingInProgress indicates a meeting a party has joined.
	MeetingInProgress MeetingStatus = "in_progress"
	// MeetingCompleted indicates a finished meeting.
	MeetingCompleted MeetingStatus = "completed"
	// MeetingCancelled indicates a meeting called off before completion.
	MeetingCancelled MeetingStatus = "cancelled"
	// MeetingNoShow indicates a party did not attend.
	MeetingNoShow MeetingStatus = "no_show"
)

// Meeting represents a scheduled video-call session generated when a swap
// request is accepted. Skill fields are denormalized from the swap request.
type Meeting struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	SwapRequest     primitive.ObjectID `json:"swapRequest" bson:"swapRequest"`
	Requester       primitive.ObjectID `json:"requester" bson:"requester"`
	Provider        primitive.ObjectID `json:"provider" bson:"provider"`
	MeetingLink     string             `json:"meetingLink" bson:"meetingLink"`
	MeetingID       string             `json:"meetingId" bson:"meetingId"`
	ScheduledDate   time.Time          `json:"scheduledDate" bson:"scheduledDate"`
	ActualStartTime *time.Time         `json:"actualStartTime,omitempty" bson:"actualStartTime,omitempty"`
	ActualEndTime   *time.Time         `json:"actualEndTime,omitempty" bson:"actualEndTime,omitempty"`
	Duration        int                `json:"duration" bson:"duration"` // minutes
	Status          MeetingStatus      `json:"status" bson:"status"`
	SkillRequested  string             `json:"skillRequested" bson:"skillRequested"`
	SkillOffered    string             `json:"skillOffered" bson:"skillOffered"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// MeetingDetails is the generated room information returned to both parties
// when a swap request is accepted.
type MeetingDetails struct {
	MeetingID     string    `json:"meetingId"`
	MeetingLink   string    `json:"meetingLink"`
	JoinLink      string    `json:"joinLink"`
	ScheduledDate time.Time `json:"scheduledDate"`
	Duration      int       `json:"duration"`
	Password      string    `json:"password,omitempty"`
}

// UpdateMeetingStatusRequest is the payload for a meeting status transition.
// "scheduled" is the initial state and cannot be re-entered.
type UpdateMeetingStatusRequest struct {
	Status MeetingStatus `json:"status" binding:"required,oneof=in_progress completed cancelled no_show"`
}
