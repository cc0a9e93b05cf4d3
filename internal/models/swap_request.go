package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SwapStatus represents the lifecycle state of a swap request.
type SwapStatus string

const (
	// SwapPending indicates a request awaiting the provider's decision.
	SwapPending SwapStatus = "pending"
	// SwapAccepted indicates the provider accepted and a meeting was scheduled.
	SwapAccepted SwapStatus = "accepted"
	// SwapRejected indicates the provider declined the request.
	SwapRejected SwapStatus = "rejected"
	// SwapCompleted indicates both parties finished the exchange.
	SwapCompleted SwapStatus = "completed"
	// SwapCancelled indicates the requester withdrew a pending request.
	SwapCancelled SwapStatus = "cancelled"
)

// ValidSwapStatus reports whether s is a known swap status.
func ValidSwapStatus(s string) bool {
	switch SwapStatus(s) {
	case SwapPending, SwapAccepted, SwapRejected, SwapCompleted, SwapCancelled:
		return true
	}
	return false
}

// SwapRequest represents a proposed skill exchange between two users.
// Skills are stored lower-cased.
type SwapRequest struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Requester      primitive.ObjectID  `json:"requester" bson:"requester"`
	Provider       primitive.ObjectID  `json:"provider" bson:"provider"`
	SkillRequested string              `json:"skillRequested" bson:"skillRequested"`
	SkillOffered   string              `json:"skillOffered" bson:"skillOffered"`
	Message        string              `json:"message,omitempty" bson:"message,omitempty"`
	Status         SwapStatus          `json:"status" bson:"status"`
	ScheduledDate  *time.Time          `json:"scheduledDate,omitempty" bson:"scheduledDate,omitempty"`
	CompletedDate  *time.Time          `json:"completedDate,omitempty" bson:"completedDate,omitempty"`
	Meeting        *primitive.ObjectID `json:"meeting,omitempty" bson:"meeting,omitempty"`
	CreatedAt      time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt" bson:"updatedAt"`

	// Embedded party summaries for responses, not persisted on the request.
	RequesterInfo *UserSummary `json:"requesterInfo,omitempty" bson:"-"`
	ProviderInfo  *UserSummary `json:"providerInfo,omitempty" bson:"-"`
}

// CreateSwapRequest is the payload for creating a swap request.
type CreateSwapRequest struct {
	ProviderID     string     `json:"providerId" binding:"required"`
	SkillRequested string     `json:"skillRequested" binding:"required,max=50,skill"`
	SkillOffered   string     `json:"skillOffered" binding:"required,max=50,skill"`
	Message        string     `json:"message" binding:"omitempty,max=500"`
	ScheduledDate  *time.Time `json:"scheduledDate"`
}

// AcceptSwapRequest is the payload for accepting a swap request. Duration is
// in minutes; the meeting generator default of 60 applies when omitted.
type AcceptSwapRequest struct {
	ScheduledDate time.Time `json:"scheduledDate" binding:"required"`
	Duration      int       `json:"duration" binding:"omitempty,min=15,max=180"`
}

// SwapListQuery holds the filters for listing a user's swap requests.
type SwapListQuery struct {
	Type   string `form:"type,default=all" binding:"omitempty,oneof=sent received all"`
	Status string `form:"status" binding:"omitempty,oneof=pending accepted rejected completed cancelled"`
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=10" binding:"omitempty,min=1,max=50"`
}

// SwapListResponse is the response for listing swap requests.
type SwapListResponse struct {
	SwapRequests []SwapRequest `json:"swapRequests"`
	Pagination   Pagination    `json:"pagination"`
}

// AcceptSwapResponse carries the accepted request together with the
// generated meeting details.
type AcceptSwapResponse struct {
	SwapRequest *SwapRequest    `json:"swapRequest"`
	Meeting     *MeetingDetails `json:"meeting"`
}
