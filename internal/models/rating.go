package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating is a 1-5 score one swap party gives the other after completion.
// At most one rating exists per (swapRequest, rater) pair.
type Rating struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	SwapRequest primitive.ObjectID `json:"swapRequest" bson:"swapRequest"`
	Rater       primitive.ObjectID `json:"rater" bson:"rater"`
	Rated       primitive.ObjectID `json:"rated" bson:"rated"`
	Rating      int                `json:"rating" bson:"rating"`
	Feedback    string             `json:"feedback,omitempty" bson:"feedback,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`

	RaterInfo *UserSummary `json:"raterInfo,omitempty" bson:"-"`
	RatedInfo *UserSummary `json:"ratedInfo,omitempty" bson:"-"`
}

// CreateRatingRequest is the payload for rating a user after a completed swap.
type CreateRatingRequest struct {
	SwapRequestID string `json:"swapRequestId" binding:"required"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Feedback      string `json:"feedback" binding:"omitempty,max=500"`
}

// UpdateRatingRequest is the payload for updating one's own rating.
type UpdateRatingRequest struct {
	Rating   *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Feedback *string `json:"feedback" binding:"omitempty,max=500"`
}

// RatingStatistics summarizes the ratings received by a user.
type RatingStatistics struct {
	TotalRatings  int         `json:"totalRatings"`
	AverageRating float64     `json:"averageRating"`
	Breakdown     map[int]int `json:"breakdown"` // star level -> count
}

// RatingListResponse is the response for paginated rating listings.
type RatingListResponse struct {
	Ratings    []Rating   `json:"ratings"`
	Pagination Pagination `json:"pagination"`
}

// UserRatingsResponse is the public view of a user's received ratings.
type UserRatingsResponse struct {
	Ratings    []Rating         `json:"ratings"`
	Statistics RatingStatistics `json:"statistics"`
	Pagination Pagination       `json:"pagination"`
}
